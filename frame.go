// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package keynote

import "strings"

// AppendFrame appends the slide rendered as a Beamer frame to dst
// and returns the resulting byte slice.
// The frame is wrapped in the slide's transition, if any.
func (s *Slide) AppendFrame(dst []byte) []byte {
	if s.Transition == nil {
		return s.appendBody(dst)
	}
	return appendTransition(dst, s.Transition, s.appendBody(nil))
}

func (s *Slide) appendBody(dst []byte) []byte {
	switch s.Kind {
	case CoverPageKind:
		dst = append(dst, "\\coverframe\n"...)
	case BigTitleKind:
		dst = appendCommand(dst, `\bigtitle`, FormatInline(s.Title))
	case CitationKind:
		dst = appendCommand(dst, `\citation`, FormatInline(s.Title), FormatInline(s.Author))
	case BigImageKind:
		dst = appendCommand(dst, `\bigimage`, s.Images...)
	case TwoImagesKind:
		dst = appendCommand(dst, `\twoimages`, s.Images...)
	case FourImagesKind:
		dst = appendCommand(dst, `\fourimages`, s.Images...)
	case CodeKind:
		dst = append(dst, "\\begin{frame}[fragile]\n"...)
		dst = appendCommand(dst, `\frametitle`, FormatInline(s.Title))
		dst = appendCommand(dst, `\begin`, s.Language)
		dst = append(dst, s.Code...)
		if !strings.HasSuffix(s.Code, "\n") {
			dst = append(dst, '\n')
		}
		dst = appendCommand(dst, `\end`, s.Language)
		dst = append(dst, "\\end{frame}\n"...)
	case ItemsKind:
		dst = append(dst, "\\begin{frame}\n"...)
		dst = appendCommand(dst, `\frametitle`, FormatInline(s.Title))
		dst = appendItemList(dst, s.Items)
		dst = append(dst, "\\end{frame}\n"...)
	case ItemsImageKind:
		dst = append(dst, "\\begin{frame}\n"...)
		dst = appendCommand(dst, `\frametitle`, FormatInline(s.Title))
		dst = append(dst, "\\begin{columns}\n"...)
		if s.ImageFirst {
			dst = appendImageColumn(dst, s.Images[0])
			dst = appendItemsColumn(dst, s.Items)
		} else {
			dst = appendItemsColumn(dst, s.Items)
			dst = appendImageColumn(dst, s.Images[0])
		}
		dst = append(dst, "\\end{columns}\n"...)
		dst = append(dst, "\\end{frame}\n"...)
	}
	return dst
}

// appendCommand appends a TeX command with one braced argument per arg,
// followed by a newline.
func appendCommand(dst []byte, name string, args ...string) []byte {
	dst = append(dst, name...)
	for _, arg := range args {
		dst = append(dst, '{')
		dst = append(dst, arg...)
		dst = append(dst, '}')
	}
	return append(dst, '\n')
}

func appendImageColumn(dst []byte, image string) []byte {
	dst = append(dst, "\\begin{column}{.4\\paperwidth}\n"...)
	dst = append(dst, "\\begin{center}\n"...)
	dst = appendCommand(dst, `\includegraphics[width=.4\paperwidth,height=.75\paperheight,keepaspectratio]`, image)
	dst = append(dst, "\\end{center}\n"...)
	dst = append(dst, "\\end{column}\n"...)
	return dst
}

func appendItemsColumn(dst []byte, items []Item) []byte {
	dst = append(dst, "\\begin{column}{.55\\paperwidth}\n"...)
	dst = appendItemList(dst, items)
	dst = append(dst, "\\end{column}\n"...)
	return dst
}
