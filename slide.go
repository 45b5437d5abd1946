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

import "fmt"

// A Slide is a single parsed slide.
// Frame holds its rendered TeX;
// the remaining fields record what was parsed
// and are only set for the kinds that use them.
type Slide struct {
	Kind SlideKind
	// Line is the line of the slide's leading ':'.
	Line int
	// Transition is nil if the slide has no transition annotation.
	Transition *Transition

	// Title is the source text of the slide's title,
	// or of the quote in a citation.
	Title string
	// Author is the source text of a citation's attribution.
	Author string
	// Images lists the slide's image paths in source order.
	Images []string
	// ImageFirst reports whether an items+image slide
	// gives its image before its items.
	ImageFirst bool
	Items      []Item
	// Language is the language of a code slide's block.
	Language string
	// Code is the verbatim contents of a code slide's block.
	Code string

	// Frame is the slide rendered as a Beamer frame,
	// including any transition setup.
	Frame string
}

// SlideKind is an enumeration of slide layouts.
type SlideKind int

const (
	CoverPageKind SlideKind = 1 + iota
	BigTitleKind
	CitationKind
	BigImageKind
	TwoImagesKind
	FourImagesKind
	CodeKind
	ItemsKind
	ItemsImageKind
)

// String returns the keyword that introduces the kind of slide.
func (kind SlideKind) String() string {
	switch kind {
	case CoverPageKind:
		return "coverpage"
	case BigTitleKind:
		return "bigtitle"
	case CitationKind:
		return "citation"
	case BigImageKind:
		return "bigimage"
	case TwoImagesKind:
		return "twoimages"
	case FourImagesKind:
		return "fourimages"
	case CodeKind:
		return "code"
	case ItemsKind:
		return "items"
	case ItemsImageKind:
		return "items+image"
	default:
		return fmt.Sprintf("SlideKind(%d)", int(kind))
	}
}

func parseSlideKind(keyword string) (SlideKind, bool) {
	switch keyword {
	case "coverpage":
		return CoverPageKind, true
	case "bigtitle":
		return BigTitleKind, true
	case "citation":
		return CitationKind, true
	case "bigimage":
		return BigImageKind, true
	case "twoimages":
		return TwoImagesKind, true
	case "fourimages":
		return FourImagesKind, true
	case "code":
		return CodeKind, true
	case "items":
		return ItemsKind, true
	case "items+image":
		return ItemsImageKind, true
	default:
		return 0, false
	}
}

// parseSlide parses:
//
//	slide := ':' ('(' transition ')' ':')? TYPE body
//
// If the next non-space character is not ':',
// parseSlide returns a nil slide and no error
// to signal that there are no more slides.
func parseSlide(c Cursor) (*Slide, Cursor, error) {
	c = skipSpace(c)
	if c.peek() != ':' {
		return nil, c, nil
	}
	s := &Slide{Line: c.Line()}
	c = skipSpace(c.advance(1))
	if c.peek() == '(' {
		t, next, err := parseTransition(c)
		if err != nil {
			return nil, c, err
		}
		s.Transition = t
		c = skipSpace(next)
		if c.peek() != ':' {
			return nil, c, syntaxErrorf(c.Line(), "expected ':' after transition")
		}
		c = c.advance(1)
	}

	keywordLine := c.Line()
	keyword, c := parseLine(c)
	kind, ok := parseSlideKind(keyword)
	if !ok {
		return nil, c, syntaxErrorf(keywordLine, "invalid slide type %q", keyword)
	}
	s.Kind = kind

	var err error
	switch kind {
	case CoverPageKind:
		// No body.
	case BigTitleKind:
		c, err = parseBigTitle(c, s)
	case CitationKind:
		c, err = parseCitation(c, s)
	case BigImageKind:
		c, err = parseImages(c, s, 1)
	case TwoImagesKind:
		c, err = parseImages(c, s, 2)
	case FourImagesKind:
		c, err = parseImages(c, s, 4)
	case CodeKind:
		c, err = parseCode(c, s)
	case ItemsKind:
		c, err = parseItems(c, s)
	case ItemsImageKind:
		c, err = parseItemsImage(c, s)
	default:
		panic("unhandled slide kind " + kind.String())
	}
	if err != nil {
		return nil, c, err
	}
	s.Frame = string(s.AppendFrame(nil))
	return s, c, nil
}
