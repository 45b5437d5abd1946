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

// inlineMarkers lists the characters that toggle a text style
// along with the TeX command that opens the style.
// All styles close with a single brace.
var inlineMarkers = [...]struct {
	marker byte
	open   string
}{
	{'*', `\textbf{`},
	{'/', `\textit{`},
	{'_', `\underline{`},
	{'|', `\texttt{`},
}

const inlineClose = "}"

// FormatInline converts the inline markers in a single line of text to TeX.
//
// Each of '*' (bold), '/' (italic), '_' (underline), and '|' (teletype)
// alternately opens and closes its style.
// A backslash before a marker or another backslash
// produces the literal character without toggling anything;
// an escaped underscore stays as "\_", which is how TeX spells a literal underscore.
// Any other backslash is copied through so that TeX commands survive.
// Styles left open at the end of the line are closed there.
func FormatInline(line string) string {
	var open [len(inlineMarkers)]bool
	sb := new(strings.Builder)
	sb.Grow(len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && isEscapable(line[i+1]) {
			i++
			if line[i] == '_' {
				sb.WriteString(`\_`)
			} else {
				sb.WriteByte(line[i])
			}
			continue
		}
		m := markerIndex(c)
		if m < 0 {
			sb.WriteByte(c)
			continue
		}
		if open[m] {
			sb.WriteString(inlineClose)
		} else {
			sb.WriteString(inlineMarkers[m].open)
		}
		open[m] = !open[m]
	}
	for _, isOpen := range open {
		if isOpen {
			sb.WriteString(inlineClose)
		}
	}
	return sb.String()
}

func markerIndex(c byte) int {
	for i, m := range inlineMarkers {
		if m.marker == c {
			return i
		}
	}
	return -1
}

func isEscapable(c byte) bool {
	return c == '\\' || markerIndex(c) >= 0
}
