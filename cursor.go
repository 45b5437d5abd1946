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

// A Cursor is an immutable view of the unparsed remainder of a keynote source
// along with the line number of its first byte.
// Parse functions take a Cursor and return a new one;
// the zero value is an exhausted cursor at line 0.
type Cursor struct {
	rest string
	line int
}

// NewCursor returns a cursor positioned at the start of text,
// which begins on the given line.
func NewCursor(text string, line int) Cursor {
	return Cursor{rest: text, line: line}
}

// Line returns the 1-based line number of the cursor's position.
func (c Cursor) Line() int {
	return c.line
}

// Rest returns the unparsed text.
func (c Cursor) Rest() string {
	return c.rest
}

// Exhausted reports whether no input remains.
func (c Cursor) Exhausted() bool {
	return len(c.rest) == 0
}

// peek returns the next byte or 0 if the cursor is exhausted.
func (c Cursor) peek() byte {
	if c.Exhausted() {
		return 0
	}
	return c.rest[0]
}

func (c Cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.rest, s)
}

// advance consumes n bytes, counting any newlines among them.
func (c Cursor) advance(n int) Cursor {
	if n > len(c.rest) {
		n = len(c.rest)
	}
	return Cursor{
		rest: c.rest[n:],
		line: c.line + strings.Count(c.rest[:n], "\n"),
	}
}

// skipSpace advances past all whitespace, including newlines.
func skipSpace(c Cursor) Cursor {
	i := 0
	for i < len(c.rest) && isSpace(c.rest[i]) {
		i++
	}
	return c.advance(i)
}

// skipBlanks advances past spaces and tabs on the current line.
func skipBlanks(c Cursor) Cursor {
	i := 0
	for i < len(c.rest) && (c.rest[i] == ' ' || c.rest[i] == '\t') {
		i++
	}
	return c.advance(i)
}

// skipBlankLines advances past any lines that contain only spaces and tabs.
// It leaves the cursor at the start of the first non-blank line
// so that the line's indentation is preserved.
func skipBlankLines(c Cursor) Cursor {
	for {
		rest := c.rest
		i := 0
		for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\r') {
			i++
		}
		switch {
		case i == len(rest):
			return c.advance(i)
		case rest[i] == '\n':
			c = c.advance(i + 1)
		default:
			return c
		}
	}
}

// nextToken skips whitespace and then consumes
// the longest run of ASCII letters and digits.
// It returns the empty string if the next character does not start a token.
func nextToken(c Cursor) (string, Cursor) {
	c = skipSpace(c)
	i := 0
	for i < len(c.rest) && (isASCIILetter(c.rest[i]) || isASCIIDigit(c.rest[i])) {
		i++
	}
	return c.rest[:i], c.advance(i)
}

// parseLine consumes the rest of the current line, including its newline,
// and returns the line's text with surrounding whitespace removed.
// The end of input terminates the final line.
func parseLine(c Cursor) (string, Cursor) {
	i := strings.IndexByte(c.rest, '\n')
	if i < 0 {
		return strings.TrimSpace(c.rest), c.advance(len(c.rest))
	}
	return strings.TrimSpace(c.rest[:i]), c.advance(i + 1)
}

// parseFormattedLine is like parseLine,
// but it also converts the line's inline markers to TeX.
func parseFormattedLine(c Cursor) (string, Cursor) {
	_, text, c := parseSourceLine(c)
	return text, c
}

// parseSourceLine returns both the raw line and its formatted form.
func parseSourceLine(c Cursor) (source, formatted string, next Cursor) {
	source, next = parseLine(c)
	return source, FormatInline(source), next
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isASCIILetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
