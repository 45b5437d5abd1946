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

const codeFence = "```"

// parseTitle parses:
//
//	title := '#' FORMATTED_LINE
//
// If the next non-space character is not '#',
// parseTitle returns ok == false and does not advance the cursor.
func parseTitle(c Cursor) (source string, next Cursor, ok bool, err error) {
	start := skipSpace(c)
	if start.peek() != '#' {
		return "", c, false, nil
	}
	if rest := start.Rest(); len(rest) > 1 && !isSpace(rest[1]) {
		return "", c, false, syntaxErrorf(start.Line(), "expected whitespace after '#'")
	}
	source, next = parseLine(start.advance(1))
	return source, next, true, nil
}

// parseOptionalTitle parses a title if one is present.
func parseOptionalTitle(c Cursor, s *Slide) (Cursor, error) {
	title, c, _, err := parseTitle(c)
	s.Title = title
	return c, err
}

func parseBigTitle(c Cursor, s *Slide) (Cursor, error) {
	title, next, ok, err := parseTitle(c)
	if err != nil {
		return c, err
	}
	if !ok {
		return c, syntaxErrorf(skipSpace(c).Line(), "expected '#'")
	}
	s.Title = title
	return next, nil
}

// parseCitation parses:
//
//	citation := title '--' FORMATTED_LINE
func parseCitation(c Cursor, s *Slide) (Cursor, error) {
	c, err := parseBigTitle(c, s)
	if err != nil {
		return c, err
	}
	c = skipSpace(c)
	if !c.hasPrefix("--") {
		return c, syntaxErrorf(c.Line(), "expected '--'")
	}
	s.Author, c = parseLine(c.advance(len("--")))
	return c, nil
}

// parseImage parses:
//
//	image := '[' [^\]]* ']'
//
// If the cursor does not start with '[',
// parseImage returns ok == false and does not advance the cursor.
func parseImage(c Cursor) (image string, next Cursor, ok bool, err error) {
	if c.peek() != '[' {
		return "", c, false, nil
	}
	end := strings.IndexByte(c.Rest(), ']')
	if end < 0 {
		return "", c, false, structuralErrorf(c.Line(), "image is not closed before end of input")
	}
	return strings.TrimSpace(c.Rest()[1:end]), c.advance(end + 1), true, nil
}

func parseRequiredImage(c Cursor) (string, Cursor, error) {
	c = skipSpace(c)
	image, next, ok, err := parseImage(c)
	if err != nil {
		return "", c, err
	}
	if !ok {
		return "", c, syntaxErrorf(c.Line(), "expected '[' to start an image")
	}
	return image, next, nil
}

// parseImages parses n consecutive images.
func parseImages(c Cursor, s *Slide, n int) (Cursor, error) {
	for i := 0; i < n; i++ {
		image, next, err := parseRequiredImage(c)
		if err != nil {
			return c, err
		}
		s.Images = append(s.Images, image)
		c = next
	}
	return c, nil
}

// parseCode parses:
//
//	code := title? '```' LINE [^```]* '```'
//
// The line after the opening fence names the block's language.
// The block's contents are kept verbatim.
func parseCode(c Cursor, s *Slide) (Cursor, error) {
	c, err := parseOptionalTitle(c, s)
	if err != nil {
		return c, err
	}
	c = skipSpace(c)
	if !c.hasPrefix(codeFence) {
		return c, syntaxErrorf(c.Line(), "expected '%s'", codeFence)
	}
	fenceLine := c.Line()
	s.Language, c = parseLine(c.advance(len(codeFence)))
	if s.Language == "" {
		return c, syntaxErrorf(fenceLine, "expected language after '%s'", codeFence)
	}
	end := strings.Index(c.Rest(), codeFence)
	if end < 0 {
		return c, structuralErrorf(fenceLine, "code block is not closed before end of input")
	}
	s.Code = c.Rest()[:end]
	return c.advance(end + len(codeFence)), nil
}

// parseItems parses:
//
//	items := title? itemlist
func parseItems(c Cursor, s *Slide) (Cursor, error) {
	c, err := parseOptionalTitle(c, s)
	if err != nil {
		return c, err
	}
	s.Items, c, err = parseItemlist(skipBlankLines(c))
	return c, err
}

// parseItemsImage parses:
//
//	itemsimage := title? (image itemlist | itemlist image)
func parseItemsImage(c Cursor, s *Slide) (Cursor, error) {
	c, err := parseOptionalTitle(c, s)
	if err != nil {
		return c, err
	}
	c = skipBlankLines(c)
	image, next, ok, err := parseImage(skipSpace(c))
	if err != nil {
		return c, err
	}
	if ok {
		s.ImageFirst = true
		s.Images = []string{image}
		var trailing string
		trailingLine := next.Line()
		trailing, c = parseLine(next)
		if trailing != "" {
			return c, syntaxErrorf(trailingLine, "unexpected text after image")
		}
		s.Items, c, err = parseItemlist(skipBlankLines(c))
		return c, err
	}

	s.Items, c, err = parseItemlist(c)
	if err != nil {
		return c, err
	}
	c = skipSpace(c)
	image, next, ok, err = parseImage(c)
	if err != nil {
		return c, err
	}
	if !ok {
		return c, syntaxErrorf(c.Line(), "expected image for %v slide", ItemsImageKind)
	}
	s.Images = []string{image}
	return next, nil
}
