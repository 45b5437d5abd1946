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

// An Item is a single bullet in an items slide.
type Item struct {
	// Level is the number of spaces before the item's '*'.
	Level int
	// Text is the item's text with inline markers converted to TeX.
	Text string
	// Source is the item's text as written.
	Source string
}

const (
	beginItemize = "\\begin{itemize}\n"
	endItemize   = "\\end{itemize}\n"
)

// parseItemlist parses consecutive item lines.
// The first item's level is the minimum level for the whole list.
// The list ends at the first line that is blank or does not start with '*'
// after its indentation; that line is not consumed.
func parseItemlist(c Cursor) ([]Item, Cursor, error) {
	var items []Item
	for {
		item, next, ok := parseItem(c)
		if !ok {
			break
		}
		if len(items) > 0 && item.Level < items[0].Level {
			return nil, c, structuralErrorf(c.Line(), "items cannot have less indentation than the first item")
		}
		items = append(items, item)
		c = next
	}
	if len(items) == 0 {
		return nil, c, syntaxErrorf(c.Line(), "expected '*' to start an item")
	}
	return items, c, nil
}

// parseItem parses:
//
//	item := ' '* '*' FORMATTED_LINE
func parseItem(c Cursor) (_ Item, next Cursor, ok bool) {
	rest := c.Rest()
	level := 0
	for level < len(rest) && rest[level] == ' ' {
		level++
	}
	if level == len(rest) || rest[level] != '*' {
		return Item{}, c, false
	}
	source, text, next := parseSourceLine(skipBlanks(c.advance(level + 1)))
	return Item{Level: level, Text: text, Source: source}, next, true
}

// appendItemList appends a nested itemize environment for items to dst.
// items must be non-empty and no item may have a lower level than the first.
//
// Deeper levels open a nested list.
// A shallower level closes every open list deeper than it,
// and if the level falls between two open lists,
// a new list is opened at that level.
// Any lists still open at the end are closed,
// so the output always has as many ends as begins.
func appendItemList(dst []byte, items []Item) []byte {
	dst = append(dst, beginItemize...)
	levels := []int{items[0].Level}
	for _, item := range items {
		for len(levels) > 1 && item.Level < levels[len(levels)-1] {
			dst = append(dst, endItemize...)
			levels = levels[:len(levels)-1]
		}
		if item.Level > levels[len(levels)-1] {
			dst = append(dst, beginItemize...)
			levels = append(levels, item.Level)
		}
		dst = append(dst, `\item `...)
		dst = append(dst, item.Text...)
		dst = append(dst, '\n')
	}
	for range levels {
		dst = append(dst, endItemize...)
	}
	return dst
}
