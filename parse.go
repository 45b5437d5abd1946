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

// Package keynote parses keynote source,
// a small plain-text notation for slide decks,
// and renders it as a [Beamer] presentation.
//
// A keynote source starts with optional metadata lines
// followed by one or more slides:
//
//	title: My Deck
//	author: Jane Doe
//
//	:bigtitle
//	# Hello
//
//	:(dissolve, 1):items
//	# Agenda
//	* *bold* and /italic/
//	  * nested
//
// [Beamer]: https://ctan.org/pkg/beamer
package keynote

import (
	"bytes"
	"sort"

	"go4.org/bytereplacer"
)

// A Document is a fully parsed keynote source.
type Document struct {
	Metadata Metadata
	// Slides is the list of slides in source order.
	// A successfully parsed Document always has at least one slide.
	Slides []*Slide
	// Plugins is the set of code block languages used in the document.
	Plugins PluginSet
}

// PluginSet is a set of renderer extension names.
type PluginSet map[string]struct{}

// Add adds name to the set.
func (set PluginSet) Add(name string) {
	set[name] = struct{}{}
}

// Has reports whether name is in the set.
func (set PluginSet) Has(name string) bool {
	_, ok := set[name]
	return ok
}

// Sorted returns the set's members in lexical order.
func (set PluginSet) Sorted() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var sourceReplacer = bytereplacer.New(
	"\r\n", "\n",
	"\x00", "\ufffd",
)

// Parse parses an entire keynote source.
// If the source cannot be parsed, Parse returns an [*Error]
// describing the first problem it encountered.
func Parse(source []byte) (*Document, error) {
	source = sourceReplacer.Replace(bytes.Clone(source))
	return parseDocument(NewCursor(string(source), 1))
}

// parseDocument parses:
//
//	keynote := metadata slide+
func parseDocument(c Cursor) (*Document, error) {
	metadata, c, err := parseMetadata(c)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Metadata: metadata,
		Plugins:  make(PluginSet),
	}
	for {
		slide, next, err := parseSlide(c)
		if err != nil {
			return nil, err
		}
		c = next
		if slide == nil {
			break
		}
		doc.Slides = append(doc.Slides, slide)
		if slide.Kind == CodeKind {
			doc.Plugins.Add(slide.Language)
		}
		c = skipSpace(c)
	}
	if len(doc.Slides) == 0 {
		return nil, structuralErrorf(c.Line(), "no slide was defined")
	}
	if !c.Exhausted() {
		return nil, structuralErrorf(c.Line(), "there should be no input left")
	}
	return doc, nil
}
