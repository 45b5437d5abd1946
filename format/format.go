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

// Package format provides a function to format a keynote document
// as keynote source that parses to the same frames.
package format

import (
	"io"
	"strconv"
	"strings"

	"zombiezen.com/go/keynote"
)

// Format writes the given document as keynote source to the given writer.
// Metadata is written in canonical key order
// and slides are separated by blank lines.
func Format(w io.Writer, doc *keynote.Document) error {
	ww := &errWriter{w: w}
	for _, key := range keynote.MetadataKeys() {
		value, ok := doc.Metadata[key]
		if !ok {
			continue
		}
		ww.WriteString(key)
		ww.WriteString(":")
		if value != "" {
			ww.WriteString(" ")
			ww.WriteString(value)
		}
		ww.WriteString("\n")
	}
	for _, s := range doc.Slides {
		if ww.hasWritten {
			ww.WriteString("\n")
		}
		writeSlide(ww, s)
	}
	return ww.err
}

func writeSlide(w *errWriter, s *keynote.Slide) {
	w.WriteString(":")
	if t := s.Transition; t != nil {
		w.WriteString("(")
		w.WriteString(t.Kind.String())
		if t.Duration != keynote.DefaultTransitionDuration {
			w.WriteString(", ")
			w.WriteString(strconv.FormatFloat(t.Duration, 'f', -1, 64))
		}
		w.WriteString("):")
	}
	w.WriteString(s.Kind.String())
	w.WriteString("\n")

	switch s.Kind {
	case keynote.BigTitleKind:
		writeTitle(w, s.Title)
	case keynote.CitationKind:
		writeTitle(w, s.Title)
		w.WriteString("--")
		writeLineText(w, s.Author)
	case keynote.BigImageKind, keynote.TwoImagesKind, keynote.FourImagesKind:
		for _, image := range s.Images {
			writeImage(w, image)
		}
	case keynote.CodeKind:
		writeOptionalTitle(w, s.Title)
		w.WriteString("```")
		w.WriteString(s.Language)
		w.WriteString("\n")
		w.WriteString(s.Code)
		w.WriteString("```\n")
	case keynote.ItemsKind:
		writeOptionalTitle(w, s.Title)
		writeItems(w, s.Items)
	case keynote.ItemsImageKind:
		writeOptionalTitle(w, s.Title)
		if s.ImageFirst {
			writeImage(w, s.Images[0])
			writeItems(w, s.Items)
		} else {
			writeItems(w, s.Items)
			writeImage(w, s.Images[0])
		}
	}
}

func writeTitle(w *errWriter, title string) {
	w.WriteString("#")
	writeLineText(w, title)
}

func writeOptionalTitle(w *errWriter, title string) {
	if title != "" {
		writeTitle(w, title)
	}
}

func writeImage(w *errWriter, image string) {
	w.WriteString("[")
	w.WriteString(image)
	w.WriteString("]\n")
}

func writeItems(w *errWriter, items []keynote.Item) {
	for _, item := range items {
		w.WriteString(strings.Repeat(" ", item.Level))
		w.WriteString("*")
		writeLineText(w, item.Source)
	}
}

// writeLineText finishes a line that began with a marker,
// separating text from the marker with a space.
func writeLineText(w *errWriter, text string) {
	if text != "" {
		w.WriteString(" ")
		w.WriteString(text)
	}
	w.WriteString("\n")
}

type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}
