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

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// DefaultPreamble is the file a [TeXRenderer] inputs
// at the top of the document when Preamble is empty.
const DefaultPreamble = "presentation"

// A TeXRenderer converts a parsed [Document] into a complete
// XeLaTeX source file using the Beamer document class.
//
// The output inputs the preamble file and one "listings/LANG" file
// for each plugin in the document.
// Those files, along with the commands used by the slide frames
// such as \bigtitle and \coverframe, come from the keynote theme resources
// and must be on the TeX search path when the output is typeset.
type TeXRenderer struct {
	// Defaults supplies values for metadata keys the document does not set.
	// If Defaults is nil, the renderer uses [DefaultMetadata].
	Defaults Metadata
	// Preamble is the name of the file input at the top of the document.
	// If Preamble is empty, the renderer uses [DefaultPreamble].
	Preamble string
}

// RenderTeX writes the given document to the given writer as TeX
// using the default options for [TeXRenderer].
func RenderTeX(w io.Writer, doc *Document) error {
	return new(TeXRenderer).Render(w, doc)
}

// Render writes the given document to the given writer as TeX.
func (r *TeXRenderer) Render(w io.Writer, doc *Document) error {
	buf, err := r.AppendDocument(nil, doc)
	if err != nil {
		return fmt.Errorf("render keynote to tex: %w", err)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render keynote to tex: %w", err)
	}
	return nil
}

// AppendDocument appends the rendered TeX of a document to dst
// and returns the resulting byte slice.
// It returns an error if the merged metadata has an invalid
// slidenumber or fullscreen value.
func (r *TeXRenderer) AppendDocument(dst []byte, doc *Document) ([]byte, error) {
	defaults := r.Defaults
	if defaults == nil {
		defaults = DefaultMetadata()
	}
	meta := defaults.Merge(doc.Metadata)
	pageNumber, err := slideNumberTemplate(meta["slidenumber"])
	if err != nil {
		return dst, err
	}
	fullscreen := false
	if v := meta["fullscreen"]; v != "" {
		fullscreen, err = strconv.ParseBool(v)
		if err != nil {
			return dst, fmt.Errorf("invalid fullscreen value %q", v)
		}
	}

	preamble := r.Preamble
	if preamble == "" {
		preamble = DefaultPreamble
	}
	dst = appendCommand(dst, `\input`, preamble)
	if theme := meta["theme"]; theme != "" {
		dst = appendCommand(dst, `\usetheme`, theme)
	}
	if lang := meta["language"]; lang != "" {
		dst = appendCommand(dst, `\usepackage[`+babelLanguage(lang)+`]`, "babel")
	}
	for _, key := range [...]string{"title", "subtitle", "author", "institute", "date"} {
		dst = appendCommand(dst, `\`+key, meta[key])
	}
	if fullscreen {
		dst = append(dst, "\\hypersetup{pdfpagemode=FullScreen}\n"...)
	}
	for _, plugin := range doc.Plugins.Sorted() {
		dst = appendCommand(dst, `\input`, "listings/"+plugin)
	}
	dst = append(dst, pageNumber...)

	dst = append(dst, "\\begin{document}\n"...)
	for _, s := range doc.Slides {
		dst = append(dst, s.Frame...)
	}
	dst = append(dst, "\\end{document}\n"...)
	return dst, nil
}

// slideNumberTemplate returns the Beamer setup for a slidenumber value,
// which is either "none" or a horizontal position
// (center, left, or right) followed by a vertical position (top or bottom).
func slideNumberTemplate(value string) (string, error) {
	fields := strings.Fields(value)
	if len(fields) == 1 && fields[0] == "none" {
		return "", nil
	}
	if len(fields) != 2 {
		return "", fmt.Errorf("invalid slide number position %q", value)
	}
	h, v := fields[0], fields[1]
	if h != "center" && h != "left" && h != "right" {
		return "", fmt.Errorf("invalid slide number position %q", h)
	}
	var template string
	switch v {
	case "top":
		template = "headline"
	case "bottom":
		template = "footline"
	default:
		return "", fmt.Errorf("invalid slide number position %q", v)
	}
	return `\setbeamertemplate{` + template + `}[` + h + " page number]\n", nil
}

var (
	babelTags = []language.Tag{
		language.English,
		language.BrazilianPortuguese,
		language.Portuguese,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
	}
	babelNames = []string{
		"english",
		"brazilian",
		"portuguese",
		"ngerman",
		"french",
		"spanish",
		"italian",
	}
	babelMatcher = language.NewMatcher(babelTags)
)

// babelLanguage maps a BCP 47 language tag like "pt-BR"
// to the name babel uses for the language.
// Values that are not tags babel knows are returned unchanged,
// so babel names like "english" pass through.
func babelLanguage(value string) string {
	tag, err := language.Parse(value)
	if err != nil {
		return value
	}
	_, i, confidence := babelMatcher.Match(tag)
	if confidence == language.No {
		return value
	}
	return babelNames[i]
}
