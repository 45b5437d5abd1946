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
package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"zombiezen.com/go/keynote"
	"zombiezen.com/go/keynote/internal/corpus"
)

func FuzzFormat(f *testing.F) {
	examples, err := corpus.Load()
	if err != nil {
		f.Fatal(err)
	}
	for _, ex := range examples {
		f.Add(ex.Keynote)
	}

	f.Fuzz(func(t *testing.T, source string) {
		if !utf8.ValidString(source) {
			t.Skip("Invalid UTF-8")
		}
		doc, err := keynote.Parse([]byte(source))
		if err != nil {
			t.Skip(err)
		}

		got := new(bytes.Buffer)
		if err := Format(got, doc); err != nil {
			t.Fatal("Format #1:", err)
		}
		formattedDoc, err := keynote.Parse(got.Bytes())
		if err != nil {
			t.Fatalf("Parse formatted: %v\nOriginal:\n%s\nFormatted:\n%s", err, source, got)
		}
		if diff := cmp.Diff(doc.Metadata, formattedDoc.Metadata, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Reformatting changed metadata. Original:\n%s\nFormatted:\n%s\nDiff (-want +got):\n%s", source, got, diff)
		}
		if diff := cmp.Diff(frames(doc), frames(formattedDoc)); diff != "" {
			t.Errorf("Reformatting changed frames. Original:\n%s\nFormatted:\n%s\nDiff (-want +got):\n%s", source, got, diff)
		}

		reformatted := new(bytes.Buffer)
		if err := Format(reformatted, formattedDoc); err != nil {
			t.Error("Format #2:", err)
		}
		if diff := cmp.Diff(got.String(), reformatted.String()); diff != "" {
			t.Errorf("Format not idempotent (-first +second):\n%s", diff)
		}
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "MetadataOrder",
			source: "title: T\ntheme: Madrid\ndate:\n:coverpage\n",
			want:   "theme: Madrid\ndate:\ntitle: T\n\n:coverpage\n",
		},
		{
			name:   "NoMetadata",
			source: "\n\n:coverpage\n\n\n:coverpage",
			want:   ":coverpage\n\n:coverpage\n",
		},
		{
			name:   "Transitions",
			source: ":(dissolve, 0.5):coverpage\n:(pushleft,2) : coverpage\n",
			want:   ":(dissolve):coverpage\n\n:(pushleft, 2):coverpage\n",
		},
		{
			name:   "CitationNeedsSpaceAfterHash",
			source: ":citation\n#Quote\n--Someone\n",
			want:   "",
		},
		{
			name:   "CitationSpacing",
			source: ":citation\n#   /Quote/  \n   --Someone\n",
			want:   ":citation\n# /Quote/\n-- Someone\n",
		},
		{
			name:   "Images",
			source: ":fourimages\n[a] [ b ]\n[c][d]\n",
			want:   ":fourimages\n[a]\n[b]\n[c]\n[d]\n",
		},
		{
			name:   "ItemsImageAfter",
			source: ":items+image\n* a\n  *   b\n[i.png]\n",
			want:   ":items+image\n* a\n  * b\n[i.png]\n",
		},
		{
			name:   "ItemsImageBefore",
			source: ":items+image\n#\n[i.png]\n\n* a\n",
			want:   ":items+image\n[i.png]\n* a\n",
		},
		{
			name:   "EmptyItem",
			source: ":items\n# T\n*\n* x\n",
			want:   ":items\n# T\n*\n* x\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := keynote.Parse([]byte(test.source))
			if test.want == "" {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded; want error", test.source)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := new(strings.Builder)
			if err := Format(got, doc); err != nil {
				t.Fatal("Format:", err)
			}
			if diff := cmp.Diff(test.want, got.String()); diff != "" {
				t.Errorf("Format(...) (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatWriteError(t *testing.T) {
	doc, err := keynote.Parse([]byte("title: T\n:coverpage\n:coverpage\n"))
	if err != nil {
		t.Fatal(err)
	}
	errBroken := errors.New("broken")
	w := &failingWriter{ok: 1, err: errBroken}
	if err := Format(w, doc); !errors.Is(err, errBroken) {
		t.Errorf("Format(...) = %v; want %v", err, errBroken)
	}
	if w.calls != 2 {
		t.Errorf("Format called Write %d times; want 2", w.calls)
	}
}

// failingWriter accepts ok writes and then fails.
type failingWriter struct {
	ok    int
	calls int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.ok {
		return 0, w.err
	}
	return len(p), nil
}

func frames(doc *keynote.Document) string {
	sb := new(strings.Builder)
	for _, s := range doc.Slides {
		sb.WriteString(s.Frame)
	}
	return sb.String()
}
