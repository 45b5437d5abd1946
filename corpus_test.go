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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/keynote/internal/corpus"
)

func TestCorpus(t *testing.T) {
	for _, ex := range loadCorpus(t) {
		t.Run(ex.Name, func(t *testing.T) {
			doc, err := Parse([]byte(ex.Keynote))
			if ex.Error != "" {
				if err == nil {
					t.Fatalf("Parse(...) succeeded; want error %q\nInput:\n%s", ex.Error, ex.Keynote)
				}
				if got := err.Error(); got != ex.Error {
					t.Errorf("Parse(...) error = %q; want %q\nInput:\n%s", got, ex.Error, ex.Keynote)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(...): %v\nInput:\n%s", err, ex.Keynote)
			}
			got := new(strings.Builder)
			for _, s := range doc.Slides {
				got.WriteString(s.Frame)
			}
			if diff := cmp.Diff(ex.Frames, got.String()); diff != "" {
				t.Errorf("Input:\n%s\nFrames (-want +got):\n%s", ex.Keynote, diff)
			}
		})
	}
}

func loadCorpus(tb testing.TB) []corpus.Example {
	tb.Helper()
	examples, err := corpus.Load()
	if err != nil {
		tb.Fatal(err)
	}
	return examples
}
