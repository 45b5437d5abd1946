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

import "testing"

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input    string
		wantRest string
		wantLine int
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"  \t abc", "abc", 1},
		{"\n\n  abc\n", "abc\n", 3},
		{" \r\n\t\n", "", 3},
	}
	for _, test := range tests {
		got := skipSpace(NewCursor(test.input, 1))
		if got.Rest() != test.wantRest || got.Line() != test.wantLine {
			t.Errorf("skipSpace(%q) = {%q, line %d}; want {%q, line %d}",
				test.input, got.Rest(), got.Line(), test.wantRest, test.wantLine)
		}
	}
	if got := skipSpace(NewCursor("\n \n", 1)); !got.Exhausted() {
		t.Errorf("skipSpace on whitespace-only input: Exhausted() = false; want true")
	}
}

func TestSkipBlankLines(t *testing.T) {
	tests := []struct {
		input    string
		wantRest string
		wantLine int
	}{
		{"", "", 1},
		{"  * a\n", "  * a\n", 1},
		{"\n  \n  * a\n", "  * a\n", 3},
		{"\t\n\n", "", 3},
		{"  ", "", 1},
	}
	for _, test := range tests {
		got := skipBlankLines(NewCursor(test.input, 1))
		if got.Rest() != test.wantRest || got.Line() != test.wantLine {
			t.Errorf("skipBlankLines(%q) = {%q, line %d}; want {%q, line %d}",
				test.input, got.Rest(), got.Line(), test.wantRest, test.wantLine)
		}
	}
}

func TestNextToken(t *testing.T) {
	tests := []struct {
		input     string
		wantToken string
		wantRest  string
		wantLine  int
	}{
		{"", "", "", 1},
		{"title: x", "title", ": x", 1},
		{"\n  theme2 :", "theme2", " :", 2},
		{":coverpage", "", ":coverpage", 1},
		{"items+image", "items", "+image", 1},
	}
	for _, test := range tests {
		token, c := nextToken(NewCursor(test.input, 1))
		if token != test.wantToken || c.Rest() != test.wantRest || c.Line() != test.wantLine {
			t.Errorf("nextToken(%q) = %q, {%q, line %d}; want %q, {%q, line %d}",
				test.input, token, c.Rest(), c.Line(), test.wantToken, test.wantRest, test.wantLine)
		}
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantRest string
		wantLine int
	}{
		{
			name:     "Terminated",
			input:    "  hello world \nnext\n",
			want:     "hello world",
			wantRest: "next\n",
			wantLine: 2,
		},
		{
			name:     "EmptyLine",
			input:    "\nnext",
			want:     "",
			wantRest: "next",
			wantLine: 2,
		},
		{
			// The end of input acts as a line terminator.
			name:     "FinalLineWithoutNewline",
			input:    "last line",
			want:     "last line",
			wantRest: "",
			wantLine: 1,
		},
		{
			name:     "Exhausted",
			input:    "",
			want:     "",
			wantRest: "",
			wantLine: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, c := parseLine(NewCursor(test.input, 1))
			if got != test.want || c.Rest() != test.wantRest || c.Line() != test.wantLine {
				t.Errorf("parseLine(%q) = %q, {%q, line %d}; want %q, {%q, line %d}",
					test.input, got, c.Rest(), c.Line(), test.want, test.wantRest, test.wantLine)
			}
		})
	}
}

func TestParseFormattedLine(t *testing.T) {
	got, c := parseFormattedLine(NewCursor(" a *b* c\n*d", 7))
	if want := `a \textbf{b} c`; got != want {
		t.Errorf("parseFormattedLine(...) = %q; want %q", got, want)
	}
	if c.Line() != 8 || c.Rest() != "*d" {
		t.Errorf("parseFormattedLine(...) cursor = {%q, line %d}; want {%q, line 8}", c.Rest(), c.Line(), "*d")
	}
}
