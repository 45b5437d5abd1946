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

// Package corpus provides access to example keynote sources
// and their expected parse results.
package corpus

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/tools/txtar"
)

// Example is a single keynote source with its expected result.
type Example struct {
	// Name is the archive name followed by the example name,
	// like "slides/bigtitle".
	Name    string
	Keynote string
	// Frames is the concatenation of the frames of every slide.
	// It is empty if the source does not parse.
	Frames string
	// Error is the expected error message if the source does not parse.
	Error string
}

//go:embed testdata/*.txtar
var archives embed.FS

// Load returns the examples from every archive in the corpus.
//
// Archives hold pairs of files.
// The first file of a pair is NAME.key, the source.
// The second is either NAME.tex, the expected frames,
// or NAME.err, the expected error message.
func Load() ([]Example, error) {
	names, err := fs.Glob(archives, "testdata/*.txtar")
	if err != nil {
		return nil, err
	}
	var examples []Example
	for _, name := range names {
		data, err := archives.ReadFile(name)
		if err != nil {
			return nil, err
		}
		archiveName := strings.TrimSuffix(path.Base(name), ".txtar")
		a := txtar.Parse(data)
		if len(a.Files)%2 != 0 {
			return nil, fmt.Errorf("load corpus: %s: odd number of files", name)
		}
		for i := 0; i < len(a.Files); i += 2 {
			source, result := a.Files[i], a.Files[i+1]
			exampleName := strings.TrimSuffix(source.Name, ".key")
			if exampleName == source.Name {
				return nil, fmt.Errorf("load corpus: %s: %s is not a .key file", name, source.Name)
			}
			ex := Example{
				Name:    archiveName + "/" + exampleName,
				Keynote: string(source.Data),
			}
			switch result.Name {
			case exampleName + ".tex":
				ex.Frames = string(result.Data)
			case exampleName + ".err":
				ex.Error = strings.TrimSpace(string(result.Data))
			default:
				return nil, fmt.Errorf("load corpus: %s: %s does not match %s", name, result.Name, source.Name)
			}
			examples = append(examples, ex)
		}
	}
	return examples, nil
}
