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
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"zombiezen.com/go/keynote"
)

// readDefaults reads a YAML mapping of metadata keys to values from a file.
func readDefaults(path string) (keynote.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}
	m, err := parseDefaults(data)
	if err != nil {
		return nil, fmt.Errorf("read defaults %s: %w", path, err)
	}
	return m, nil
}

// parseDefaults decodes a YAML mapping like:
//
//	author: Jane Doe
//	language: pt-BR
//	slidenumber: right bottom
//
// Every key must be a metadata key.
// An empty document yields an empty map.
func parseDefaults(data []byte) (keynote.Metadata, error) {
	var m keynote.Metadata
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if m == nil {
		m = make(keynote.Metadata)
	}
	for key := range m {
		if !keynote.IsMetadataKey(key) {
			return nil, fmt.Errorf("unknown metadata key %q", key)
		}
	}
	return m, nil
}
