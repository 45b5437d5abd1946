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

// Metadata maps metadata keys to their values.
// Keys are always members of [MetadataKeys].
type Metadata map[string]string

// metadataKeys is the fixed set of keys recognized in a document's header,
// in the order the formatter writes them.
var metadataKeys = []string{
	"theme",
	"author",
	"institute",
	"date",
	"title",
	"subtitle",
	"language",
	"slidenumber",
	"fullscreen",
}

// MetadataKeys returns the recognized metadata keys in canonical order.
func MetadataKeys() []string {
	return append([]string(nil), metadataKeys...)
}

// IsMetadataKey reports whether key may appear in a document's metadata.
func IsMetadataKey(key string) bool {
	for _, k := range metadataKeys {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultMetadata returns the values used
// for keys a document does not define.
func DefaultMetadata() Metadata {
	return Metadata{
		"theme":       "",
		"author":      "",
		"institute":   "",
		"date":        "",
		"title":       "",
		"subtitle":    "",
		"language":    "english",
		"slidenumber": "none",
		"fullscreen":  "false",
	}
}

// Merge returns a new map with the entries of m
// overlaid by the entries of overrides.
func (m Metadata) Merge(overrides Metadata) Metadata {
	merged := make(Metadata, len(m)+len(overrides))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// parseMetadata parses the document header:
//
//	metadata := (KEY ':' LINE)*
//
// It stops, without consuming anything,
// at the first token that is not a metadata key.
func parseMetadata(c Cursor) (Metadata, Cursor, error) {
	m := make(Metadata)
	for {
		key, next := nextToken(c)
		if !IsMetadataKey(key) {
			return m, c, nil
		}
		value, next, err := parseMetadataValue(next)
		if err != nil {
			return nil, c, err
		}
		m[key] = value
		c = next
	}
}

// parseMetadataValue parses ':' LINE.
func parseMetadataValue(c Cursor) (string, Cursor, error) {
	c = skipBlanks(c)
	if c.peek() != ':' {
		return "", c, syntaxErrorf(c.Line(), "expected ':'")
	}
	value, c := parseLine(skipBlanks(c.advance(1)))
	return value, c, nil
}
