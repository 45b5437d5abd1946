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
package format_test

import (
	"bytes"
	"os"

	"zombiezen.com/go/keynote"
	"zombiezen.com/go/keynote/format"
)

func ExampleFormat() {
	doc, err := keynote.Parse([]byte("" +
		"title:   Demo\n" +
		"author: Jane Doe\n" +
		":(dissolve, 0.5):bigtitle\n" +
		"#    *Hello*\n" +
		":items\n" +
		"# Agenda\n" +
		"\n" +
		"  *   one\n" +
		"      * two\n" +
		":code\n" +
		"```go\n" +
		"fmt.Println(\"hi\")\n" +
		"```\n"))
	if err != nil {
		panic(err)
	}
	out := new(bytes.Buffer)
	if err := format.Format(out, doc); err != nil {
		// Writing in-memory shouldn't fail.
		panic(err)
	}
	os.Stdout.Write(out.Bytes())
	// Output:
	// author: Jane Doe
	// title: Demo
	//
	// :(dissolve):bigtitle
	// # *Hello*
	//
	// :items
	// # Agenda
	//   * one
	//       * two
	//
	// :code
	// ```go
	// fmt.Println("hi")
	// ```
}
