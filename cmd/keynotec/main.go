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
// Keynotec converts a keynote deck into a Beamer presentation.
//
// Usage:
//
//	keynotec [-defaults file.yaml] [-o out.tex] [-fmt] [deck.key]
//
// Keynotec reads the named deck, or else standard input,
// and writes the TeX source of the presentation to standard output.
//
// The -defaults flag names a YAML file of metadata values
// used for keys the deck does not set.
// The -o flag names a file to write instead of standard output.
// The -fmt flag writes the deck reformatted as keynote source instead of TeX.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"zombiezen.com/go/keynote"
	"zombiezen.com/go/keynote/format"
)

var (
	defaultsFlag = flag.String("defaults", "", "read default metadata from YAML `file`")
	outFlag      = flag.String("o", "", "write output to `file`")
	fmtFlag      = flag.Bool("fmt", false, "write reformatted keynote source instead of TeX")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: keynotec [-defaults file.yaml] [-o out.tex] [-fmt] [deck.key]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("keynotec: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
	}

	var data []byte
	var err error
	name := "<stdin>"
	if flag.NArg() == 0 {
		data, err = io.ReadAll(os.Stdin)
	} else {
		name = flag.Arg(0)
		data, err = os.ReadFile(name)
	}
	if err != nil {
		log.Fatal(err)
	}
	defaults := keynote.DefaultMetadata()
	if *defaultsFlag != "" {
		overrides, err := readDefaults(*defaultsFlag)
		if err != nil {
			log.Fatal(err)
		}
		defaults = defaults.Merge(overrides)
	}

	out, err := convert(data, defaults, *fmtFlag)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	if *outFlag == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(*outFlag, out, 0666); err != nil {
		log.Fatal(err)
	}
}

// convert parses a deck and renders it as TeX,
// or as keynote source if reformat is true.
func convert(data []byte, defaults keynote.Metadata, reformat bool) ([]byte, error) {
	doc, err := keynote.Parse(data)
	if err != nil {
		return nil, err
	}
	if reformat {
		buf := new(bytes.Buffer)
		if err := format.Format(buf, doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	r := &keynote.TeXRenderer{Defaults: defaults}
	return r.AppendDocument(nil, doc)
}
