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

import "fmt"

// ErrorKind classifies a parse [Error].
type ErrorKind int

const (
	// SyntaxError indicates the input did not match the grammar:
	// a missing delimiter, an unknown keyword, or a malformed number.
	SyntaxError ErrorKind = 1 + iota
	// StructuralError indicates a well-formed input
	// that does not make up a valid document:
	// no slides, trailing content, bad indentation,
	// or an unterminated construct.
	StructuralError
)

// String returns a human-readable name for the kind.
func (kind ErrorKind) String() string {
	switch kind {
	case SyntaxError:
		return "syntax error"
	case StructuralError:
		return "structural error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(kind))
	}
}

// Error is the error type returned by [Parse].
// Every parse error is fatal: no partial [Document] is produced.
type Error struct {
	Kind ErrorKind
	// Line is the 1-based line at which the problem was detected.
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func syntaxErrorf(line int, format string, args ...any) error {
	return &Error{Kind: SyntaxError, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func structuralErrorf(line int, format string, args ...any) error {
	return &Error{Kind: StructuralError, Line: line, Msg: fmt.Sprintf(format, args...)}
}
