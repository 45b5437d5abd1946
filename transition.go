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
	"strconv"
)

// DefaultTransitionDuration is the duration in seconds
// of a transition that does not specify one.
const DefaultTransitionDuration = 0.5

// Transition is an animation played when a slide is shown.
type Transition struct {
	Kind TransitionKind
	// Duration is the length of the animation in seconds.
	Duration float64
}

// TransitionKind is an enumeration of slide transition effects.
type TransitionKind int

const (
	DissolveTransition TransitionKind = 1 + iota
	PushRightTransition
	PushLeftTransition
	CoverTopTransition
	CoverBottomTransition
)

// String returns the name used for the transition in keynote source.
func (kind TransitionKind) String() string {
	switch kind {
	case DissolveTransition:
		return "dissolve"
	case PushRightTransition:
		return "pushright"
	case PushLeftTransition:
		return "pushleft"
	case CoverTopTransition:
		return "covertop"
	case CoverBottomTransition:
		return "coverbottom"
	default:
		return fmt.Sprintf("TransitionKind(%d)", int(kind))
	}
}

func parseTransitionKind(name string) (TransitionKind, bool) {
	switch name {
	case "dissolve":
		return DissolveTransition, true
	case "pushright":
		return PushRightTransition, true
	case "pushleft":
		return PushLeftTransition, true
	case "covertop":
		return CoverTopTransition, true
	case "coverbottom":
		return CoverBottomTransition, true
	default:
		return 0, false
	}
}

// effect returns the Beamer command and direction in degrees for the transition.
func (kind TransitionKind) effect() (command string, direction int) {
	switch kind {
	case DissolveTransition:
		return `\transdissolve`, 0
	case PushRightTransition:
		return `\transcover`, 0
	case PushLeftTransition:
		return `\transcover`, 180
	case CoverTopTransition:
		return `\transcover`, 90
	case CoverBottomTransition:
		return `\transcover`, 270
	default:
		panic("unknown transition")
	}
}

// parseTransition parses a transition annotation
// starting at its opening parenthesis:
//
//	transition := '(' NAME (',' NUMBER)? ')'
func parseTransition(c Cursor) (*Transition, Cursor, error) {
	start := c.Line()
	c = c.advance(len("("))
	rest := c.Rest()
	n := 0
	for n < len(rest) && !isSpace(rest[n]) && rest[n] != ',' && rest[n] != ')' {
		n++
	}
	name := rest[:n]
	kind, ok := parseTransitionKind(name)
	if !ok {
		return nil, c, syntaxErrorf(start, "invalid transition %q", name)
	}
	c = skipSpace(c.advance(n))
	if c.peek() == ',' {
		c = skipSpace(c.advance(1))
	}

	t := &Transition{Kind: kind, Duration: DefaultTransitionDuration}
	if isASCIIDigit(c.peek()) {
		rest = c.Rest()
		n = 0
		for n < len(rest) && (isASCIIDigit(rest[n]) || rest[n] == '.') {
			n++
		}
		d, err := strconv.ParseFloat(rest[:n], 64)
		if err != nil {
			return nil, c, syntaxErrorf(c.Line(), "invalid transition duration %q", rest[:n])
		}
		t.Duration = d
		c = skipSpace(c.advance(n))
	}
	if c.peek() != ')' {
		return nil, c, syntaxErrorf(c.Line(), "expected ')'")
	}
	return t, c.advance(1), nil
}

// appendTransition appends frame wrapped in the setup for t to dst.
func appendTransition(dst []byte, t *Transition, frame []byte) []byte {
	command, direction := t.Kind.effect()
	dst = append(dst, `{\addtobeamertemplate{background canvas}{`...)
	dst = append(dst, command...)
	dst = append(dst, "[direction="...)
	dst = strconv.AppendInt(dst, int64(direction), 10)
	dst = append(dst, ",duration="...)
	dst = strconv.AppendFloat(dst, t.Duration, 'f', -1, 64)
	dst = append(dst, "]}{}"...)
	dst = append(dst, frame...)
	dst = append(dst, "}\n"...)
	return dst
}
