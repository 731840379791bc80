// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package token

import (
	"fmt"

	"github.com/consensys/go-lisp/pkg/util/source"
)

// ErrorKind identifies the cause of a token error.
type ErrorKind uint8

const (
	// InvalidChar indicates a character which cannot begin any token.
	InvalidChar ErrorKind = iota
	// Partial indicates a multi-character lexeme which was not completed.  No
	// lexeme of the current grammar can be partial.
	Partial
	// Overflow indicates an integer literal which does not fit in 64 bits.
	Overflow
)

// Error describes a failure to produce a token.
type Error struct {
	Kind ErrorKind
	// Offending character (InvalidChar only).
	Char rune
	// Span of the offending text.
	Span source.Span
}

// Message returns the error message without positional information.
func (e *Error) Message() string {
	switch e.Kind {
	case InvalidChar:
		return fmt.Sprintf("invalid character %q", e.Char)
	case Partial:
		return "incomplete token"
	default:
		return "integer literal out of range"
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span.Start(), e.Message())
}
