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

	"github.com/consensys/go-lisp/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// NUMBER signals an integer literal (decimal or hexadecimal)
const NUMBER uint = 2

// SYMBOL signals a symbol
const SYMBOL uint = 3

// LPAREN signals "("
const LPAREN uint = 4

// RPAREN signals ")"
const RPAREN uint = 5

// LCURLY signals "{"
const LCURLY uint = 6

// RCURLY signals "}"
const RCURLY uint = 7

// LSQUARE signals "["
const LSQUARE uint = 8

// RSQUARE signals "]"
const RSQUARE uint = 9

// PREFIX_HASTYPE signals ":"
const PREFIX_HASTYPE uint = 10

// PREFIX_LAMBDA signals "\"
const PREFIX_LAMBDA uint = 11

// PREFIX_QUASIQUOTE signals "`"
const PREFIX_QUASIQUOTE uint = 12

// PREFIX_QUOTE signals "'"
const PREFIX_QUOTE uint = 13

// PREFIX_UNQUOTE signals "~"
const PREFIX_UNQUOTE uint = 14

// ============================================================================
// Delimiters
// ============================================================================

// Delimiter identifies one of the three bracket pairs.
type Delimiter uint8

const (
	// Paren is "(" ... ")", a plain application.
	Paren Delimiter = iota
	// Brace is "{" ... "}", a map literal.
	Brace
	// Square is "[" ... "]", a list literal.
	Square
)

// Open returns the opening character of this delimiter.
func (d Delimiter) Open() rune {
	return [...]rune{'(', '{', '['}[d]
}

// Close returns the closing character of this delimiter.
func (d Delimiter) Close() rune {
	return [...]rune{')', '}', ']'}[d]
}

func (d Delimiter) String() string {
	return string([]rune{d.Open(), d.Close()})
}

// ============================================================================
// Prefixes
// ============================================================================

// Prefix identifies one of the five reader macro introducers.
type Prefix uint8

const (
	// HasType is ":", which takes two operands (type then value).
	HasType Prefix = iota
	// Lambda is "\", shorthand for a lambda.
	Lambda
	// Quasiquote is "`".
	Quasiquote
	// Quote is "'".
	Quote
	// Unquote is "~".
	Unquote
)

var prefixChars = [...]rune{':', '\\', '`', '\'', '~'}

// Char returns the character introducing this prefix.
func (p Prefix) Char() rune {
	return prefixChars[p]
}

// Arity returns the number of operands this prefix takes.
func (p Prefix) Arity() uint {
	if p == HasType {
		return 2
	}
	//
	return 1
}

func (p Prefix) String() string {
	return string(p.Char())
}

// IsPrefixChar checks whether a given character introduces a prefix.
func IsPrefixChar(r rune) bool {
	for _, c := range prefixChars {
		if c == r {
			return true
		}
	}
	//
	return false
}

// IsBracketChar checks whether a given character opens or closes a group.
func IsBracketChar(r rune) bool {
	switch r {
	case '(', ')', '{', '}', '[', ']':
		return true
	default:
		return false
	}
}

// ============================================================================
// Tokens
// ============================================================================

// Token is a spanned lexical token, decorated with its decoded value.
type Token struct {
	lex.Token
	// Value of a NUMBER token.
	Value int64
	// Text of a SYMBOL token.
	Text string
}

// Open checks whether this token opens a group, returning its delimiter.
func (t Token) Open() (Delimiter, bool) {
	switch t.Kind {
	case LPAREN:
		return Paren, true
	case LCURLY:
		return Brace, true
	case LSQUARE:
		return Square, true
	}
	//
	return 0, false
}

// Close checks whether this token closes a group, returning its delimiter.
func (t Token) Close() (Delimiter, bool) {
	switch t.Kind {
	case RPAREN:
		return Paren, true
	case RCURLY:
		return Brace, true
	case RSQUARE:
		return Square, true
	}
	//
	return 0, false
}

// Prefix checks whether this token is a prefix marker, returning its kind.
func (t Token) Prefix() (Prefix, bool) {
	if t.Kind >= PREFIX_HASTYPE && t.Kind <= PREFIX_UNQUOTE {
		return Prefix(t.Kind - PREFIX_HASTYPE), true
	}
	//
	return 0, false
}

func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return fmt.Sprintf("%d", t.Value)
	case SYMBOL:
		return t.Text
	}
	//
	return KindName(t.Kind)
}

var kindNames = [...]string{
	"end of file", "whitespace", "number", "symbol", "(", ")", "{", "}", "[", "]", ":", "\\", "`", "'", "~",
}

// KindName returns a human-readable name for a given token kind.
func KindName(kind uint) string {
	if kind < uint(len(kindNames)) {
		return kindNames[kind]
	}
	//
	return fmt.Sprintf("kind#%d", kind)
}
