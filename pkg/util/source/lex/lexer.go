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
package lex

import "github.com/consensys/go-lisp/pkg/util/source"

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of characters with a given
// tag.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
	// Set when matches can never contain a newline.
	inline bool
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag, false}
}

// InlineRule constructs a new lexing rule whose matches never contain a newline,
// which allows positions to be advanced without inspecting the matched text.
func InlineRule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag, true}
}

// Lexer provides a top-level construct for tokenising a given input string.
// Unlike a one-shot tokeniser, the lexer hands out tokens one at a time and
// tracks the line / column position reached so far.  When no rule matches, the
// lexer stops and it is up to the caller to decide whether to skip the
// offending characters (see Skip) or give up.
type Lexer struct {
	items []rune
	index int
	// Position reached so far (i.e. position of items[index]).
	pos source.Position
	// Set once the end-of-file token has been produced.
	done  bool
	rules []LexRule[rune]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer(input []rune, rules ...LexRule[rune]) *Lexer {
	return &Lexer{
		items: input,
		rules: rules,
	}
}

// Lookahead returns the next unscanned character, or false if none remain.
func (p *Lexer) Lookahead() (rune, bool) {
	if p.index < len(p.items) {
		return p.items[p.index], true
	}
	//
	return 0, false
}

// Next scans the next token.  This returns false when either the input is
// exhausted (after any end-of-file token has been produced), or when no rule
// matches the remaining input.
func (p *Lexer) Next() (Token, bool) {
	if p.done || p.index > len(p.items) {
		return Token{}, false
	}
	// Look for item
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			// Determine span, taking care to track line endings.
			start := p.pos
			//
			if r.inline {
				p.pos = start.AdvanceColumns(end - p.index)
			} else {
				p.pos = start.Advance(p.items[p.index:end])
			}
			// Check for EOF condition
			if p.index == end {
				p.done = true
			}
			//
			p.index = end
			// Done
			return Token{r.tag, source.NewSpan(start, p.pos)}, true
		}
	}
	// Nothing matched
	return Token{}, false
}

// Skip advances over (at most) n characters which could not be matched by any
// rule, returning the span covered.
func (p *Lexer) Skip(n uint) source.Span {
	end := min(len(p.items), p.index+int(n))
	start := p.pos
	//
	p.pos = start.Advance(p.items[p.index:end])
	p.index = end
	//
	return source.NewSpan(start, p.pos)
}
