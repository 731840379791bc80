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
	"errors"
	"io"
	"strconv"
	"unicode"

	"github.com/consensys/go-lisp/pkg/util/source"
	"github.com/consensys/go-lisp/pkg/util/source/lex"
)

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Satisfy(unicode.IsSpace))

// Rule for describing numbers.  A number is either hexadecimal (which requires
// at least one digit after the "0x") or decimal.
var (
	hexDigit = lex.Or(
		lex.Within('0', '9'),
		lex.Within('A', 'F'),
		lex.Within('a', 'f'),
	)
	hexNumber     = lex.Sequence(lex.String("0x"), lex.Many(hexDigit))
	decimalNumber = lex.Many(lex.Within('0', '9'))
	number        = lex.Or(hexNumber, decimalNumber)
)

// Rule for describing symbols.  Digits may appear anywhere except at the start.
var (
	symbolStart = lex.Satisfy(func(r rune) bool {
		return isSymbolChar(r) && !unicode.IsDigit(r)
	})
	symbolRest = lex.Many(lex.Satisfy(isSymbolChar))
	symbol     = lex.And(symbolStart, symbolRest)
)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.InlineRule(lex.Unit('('), LPAREN),
	lex.InlineRule(lex.Unit(')'), RPAREN),
	lex.InlineRule(lex.Unit('{'), LCURLY),
	lex.InlineRule(lex.Unit('}'), RCURLY),
	lex.InlineRule(lex.Unit('['), LSQUARE),
	lex.InlineRule(lex.Unit(']'), RSQUARE),
	lex.InlineRule(lex.Unit(':'), PREFIX_HASTYPE),
	lex.InlineRule(lex.Unit('\\'), PREFIX_LAMBDA),
	lex.InlineRule(lex.Unit('`'), PREFIX_QUASIQUOTE),
	lex.InlineRule(lex.Unit('\''), PREFIX_QUOTE),
	lex.InlineRule(lex.Unit('~'), PREFIX_UNQUOTE),
	lex.Rule(whitespace, WHITESPACE),
	lex.InlineRule(number, NUMBER),
	lex.InlineRule(symbol, SYMBOL),
	lex.Rule(lex.Eof[rune](), END_OF),
}

func isSymbolChar(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsControl(r) && !IsBracketChar(r) && !IsPrefixChar(r)
}

// Scanner turns a sequence of characters into a sequence of tokens.  Whitespace
// is dropped.  Any character which cannot start a token is reported as an
// error, after which scanning resumes at the following character.
type Scanner struct {
	text  []rune
	lexer *lex.Lexer
}

// NewScanner constructs a scanner over the given text.
func NewScanner(text []rune) *Scanner {
	return &Scanner{text, lex.NewLexer(text, rules...)}
}

// Next returns the next (non-whitespace) token, or io.EOF if the input is
// exhausted.  Errors are always of type *Error.
func (p *Scanner) Next() (Token, error) {
	for {
		tok, ok := p.lexer.Next()
		//
		if !ok {
			r, more := p.lexer.Lookahead()
			//
			if !more {
				return Token{}, io.EOF
			}
			// Skip over the offending character
			span := p.lexer.Skip(1)
			//
			return Token{}, &Error{InvalidChar, r, span}
		}
		//
		switch tok.Kind {
		case WHITESPACE:
			continue
		case END_OF:
			return Token{}, io.EOF
		case NUMBER:
			return p.number(tok)
		case SYMBOL:
			return Token{Token: tok, Text: p.slice(tok.Span)}, nil
		default:
			return Token{Token: tok}, nil
		}
	}
}

func (p *Scanner) number(tok lex.Token) (Token, error) {
	var (
		text  = p.slice(tok.Span)
		value int64
		err   error
	)
	//
	if len(text) > 2 && text[1] == 'x' {
		value, err = strconv.ParseInt(text[2:], 16, 64)
	} else {
		value, err = strconv.ParseInt(text, 10, 64)
	}
	//
	if err != nil {
		return Token{}, &Error{Overflow, 0, tok.Span}
	}
	//
	return Token{Token: tok, Value: value}, nil
}

func (p *Scanner) slice(span source.Span) string {
	return string(p.text[span.Start().Offset:span.End().Offset])
}

// Tokenize a given piece of text into its tokens, along with any errors
// encountered.  Scanning continues after errors.
func Tokenize(text []rune) ([]Token, []error) {
	var (
		scanner = NewScanner(text)
		tokens  []Token
		errs    []error
	)
	//
	for {
		tok, err := scanner.Next()
		//
		if errors.Is(err, io.EOF) {
			return tokens, errs
		} else if err != nil {
			errs = append(errs, err)
		} else {
			tokens = append(tokens, tok)
		}
	}
}
