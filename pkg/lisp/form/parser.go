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
package form

import (
	"errors"
	"io"

	"github.com/consensys/go-lisp/pkg/lisp/token"
	"github.com/consensys/go-lisp/pkg/util/collection/stack"
)

// TokenSource is anything which produces tokens, signalling the end of input
// with io.EOF.  Any other error should be a *token.Error.
type TokenSource interface {
	Next() (token.Token, error)
}

// Parse a given piece of text into zero or more forms, along with any errors
// encountered.  Parsing resumes after each error.
func Parse(text []rune) ([]Form, []error) {
	return NewParser(token.NewScanner(text)).All()
}

// Parser incrementally turns a sequence of tokens into a sequence of forms.
// Constructs which have been opened but not yet completed are held on a stack
// (innermost on top).  The parser can be resumed after an error.
type Parser struct {
	tokens TokenSource
	stack  *stack.Stack[Partial]
}

// NewParser constructs a parser over a given token source.
func NewParser(tokens TokenSource) *Parser {
	return &Parser{tokens, stack.NewStack[Partial]()}
}

// Next returns the next complete top-level form.  When the input is exhausted
// with nothing open, this returns io.EOF.  Otherwise, errors are always of type
// *Error.
func (p *Parser) Next() (Form, error) {
	for {
		tok, err := p.tokens.Next()
		//
		if errors.Is(err, io.EOF) {
			if p.stack.IsEmpty() {
				return nil, io.EOF
			}
			//
			return nil, &Error{Kind: Incomplete, Partials: p.release()}
		} else if err != nil {
			return nil, p.tokenFailure(err)
		}
		// Check what we have
		var form Form
		//
		if open, ok := tok.Open(); ok {
			p.stack.Push(&PartialGroup{Open: Delimited{open, tok.Span}})
			continue
		} else if prefix, ok := tok.Prefix(); ok {
			p.pushPrefix(Prefixed{prefix, tok.Span})
			continue
		} else if closer, ok := tok.Close(); ok {
			if form, err = p.close(Delimited{closer, tok.Span}); err != nil {
				return nil, err
			}
		} else if tok.Kind == token.NUMBER {
			form = &Int{tok.Value, tok.Span}
		} else {
			form = &Symbol{tok.Text, tok.Span}
		}
		// Thread the completed form outwards
		if form = p.fold(form); form != nil {
			return form, nil
		}
	}
}

// All returns all remaining forms, along with any errors encountered.
func (p *Parser) All() ([]Form, []error) {
	var (
		forms []Form
		errs  []error
	)
	//
	for {
		form, err := p.Next()
		//
		if errors.Is(err, io.EOF) {
			return forms, errs
		} else if err != nil {
			errs = append(errs, err)
		} else {
			forms = append(forms, form)
		}
	}
}

func (p *Parser) pushPrefix(prefix Prefixed) {
	if prefix.Kind.Arity() == 2 {
		p.stack.Push(&PartialHasType{Prefix: prefix})
	} else {
		p.stack.Push(&PartialQuoting{prefix})
	}
}

// Close the innermost open construct, which must be a group of matching kind.
func (p *Parser) close(closer Delimited) (Form, error) {
	top, ok := p.stack.Top()
	//
	if !ok {
		return nil, &Error{Kind: Incomplete, Close: &closer}
	} else if group, ok := top.(*PartialGroup); ok && group.Open.Kind == closer.Kind {
		p.stack.Pop()
		//
		return &Group{group.Open, closer, group.Children}, nil
	}
	//
	return nil, &Error{Kind: DoesNotComplete, Close: &closer, Partials: p.release()}
}

// Fold a completed form into the enclosing constructs, completing as many of
// them as possible.  This returns the form itself if it is now a top-level form,
// or nil if some enclosing construct still awaits further input.
func (p *Parser) fold(form Form) Form {
	for !p.stack.IsEmpty() {
		switch outer := p.stack.Pop().(type) {
		case *PartialQuoting:
			form = &Macro{Prefix: outer.Prefix, Value: form}
		case *PartialHasType:
			if outer.Type == nil {
				p.stack.Push(&PartialHasType{outer.Prefix, form})
				return nil
			}
			//
			form = &Macro{outer.Prefix, outer.Type, form}
		case *PartialGroup:
			outer.Children = append(outer.Children, form)
			p.stack.Push(outer)
			//
			return nil
		}
	}
	//
	return form
}

// Snapshot the open constructs (outermost first) and clear the stack.
func (p *Parser) release() []Partial {
	partials := p.stack.Take()
	//
	for i, partial := range partials {
		partials[i] = partial.clone()
	}
	//
	return partials
}

// Construct an error for a failing token, without disturbing the stack.
func (p *Parser) tokenFailure(err error) error {
	var (
		terr     *token.Error
		partials = p.stack.Snapshot()
	)
	//
	if !errors.As(err, &terr) {
		return err
	}
	//
	for i, partial := range partials {
		partials[i] = partial.clone()
	}
	//
	return &Error{Kind: TokenFailure, Token: terr, Partials: partials}
}
