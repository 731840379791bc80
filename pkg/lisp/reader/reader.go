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
package reader

import (
	"fmt"

	"github.com/consensys/go-lisp/pkg/lisp/expr"
	"github.com/consensys/go-lisp/pkg/lisp/form"
	"github.com/consensys/go-lisp/pkg/lisp/token"
	"github.com/consensys/go-lisp/pkg/util/source"
)

// MAP_BUILDER is the symbol heading a desugared "{...}" group.
const MAP_BUILDER = "map"

// LIST_BUILDER is the symbol heading a desugared "[...]" group.
const LIST_BUILDER = "list"

// Reader converts forms into expressions, reducing all surface syntax to plain
// application lists headed by either a symbol or a special.  Every expression
// read records the source file it came from (if known).
type Reader struct {
	file *source.File
}

// NewReader constructs a reader for forms parsed from a given file.
func NewReader(file *source.File) *Reader {
	return &Reader{file}
}

// Read converts a form into an expression, without recording any source file.
func Read(f form.Form) (expr.Expr, error) {
	return NewReader(nil).Read(f)
}

// ReadAll reads a sequence of forms, without recording any source file.
func ReadAll(forms []form.Form) ([]expr.Expr, []error) {
	return NewReader(nil).ReadAll(forms)
}

// Read converts a form into an expression.
func (p *Reader) Read(f form.Form) (expr.Expr, error) {
	meta := p.meta(f.Span())
	//
	switch f := f.(type) {
	case *form.Int:
		return expr.NewInt(f.Value, meta), nil
	case *form.Symbol:
		return expr.NewSymbol(f.Text, meta), nil
	case *form.Group:
		return p.readGroup(f)
	case *form.Macro:
		return p.readMacro(f)
	default:
		panic(fmt.Sprintf("unknown form encountered (%T)", f))
	}
}

// ReadAll reads a sequence of forms, continuing after any errors.
func (p *Reader) ReadAll(forms []form.Form) ([]expr.Expr, []error) {
	var (
		exprs []expr.Expr
		errs  []error
	)
	//
	for _, f := range forms {
		if e, err := p.Read(f); err != nil {
			errs = append(errs, err)
		} else {
			exprs = append(exprs, e)
		}
	}
	//
	return exprs, errs
}

func (p *Reader) readGroup(group *form.Group) (expr.Expr, error) {
	var items []expr.Expr
	// Inject builder (if applicable)
	switch group.Kind() {
	case token.Brace:
		items = append(items, expr.NewSymbol(MAP_BUILDER, p.meta(group.Open.Span)))
	case token.Square:
		items = append(items, expr.NewSymbol(LIST_BUILDER, p.meta(group.Open.Span)))
	}
	//
	for i := 0; i < len(group.Children); {
		// Lambda shorthand heading an application is the application itself
		if m, ok := isLambda(group.Children[i]); ok && i == 0 && group.Kind() == token.Paren {
			param, err := p.Read(m.Value)
			if err != nil {
				return nil, err
			}
			//
			items = append(items, p.special(m.Prefix), param)
			i++
			//
			continue
		}
		//
		item, n, err := p.readItem(group.Children[i:])
		if err != nil {
			return nil, err
		}
		//
		items = append(items, item)
		i += n
	}
	// Sanity check maps (the injected builder is not an operand)
	if group.Kind() == token.Brace && len(items)%2 == 0 {
		return nil, &Error{UnbalancedMap, group}
	}
	//
	return expr.NewList(p.meta(group.Span()), items...), nil
}

// Read the first of a sequence of sibling forms, returning how many siblings
// were consumed.  Lambda shorthand takes the sibling following it as its body,
// so "[\x x]" holds one function.
func (p *Reader) readItem(siblings []form.Form) (expr.Expr, int, error) {
	m, ok := isLambda(siblings[0])
	//
	if !ok || len(siblings) == 1 {
		item, err := p.Read(siblings[0])
		return item, 1, err
	}
	//
	param, err := p.Read(m.Value)
	if err != nil {
		return nil, 0, err
	}
	//
	body, n, err := p.readItem(siblings[1:])
	if err != nil {
		return nil, 0, err
	}
	//
	span := m.Span().Join(siblings[n].Span())
	//
	return expr.NewList(p.meta(span), p.special(m.Prefix), param, body), n + 1, nil
}

func isLambda(f form.Form) (*form.Macro, bool) {
	m, ok := f.(*form.Macro)
	//
	return m, ok && m.Prefix.Kind == token.Lambda
}

func (p *Reader) readMacro(macro *form.Macro) (expr.Expr, error) {
	var (
		meta = p.meta(macro.Span())
		head = p.special(macro.Prefix)
	)
	//
	value, err := p.Read(macro.Value)
	if err != nil {
		return nil, err
	}
	//
	if macro.Type != nil {
		typ, err := p.Read(macro.Type)
		if err != nil {
			return nil, err
		}
		//
		return expr.NewList(meta, head, typ, value), nil
	}
	//
	return expr.NewList(meta, head, value), nil
}

// Determine the special corresponding to a given prefix.
func (p *Reader) special(prefix form.Prefixed) *expr.Special {
	var kind expr.SpecialKind
	//
	switch prefix.Kind {
	case token.HasType:
		kind = expr.The
	case token.Lambda:
		kind = expr.Lambda
	case token.Quasiquote:
		kind = expr.Quasiquote
	case token.Quote:
		kind = expr.Quote
	case token.Unquote:
		kind = expr.Unquote
	}
	//
	return expr.NewSpecial(kind, p.meta(prefix.Span))
}

func (p *Reader) meta(span source.Span) *expr.Meta {
	return expr.NewSourceMeta(p.file, span)
}

// ============================================================================
// Errors
// ============================================================================

// ErrorKind identifies the cause of a read error.
type ErrorKind uint8

const (
	// UnbalancedMap indicates a map literal with a key lacking a value.
	UnbalancedMap ErrorKind = iota
)

// Error describes a form which has no corresponding expression.
type Error struct {
	Kind ErrorKind
	Form form.Form
}

// Span returns the offending source text.
func (e *Error) Span() source.Span {
	return e.Form.Span()
}

// Message returns the error message without positional information.
func (e *Error) Message() string {
	return "map literal requires an even number of items"
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Span().Start(), e.Message())
}
