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
package eval

import (
	"github.com/consensys/go-lisp/pkg/lisp/expr"
	log "github.com/sirupsen/logrus"
)

// Options controls the behaviour of an evaluator.
type Options struct {
	// CaptureClosures determines whether a lambda captures the bindings in scope
	// where it is evaluated.  By default, free symbols in a function body are
	// resolved against the stack at the point of call.
	CaptureClosures bool
	// MaxDepth bounds the nesting of evaluation.  Zero means no bound.
	MaxDepth uint
}

// DefaultOptions returns the default evaluator options.
func DefaultOptions() Options {
	return Options{CaptureClosures: false, MaxDepth: 0}
}

// Stats records what an evaluator has done.
type Stats struct {
	// Number of macro invocations during expansion.
	Expansions uint
	// Number of function calls (including macro invocations).
	Calls uint
	// Deepest evaluation nesting reached.
	Depth uint
}

// Eval evaluates an expression over a given stack with default options.
func Eval(e expr.Expr, stack *Stack) (expr.Expr, error) {
	return NewEvaluator(stack, DefaultOptions()).Eval(e)
}

// Evaluator evaluates expressions over a given stack.
type Evaluator struct {
	stack   *Stack
	options Options
	stats   Stats
	// Current nesting of evaluation
	depth uint
}

// NewEvaluator constructs an evaluator over a given stack.
func NewEvaluator(stack *Stack, options Options) *Evaluator {
	return &Evaluator{stack: stack, options: options}
}

// Stack returns the stack of this evaluator.
func (p *Evaluator) Stack() *Stack {
	return p.stack
}

// Stats returns statistics on what this evaluator has done so far.
func (p *Evaluator) Stats() Stats {
	return p.stats
}

// Assign binds a name in the current checkpoint.
func (p *Evaluator) Assign(name *expr.Symbol, value expr.Expr) {
	p.stack.Assign(name, value)
}

// Eval an expression.  The expression is first expanded (at the top level
// only), after which symbols are resolved, specials and primitives receive
// their raw operands, and anything else is applied one argument at a time.
func (p *Evaluator) Eval(e expr.Expr) (expr.Expr, error) {
	if p.options.MaxDepth != 0 && p.depth >= p.options.MaxDepth {
		return nil, &Error{Kind: DepthExceeded, Expr: e}
	}
	//
	p.depth++
	p.stats.Depth = max(p.stats.Depth, p.depth)
	//
	defer func() { p.depth-- }()
	//
	e, err := p.Expand(e)
	if err != nil {
		return nil, err
	}
	//
	switch e := e.(type) {
	case *expr.Symbol:
		value, err := p.stack.Lookup(e)
		if err != nil {
			return nil, err
		}
		// Remember where the value was referenced
		return value.WithMeta(value.Meta().PushOld(e.Meta())), nil
	case *expr.Macro:
		return nil, &Error{Kind: UnexpandedMacro, Expr: e}
	case *expr.List:
		return p.evalList(e)
	default:
		// self-evaluating
		return e, nil
	}
}

func (p *Evaluator) evalList(list *expr.List) (expr.Expr, error) {
	if list.IsEmpty() {
		return list, nil
	}
	//
	head, err := p.Eval(list.Head())
	if err != nil {
		return nil, err
	}
	//
	args := list.Tail().Values()
	//
	switch head := head.(type) {
	case *expr.Special:
		return p.special(head, list, args)
	case *expr.Primitive:
		return head.Fn(p, list, args)
	}
	// Curried application
	for _, arg := range args {
		value, err := p.Eval(arg)
		if err != nil {
			return nil, err
		}
		//
		if head, err = p.apply(head, value, list); err != nil {
			return nil, err
		}
	}
	//
	return head, nil
}

// Apply a callee to a single (evaluated) argument.
func (p *Evaluator) apply(callee expr.Expr, arg expr.Expr, site *expr.List) (expr.Expr, error) {
	if fn, ok := callee.(*expr.Fun); ok {
		return p.call(fn, arg)
	}
	//
	return nil, &Error{Kind: NotCallable, Expr: site, Callee: callee}
}

// Call a function with a given argument.  The function body is evaluated within
// a fresh checkpoint, which is always left again (even on failure).
func (p *Evaluator) call(fn *expr.Fun, arg expr.Expr) (result expr.Expr, err error) {
	p.stats.Calls++
	//
	log.Debugf("calling %s with %s", fn, arg)
	//
	p.stack.Enter()
	//
	defer func() {
		if lerr := p.stack.Leave(); lerr != nil && err == nil {
			result, err = nil, lerr
		}
	}()
	//
	if fn.Env != nil {
		p.stack.install(fn.Env)
	}
	//
	p.stack.Assign(fn.Param, arg)
	//
	return p.Eval(fn.Body)
}

// ============================================================================
// Expansion
// ============================================================================

// Expand an expression until it no longer changes (ignoring provenance).
func (p *Evaluator) Expand(e expr.Expr) (expr.Expr, error) {
	for {
		next, err := p.ExpandOnce(e)
		//
		if err != nil {
			return nil, err
		} else if expr.Equal(e, next) {
			return next, nil
		}
		//
		e = next
	}
}

// ExpandOnce expands an expression once.  Only a non-empty list headed by a
// macro (or by a symbol bound to a macro) is expanded, by passing its
// unevaluated operands to the macro.  Anything else is returned unchanged.
func (p *Evaluator) ExpandOnce(e expr.Expr) (expr.Expr, error) {
	list, ok := e.(*expr.List)
	//
	if !ok || list.IsEmpty() {
		return e, nil
	}
	//
	var macro *expr.Macro
	//
	switch head := list.Head().(type) {
	case *expr.Macro:
		macro = head
	case *expr.Symbol:
		if value, err := p.stack.Lookup(head); err == nil {
			macro, _ = value.(*expr.Macro)
		}
	}
	//
	if macro == nil {
		return e, nil
	}
	//
	p.stats.Expansions++
	//
	log.Debugf("expanding %s", list)
	//
	return p.call(macro.Fun(), list.Tail())
}
