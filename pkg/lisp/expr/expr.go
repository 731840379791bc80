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
package expr

import (
	"fmt"

	"github.com/consensys/go-lisp/pkg/util/intern"
)

// Expr is the uniform representation of both programs and the values they
// compute.  Expressions are immutable and may be freely shared.
type Expr interface {
	// Meta returns the provenance of this expression (which may be nil).
	Meta() *Meta
	// WithMeta returns a copy of this expression with the given provenance.
	WithMeta(*Meta) Expr
	// String returns the surface syntax for this expression.
	String() string
}

// ============================================================================
// Nil
// ============================================================================

// Nil is the empty value.
type Nil struct{}

// Meta implementation for Expr interface.
func (p Nil) Meta() *Meta {
	return nil
}

// WithMeta implementation for Expr interface.
func (p Nil) WithMeta(*Meta) Expr {
	return p
}

func (p Nil) String() string {
	return "nil"
}

// ============================================================================
// Int
// ============================================================================

// Int is a 64-bit signed integer.
type Int struct {
	Value int64
	meta  *Meta
}

// NewInt constructs a new integer.
func NewInt(value int64, meta *Meta) *Int {
	return &Int{value, meta}
}

// Meta implementation for Expr interface.
func (p *Int) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Int) WithMeta(meta *Meta) Expr {
	return &Int{p.Value, meta}
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Value)
}

// ============================================================================
// Symbol
// ============================================================================

// Symbol is a name, interned in the default table.
type Symbol struct {
	Name intern.Id
	meta *Meta
}

// NewSymbol constructs a new symbol, interning its name.
func NewSymbol(name string, meta *Meta) *Symbol {
	return &Symbol{intern.Default.Intern(name), meta}
}

// Meta implementation for Expr interface.
func (p *Symbol) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Symbol) WithMeta(meta *Meta) Expr {
	return &Symbol{p.Name, meta}
}

// Text returns the name of this symbol.
func (p *Symbol) Text() string {
	return intern.Default.Resolve(p.Name)
}

func (p *Symbol) String() string {
	return p.Text()
}

// ============================================================================
// Fun
// ============================================================================

// Fun is a function of exactly one parameter.  If the function was created
// with closure capture enabled then Env holds the bindings in scope at that
// time, otherwise it is nil.
type Fun struct {
	Param *Symbol
	Body  Expr
	Env   *Bindings
	meta  *Meta
}

// NewFun constructs a new (non-capturing) function.
func NewFun(param *Symbol, body Expr, meta *Meta) *Fun {
	return &Fun{param, body, nil, meta}
}

// Meta implementation for Expr interface.
func (p *Fun) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Fun) WithMeta(meta *Meta) Expr {
	return &Fun{p.Param, p.Body, p.Env, meta}
}

// Capture returns a copy of this function which closes over the given
// bindings.
func (p *Fun) Capture(env *Bindings) *Fun {
	return &Fun{p.Param, p.Body, env, p.meta}
}

func (p *Fun) String() string {
	return fmt.Sprintf("(lambda %s %s)", p.Param, p.Body)
}

// ============================================================================
// Macro
// ============================================================================

// Macro has the same shape as a function, but is applied to its unevaluated
// operands during expansion.
type Macro struct {
	Param *Symbol
	Body  Expr
	Env   *Bindings
	meta  *Meta
}

// NewMacro constructs a macro from a given function.
func NewMacro(fn *Fun, meta *Meta) *Macro {
	return &Macro{fn.Param, fn.Body, fn.Env, meta}
}

// Meta implementation for Expr interface.
func (p *Macro) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Macro) WithMeta(meta *Meta) Expr {
	return &Macro{p.Param, p.Body, p.Env, meta}
}

// Fun returns the function underlying this macro.
func (p *Macro) Fun() *Fun {
	return &Fun{p.Param, p.Body, p.Env, p.meta}
}

func (p *Macro) String() string {
	return fmt.Sprintf("(macro (lambda %s %s))", p.Param, p.Body)
}

// ============================================================================
// Primitive
// ============================================================================

// Context is what a primitive can ask of the evaluator calling it.
type Context interface {
	// Eval evaluates an expression in the current environment.
	Eval(Expr) (Expr, error)
	// Assign binds a name in the current environment.
	Assign(name *Symbol, value Expr)
}

// PrimitiveFn implements a primitive.  It receives the call site, along with
// the raw (unevaluated) operands.
type PrimitiveFn func(ctx Context, call *List, args []Expr) (Expr, error)

// Primitive is a built-in operation which, like a special form, receives its
// operands unevaluated.
type Primitive struct {
	Name string
	Fn   PrimitiveFn
	meta *Meta
}

// NewPrimitive constructs a new primitive.
func NewPrimitive(name string, fn PrimitiveFn) *Primitive {
	return &Primitive{name, fn, nil}
}

// Meta implementation for Expr interface.
func (p *Primitive) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Primitive) WithMeta(meta *Meta) Expr {
	return &Primitive{p.Name, p.Fn, meta}
}

func (p *Primitive) String() string {
	return fmt.Sprintf("#<primitive %s>", p.Name)
}
