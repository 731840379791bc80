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
	"errors"
	"slices"

	"github.com/consensys/go-lisp/pkg/lisp/expr"
	"github.com/consensys/go-lisp/pkg/util/intern"
	log "github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
)

// ErrStackUnderflow indicates a checkpoint was left which was never entered.
// This can only arise from a bug in the evaluator itself.
var ErrStackUnderflow = errors.New("stack underflow")

// Stack is the environment in which expressions are evaluated.  It consists of
// the current bindings, along with a sequence of checkpoints.  Entering a
// checkpoint saves the current bindings without clearing them, whilst leaving
// a checkpoint restores them, thus discarding every binding made in between.
// Since bindings are persistent maps, both operations take constant time.
type Stack struct {
	current  *expr.Bindings
	previous []*expr.Bindings
}

// NewStack constructs an empty stack.
func NewStack() *Stack {
	return &Stack{expr.NewBindings(), nil}
}

// Enter a new checkpoint.
func (p *Stack) Enter() {
	p.previous = append(p.previous, p.current)
}

// Leave the most recently entered checkpoint, restoring the bindings in place
// when it was entered.
func (p *Stack) Leave() error {
	n := len(p.previous)
	//
	if n == 0 {
		log.Debug("leaving checkpoint which was never entered")
		return tracerr.Wrap(ErrStackUnderflow)
	}
	//
	p.current = p.previous[n-1]
	p.previous = p.previous[:n-1]
	//
	return nil
}

// Depth returns the number of checkpoints currently entered.
func (p *Stack) Depth() uint {
	return uint(len(p.previous))
}

// Assign a value to a given name, overwriting any existing binding.
func (p *Stack) Assign(name *expr.Symbol, value expr.Expr) {
	p.current = p.current.Set(name.Name, value)
}

// Define is a convenience for assigning a value to a name given as text.
func (p *Stack) Define(name string, value expr.Expr) {
	p.Assign(expr.NewSymbol(name, nil), value)
}

// Lookup the value bound to a given name.
func (p *Stack) Lookup(name *expr.Symbol) (expr.Expr, error) {
	if value, ok := p.current.Get(name.Name); ok {
		return value, nil
	}
	//
	return nil, &Error{Kind: UnknownBinding, Expr: name}
}

// Snapshot returns the current bindings.  These are unaffected by any
// subsequent updates to the stack.
func (p *Stack) Snapshot() *expr.Bindings {
	return p.current
}

// Names returns the names currently bound, in sorted order.
func (p *Stack) Names() []string {
	var (
		names []string
		itr   = p.current.Iterator()
	)
	//
	for !itr.Done() {
		key, _, _ := itr.Next()
		names = append(names, intern.Default.Resolve(key))
	}
	//
	slices.Sort(names)
	//
	return names
}

// Replace the current bindings wholesale.  This is used when calling a closure,
// and should always happen within a checkpoint.
func (p *Stack) install(bindings *expr.Bindings) {
	p.current = bindings
}
