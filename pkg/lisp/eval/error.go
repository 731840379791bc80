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
	"fmt"
	"strings"

	"github.com/consensys/go-lisp/pkg/lisp/expr"
)

// ErrorKind identifies the cause of an evaluation error.
type ErrorKind uint8

const (
	// BadParameter indicates a lambda (or def) whose parameter is not a symbol.
	BadParameter ErrorKind = iota
	// MissingArguments indicates a form with too few operands.
	MissingArguments
	// ExtraArguments indicates a form with too many operands.
	ExtraArguments
	// NotCallable indicates application of something which is not a function.
	NotCallable
	// UnknownBinding indicates a symbol with no binding.
	UnknownBinding
	// UnexpandedMacro indicates a macro which was evaluated, rather than being
	// used at the head of a form.
	UnexpandedMacro
	// Unimplemented indicates a form with no implementation.
	Unimplemented
	// WrongType indicates a primitive applied to the wrong kind of value.
	WrongType
	// DepthExceeded indicates the evaluation depth budget was exhausted.
	DepthExceeded
)

// Error describes a failure to evaluate some expression.
type Error struct {
	Kind ErrorKind
	// Offending expression.  For NotCallable, this is the call site.
	Expr expr.Expr
	// Value which could not be called (NotCallable only).
	Callee expr.Expr
	// Number of operands still required (MissingArguments only).
	Count uint
	// Operands beyond those expected (ExtraArguments only).
	Surplus []expr.Expr
	// Additional information (e.g. expected type).
	Detail string
}

// Meta returns the provenance of the offending expression.
func (e *Error) Meta() *expr.Meta {
	if e.Expr == nil {
		return nil
	}
	//
	return e.Expr.Meta()
}

// Message returns the error message without positional information.
func (e *Error) Message() string {
	switch e.Kind {
	case BadParameter:
		return fmt.Sprintf("bad parameter %s", e.Expr)
	case MissingArguments:
		return fmt.Sprintf("missing %d argument(s) in %s", e.Count, e.Expr)
	case ExtraArguments:
		var surplus []string
		//
		for _, s := range e.Surplus {
			surplus = append(surplus, s.String())
		}
		//
		return fmt.Sprintf("unexpected argument(s) %s in %s", strings.Join(surplus, " "), e.Expr)
	case NotCallable:
		return fmt.Sprintf("%s is not callable in %s", e.Callee, e.Expr)
	case UnknownBinding:
		return fmt.Sprintf("unknown binding %s", e.Expr)
	case UnexpandedMacro:
		return fmt.Sprintf("unexpanded macro %s", e.Expr)
	case Unimplemented:
		return fmt.Sprintf("%s is not implemented", e.Detail)
	case WrongType:
		return fmt.Sprintf("expected %s, found %s", e.Detail, e.Expr)
	default:
		return fmt.Sprintf("evaluation depth exceeded at %s", e.Expr)
	}
}

func (e *Error) Error() string {
	if span, ok := e.Meta().First(); ok {
		return fmt.Sprintf("%s: %s", span.Start(), e.Message())
	}
	//
	return e.Message()
}
