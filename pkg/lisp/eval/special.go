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
)

// Apply a special form to its raw operands.
func (p *Evaluator) special(special *expr.Special, call *expr.List, args []expr.Expr) (expr.Expr, error) {
	switch special.Kind {
	case expr.Quote, expr.Quasiquote:
		// NOTE: unquoting within a quasiquote is not supported, hence both
		// currently behave identically.
		if err := checkArity(call, args, 1); err != nil {
			return nil, err
		}
		//
		return args[0], nil
	case expr.The:
		return p.evalThe(call, args)
	case expr.Lambda:
		return p.evalLambda(call, args)
	default:
		return nil, &Error{Kind: Unimplemented, Expr: call, Detail: special.Kind.Name()}
	}
}

// Evaluate both the type and the value, returning the latter.  The type is not
// otherwise checked.
func (p *Evaluator) evalThe(call *expr.List, args []expr.Expr) (expr.Expr, error) {
	if err := checkArity(call, args, 2); err != nil {
		return nil, err
	}
	//
	if _, err := p.Eval(args[0]); err != nil {
		return nil, err
	}
	//
	return p.Eval(args[1])
}

func (p *Evaluator) evalLambda(call *expr.List, args []expr.Expr) (expr.Expr, error) {
	if err := checkArity(call, args, 2); err != nil {
		return nil, err
	}
	//
	param, ok := args[0].(*expr.Symbol)
	if !ok {
		return nil, &Error{Kind: BadParameter, Expr: args[0]}
	}
	//
	fn := expr.NewFun(param, args[1], call.Meta())
	//
	if p.options.CaptureClosures {
		fn = fn.Capture(p.stack.Snapshot())
	}
	//
	return fn, nil
}

// Check a form has exactly n operands.
func checkArity(call *expr.List, args []expr.Expr, n int) error {
	if len(args) < n {
		return &Error{Kind: MissingArguments, Expr: call, Count: uint(n - len(args))}
	} else if len(args) > n {
		return &Error{Kind: ExtraArguments, Expr: call, Surplus: args[n:]}
	}
	//
	return nil
}
