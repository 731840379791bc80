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
	"github.com/consensys/go-lisp/pkg/lisp/reader"
)

// NewPrelude constructs a stack in which every special is bound to its
// conventional name, along with the built-in primitives.
func NewPrelude() *Stack {
	stack := NewStack()
	//
	for _, kind := range expr.SpecialKinds {
		stack.Define(kind.Name(), expr.NewSpecial(kind, nil))
	}
	//
	for _, prim := range Primitives() {
		stack.Define(prim.Name, prim)
	}
	//
	return stack
}

// Primitives returns the built-in primitives.
func Primitives() []*expr.Primitive {
	return []*expr.Primitive{
		expr.NewPrimitive(reader.LIST_BUILDER, evalListBuilder),
		expr.NewPrimitive(reader.MAP_BUILDER, evalMapBuilder),
		expr.NewPrimitive("def", evalDef),
		expr.NewPrimitive("macro", evalMacro),
		expr.NewPrimitive("+", arithmetic(0, func(x, y int64) int64 { return x + y })),
		expr.NewPrimitive("*", arithmetic(1, func(x, y int64) int64 { return x * y })),
		expr.NewPrimitive("-", evalSub),
	}
}

// Evaluate each operand, giving a list of the results.
func evalListBuilder(ctx expr.Context, call *expr.List, args []expr.Expr) (expr.Expr, error) {
	values, err := evalAll(ctx, args)
	if err != nil {
		return nil, err
	}
	//
	return expr.NewList(call.Meta(), values...), nil
}

// Evaluate operands pairwise, giving a map from each key to its value.
func evalMapBuilder(ctx expr.Context, call *expr.List, args []expr.Expr) (expr.Expr, error) {
	if len(args)%2 != 0 {
		return nil, &Error{Kind: MissingArguments, Expr: call, Count: 1}
	}
	//
	values, err := evalAll(ctx, args)
	if err != nil {
		return nil, err
	}
	//
	m := expr.NewMap(call.Meta())
	//
	for i := 0; i < len(values); i += 2 {
		m = m.Set(values[i], values[i+1])
	}
	//
	return m, nil
}

// Bind a name to a value in the current checkpoint.
func evalDef(ctx expr.Context, call *expr.List, args []expr.Expr) (expr.Expr, error) {
	if err := checkArity(call, args, 2); err != nil {
		return nil, err
	}
	//
	name, ok := args[0].(*expr.Symbol)
	if !ok {
		return nil, &Error{Kind: BadParameter, Expr: args[0]}
	}
	//
	value, err := ctx.Eval(args[1])
	if err != nil {
		return nil, err
	}
	//
	ctx.Assign(name, value)
	//
	return value, nil
}

// Turn a function into a macro.
func evalMacro(ctx expr.Context, call *expr.List, args []expr.Expr) (expr.Expr, error) {
	if err := checkArity(call, args, 1); err != nil {
		return nil, err
	}
	//
	value, err := ctx.Eval(args[0])
	if err != nil {
		return nil, err
	}
	//
	if fn, ok := value.(*expr.Fun); ok {
		return expr.NewMacro(fn, call.Meta()), nil
	}
	//
	return nil, &Error{Kind: WrongType, Expr: value, Detail: "function"}
}

// Construct an arithmetic primitive which folds its operands.
func arithmetic(unit int64, op func(int64, int64) int64) expr.PrimitiveFn {
	return func(ctx expr.Context, call *expr.List, args []expr.Expr) (expr.Expr, error) {
		values, err := evalInts(ctx, args)
		if err != nil {
			return nil, err
		}
		//
		acc := unit
		//
		for _, v := range values {
			acc = op(acc, v)
		}
		//
		return expr.NewInt(acc, call.Meta()), nil
	}
}

// Subtract all but the first operand from the first, or negate a single
// operand.
func evalSub(ctx expr.Context, call *expr.List, args []expr.Expr) (expr.Expr, error) {
	if len(args) == 0 {
		return nil, &Error{Kind: MissingArguments, Expr: call, Count: 1}
	}
	//
	values, err := evalInts(ctx, args)
	if err != nil {
		return nil, err
	} else if len(values) == 1 {
		return expr.NewInt(-values[0], call.Meta()), nil
	}
	//
	acc := values[0]
	//
	for _, v := range values[1:] {
		acc -= v
	}
	//
	return expr.NewInt(acc, call.Meta()), nil
}

func evalAll(ctx expr.Context, args []expr.Expr) ([]expr.Expr, error) {
	values := make([]expr.Expr, len(args))
	//
	for i, arg := range args {
		value, err := ctx.Eval(arg)
		if err != nil {
			return nil, err
		}
		//
		values[i] = value
	}
	//
	return values, nil
}

func evalInts(ctx expr.Context, args []expr.Expr) ([]int64, error) {
	values, err := evalAll(ctx, args)
	if err != nil {
		return nil, err
	}
	//
	ints := make([]int64, len(values))
	//
	for i, v := range values {
		n, ok := v.(*expr.Int)
		if !ok {
			return nil, &Error{Kind: WrongType, Expr: v, Detail: "int"}
		}
		//
		ints[i] = n.Value
	}
	//
	return ints, nil
}
