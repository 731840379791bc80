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
	"testing"

	"github.com/consensys/go-lisp/pkg/lisp/expr"
	"github.com/consensys/go-lisp/pkg/lisp/form"
	"github.com/consensys/go-lisp/pkg/lisp/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================================================================
// Self-evaluation & symbols
// ==================================================================

func TestEval_00(t *testing.T) {
	checkEval(t, "1", "1")
	checkEval(t, "()", "()")
	checkEval(t, "quote", "quote")
}

func TestEval_01(t *testing.T) {
	ev := NewEvaluator(NewStack(), DefaultOptions())
	// Unknown binding against an empty stack
	err := checkEvalError(t, ev, "nope", UnknownBinding)
	assert.Equal(t, "nope", err.Expr.String())
	//
	_, err2 := Eval(expr.NewSymbol("nope", nil), NewStack())
	assert.Error(t, err2)
}

func TestEval_02(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	result := evalOk(t, ev, "(def x 5) x")
	// Reference site is pushed onto a copy of the value's chain
	assert.Equal(t, uint(2), result.Meta().Len())
	//
	bound, err := ev.Stack().Lookup(expr.NewSymbol("x", nil))
	require.NoError(t, err)
	assert.Equal(t, uint(1), bound.Meta().Len())
}

func TestEval_03(t *testing.T) {
	ev := NewEvaluator(NewStack(), DefaultOptions())
	fn := expr.NewFun(expr.NewSymbol("x", nil), expr.NewSymbol("x", nil), nil)
	//
	_, err := ev.Eval(expr.NewMacro(fn, nil))
	checkError(t, err, UnexpandedMacro)
}

// ==================================================================
// Quote
// ==================================================================

func TestEval_04(t *testing.T) {
	// Quote law, with and without a binding for quote
	checkEval(t, "(quote (a b c))", "(a b c)")
	checkEval(t, "'(a b c)", "(a b c)")
	checkEval(t, "`(a b c)", "(a b c)")
	//
	ev := NewEvaluator(NewStack(), DefaultOptions())
	assert.Equal(t, "(nope 1)", evalOk(t, ev, "'(nope 1)").String())
}

func TestEval_05(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	err := checkEvalError(t, ev, "(quote)", MissingArguments)
	assert.Equal(t, uint(1), err.Count)
	//
	err = checkEvalError(t, ev, "(quote a b)", ExtraArguments)
	require.Len(t, err.Surplus, 1)
	assert.Equal(t, "b", err.Surplus[0].String())
}

func TestEval_06(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	err := checkEvalError(t, ev, "~x", Unimplemented)
	assert.Equal(t, "unquote", err.Detail)
	//
	checkEvalError(t, ev, "(unquote x)", Unimplemented)
}

func TestEval_07(t *testing.T) {
	// Specials are recognised through their value, not their name
	checkEval(t, "(def q quote) (q x)", "x")
	//
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	checkEvalError(t, ev, "(def quote 1) (quote 2)", NotCallable)
}

// ==================================================================
// Lambda & application
// ==================================================================

func TestEval_08(t *testing.T) {
	ev := NewEvaluator(NewStack(), DefaultOptions())
	//
	assert.Equal(t, "5", evalOk(t, ev, "((\\x x) 5)").String())
	assert.Equal(t, "2", evalOk(t, ev, "((\\x (\\y y)) 1 2)").String())
	assert.Equal(t, "(lambda x x)", evalOk(t, ev, "(\\x x)").String())
}

func TestEval_09(t *testing.T) {
	// Free symbols resolve at call time, so there is no binding for x
	ev := NewEvaluator(NewStack(), DefaultOptions())
	err := checkEvalError(t, ev, "(((\\x (\\y x)) 1) 2)", UnknownBinding)
	assert.Equal(t, "x", err.Expr.String())
	// ... unless the live stack has one
	ev.Stack().Define("x", expr.NewInt(7, nil))
	assert.Equal(t, "7", evalOk(t, ev, "(((\\x (\\y x)) 1) 2)").String())
}

func TestEval_10(t *testing.T) {
	ev := NewEvaluator(NewStack(), Options{CaptureClosures: true})
	//
	assert.Equal(t, "1", evalOk(t, ev, "(((\\x (\\y x)) 1) 2)").String())
	assert.Equal(t, "1", evalOk(t, ev, "((\\x (\\y x)) 1 2)").String())
}

func TestEval_11(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	// Parameter shadowing is rolled back after the call
	evalOk(t, ev, "(def x 1)")
	assert.Equal(t, "2", evalOk(t, ev, "((\\x x) 2)").String())
	assert.Equal(t, "1", evalOk(t, ev, "x").String())
	// Definitions within a call are rolled back too
	evalOk(t, ev, "((\\y (def z y)) 3)")
	checkEvalError(t, ev, "z", UnknownBinding)
}

func TestEval_12(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	err := checkEvalError(t, ev, "(lambda 1 x)", BadParameter)
	assert.Equal(t, "1", err.Expr.String())
	//
	err = checkEvalError(t, ev, "(lambda x)", MissingArguments)
	assert.Equal(t, uint(1), err.Count)
	//
	err = checkEvalError(t, ev, "(lambda)", MissingArguments)
	assert.Equal(t, uint(2), err.Count)
	//
	err = checkEvalError(t, ev, "(lambda x x x)", ExtraArguments)
	assert.Len(t, err.Surplus, 1)
}

func TestEval_13(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	err := checkEvalError(t, ev, "(1 2)", NotCallable)
	assert.Equal(t, "1", err.Callee.String())
	assert.Equal(t, "(1 2)", err.Expr.String())
	// Currying stops at the first non-callable result
	err = checkEvalError(t, ev, "((\\x x) 1 2)", NotCallable)
	assert.Equal(t, "1", err.Callee.String())
}

func TestEval_14(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	// Checkpoints are left on error paths
	checkEvalError(t, ev, "((\\x (\\y nope)) 1 2)", UnknownBinding)
	assert.Equal(t, uint(0), ev.Stack().Depth())
	assert.Equal(t, uint(2), ev.Stats().Calls)
}

// ==================================================================
// The
// ==================================================================

func TestEval_15(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	assert.Equal(t, "2", evalOk(t, ev, ":1 2").String())
	assert.Equal(t, "2", evalOk(t, ev, "(the 1 2)").String())
	// Type is evaluated
	err := checkEvalError(t, ev, ":int 2", UnknownBinding)
	assert.Equal(t, "int", err.Expr.String())
	//
	checkEvalError(t, ev, "(the 1)", MissingArguments)
}

// ==================================================================
// Macros
// ==================================================================

func TestEval_16(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	evalOk(t, ev, "(def m (macro (\\xs '(m))))")
	// Fixpoint is detected after a single expansion
	call := readOne(t, "(m)")
	result, err := ev.Expand(call)
	//
	require.NoError(t, err)
	assert.True(t, expr.Equal(call, result))
	assert.Equal(t, uint(1), ev.Stats().Expansions)
}

func TestEval_17(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	evalOk(t, ev, "(def k (macro (\\xs '42)))")
	//
	assert.Equal(t, "42", evalOk(t, ev, "(k anything at all)").String())
	assert.Equal(t, uint(1), ev.Stats().Expansions)
}

func TestEval_18(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	// Macros receive their operands unevaluated
	evalOk(t, ev, "(def args (macro (\\xs [(quote quote) xs])))")
	assert.Equal(t, "(nope 1)", evalOk(t, ev, "(args nope 1)").String())
	//
	once, err := ev.ExpandOnce(readOne(t, "(args a)"))
	require.NoError(t, err)
	assert.Equal(t, "(quote (a))", once.String())
	// Not a macro
	same, err := ev.ExpandOnce(readOne(t, "(list a)"))
	require.NoError(t, err)
	assert.Equal(t, "(list a)", same.String())
}

func TestEval_19(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	checkEvalError(t, ev, "(macro 1)", WrongType)
}

// ==================================================================
// Primitives
// ==================================================================

func TestEval_20(t *testing.T) {
	checkEval(t, "[1 (+ 1 2) 'a]", "(1 3 a)")
	checkEval(t, "[]", "()")
	checkEval(t, "{'b 2 'a 1}", "{a 1 b 2}")
}

func TestEval_21(t *testing.T) {
	checkEval(t, "(+)", "0")
	checkEval(t, "(+ 1 2 3)", "6")
	checkEval(t, "(* 2 3 4)", "24")
	checkEval(t, "(- 5)", "-5")
	checkEval(t, "(- 10 1 2)", "7")
	checkEval(t, "(def inc (\\x (+ x 1))) (inc 41)", "42")
}

func TestEval_22(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	err := checkEvalError(t, ev, "(+ 1 'a)", WrongType)
	assert.Equal(t, "int", err.Detail)
	checkEvalError(t, ev, "(-)", MissingArguments)
	checkEvalError(t, ev, "(map 1)", MissingArguments)
	checkEvalError(t, ev, "(def 1 2)", BadParameter)
}

// ==================================================================
// Resources
// ==================================================================

func TestEval_23(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), Options{MaxDepth: 3})
	//
	checkEvalError(t, ev, "(+ 1 (+ 1 (+ 1 1)))", DepthExceeded)
	// Depth is restored afterwards
	assert.Equal(t, "2", evalOk(t, ev, "(+ 1 1)").String())
}

func TestEval_24(t *testing.T) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	evalOk(t, ev, "((\\x (+ x 1)) 1)")
	//
	stats := ev.Stats()
	assert.Equal(t, uint(1), stats.Calls)
	assert.Equal(t, uint(0), stats.Expansions)
	assert.Greater(t, stats.Depth, uint(1))
}

// ==================================================================
// Framework
// ==================================================================

func readOne(t *testing.T, text string) expr.Expr {
	forms, errs := form.Parse([]rune(text))
	require.Empty(t, errs)
	require.Len(t, forms, 1)
	//
	e, err := reader.Read(forms[0])
	require.NoError(t, err)
	//
	return e
}

func evalText(t *testing.T, ev *Evaluator, text string) (expr.Expr, error) {
	forms, errs := form.Parse([]rune(text))
	require.Empty(t, errs)
	//
	exprs, errs := reader.ReadAll(forms)
	require.Empty(t, errs)
	//
	var result expr.Expr = expr.Nil{}
	//
	for _, e := range exprs {
		r, err := ev.Eval(e)
		if err != nil {
			return nil, err
		}
		//
		result = r
	}
	//
	return result, nil
}

func evalOk(t *testing.T, ev *Evaluator, text string) expr.Expr {
	result, err := evalText(t, ev, text)
	require.NoError(t, err)
	//
	return result
}

func checkEval(t *testing.T, text string, expected string) {
	ev := NewEvaluator(NewPrelude(), DefaultOptions())
	//
	assert.Equal(t, expected, evalOk(t, ev, text).String())
	// Checkpoints always paired
	assert.Equal(t, uint(0), ev.Stack().Depth())
}

func checkEvalError(t *testing.T, ev *Evaluator, text string, kind ErrorKind) *Error {
	_, err := evalText(t, ev, text)
	//
	return checkError(t, err, kind)
}

func checkError(t *testing.T, err error, kind ErrorKind) *Error {
	var eerr *Error
	//
	require.True(t, errors.As(err, &eerr), "expected evaluation error, got %v", err)
	require.Equal(t, kind, eerr.Kind, eerr.Error())
	//
	return eerr
}
