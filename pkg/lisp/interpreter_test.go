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
package lisp

import (
	"testing"

	"github.com/consensys/go-lisp/pkg/lisp/eval"
	"github.com/consensys/go-lisp/pkg/lisp/expr"
	"github.com/consensys/go-lisp/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreter_00(t *testing.T) {
	checkResults(t, "1 (+ 1 2) '(a b)", "1", "3", "(a b)")
}

func TestInterpreter_01(t *testing.T) {
	checkResults(t, "(def inc (\\x (+ x 1))) (inc (inc 1))", "(lambda x (+ x 1))", "3")
}

func TestInterpreter_02(t *testing.T) {
	interp := NewInterpreter(Config{})
	// Errors do not stop evaluation
	results, errs := interp.EvalString("(a ] nope {1} 2")
	//
	require.Len(t, errs, 3)
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].String())
}

func TestInterpreter_03(t *testing.T) {
	interp := NewInterpreter(Config{})
	// Bindings persist across calls until reset
	_, errs := interp.EvalString("(def x 42)")
	require.Empty(t, errs)
	//
	results, errs := interp.EvalString("x")
	require.Empty(t, errs)
	assert.Equal(t, "42", results[0].String())
	//
	interp.Reset()
	_, errs = interp.EvalString("x")
	assert.Len(t, errs, 1)
}

func TestInterpreter_04(t *testing.T) {
	interp := NewInterpreter(Config{NoPrelude: true})
	//
	_, errs := interp.EvalString("(quote x)")
	assert.Len(t, errs, 1)
	// Specials via surface syntax need no bindings
	results, errs := interp.EvalString("'x ((\\x x) 1)")
	require.Empty(t, errs)
	assert.Equal(t, "x", results[0].String())
	assert.Equal(t, "1", results[1].String())
}

func TestInterpreter_05(t *testing.T) {
	interp := NewInterpreter(Config{Options: eval.Options{CaptureClosures: true}})
	//
	results, errs := interp.EvalString("(def k (\\x (\\y x))) ((k 1) 2)")
	require.Empty(t, errs)
	assert.Equal(t, "1", results[1].String())
}

func TestInterpreter_06(t *testing.T) {
	assert.True(t, NeedsMore("(def x"))
	assert.True(t, NeedsMore("'"))
	assert.False(t, NeedsMore("(def x 1)"))
	assert.False(t, NeedsMore(")"))
	assert.False(t, NeedsMore("(a ]"))
}

func TestInterpreter_07(t *testing.T) {
	text := "(def x 1)\n(+ x y)"
	file := source.NewSourceFile("test.lisp", []byte(text))
	interp := NewInterpreter(Config{})
	//
	_, errs := interp.EvalFile(file)
	require.Len(t, errs, 1)
	//
	diags := Diagnose(file, errs[0])
	require.Len(t, diags, 1)
	assert.Equal(t, "unknown binding y", diags[0].Message())
	assert.Equal(t, 1, diags[0].Span().Start().Line)
}

func TestInterpreter_08(t *testing.T) {
	text := "(a [b"
	file := source.NewSourceFile("test.lisp", []byte(text))
	//
	_, errs := NewInterpreter(Config{}).EvalFile(file)
	require.Len(t, errs, 1)
	assert.Len(t, Diagnose(file, errs[0]), 2)
}

func TestInterpreter_09(t *testing.T) {
	// Lambda shorthand yields functions wherever it appears
	checkResults(t, "[\\x x]", "((lambda x x))")
	checkResults(t, "(def id (\\f f)) ((id \\x x) 5)", "(lambda f f)", "5")
	checkResults(t, "(def m {'k \\x (+ x 1)}) 1", "{k (lambda x (+ x 1))}", "1")
	checkResults(t, "((\\x x) 7)", "7")
}

func TestInterpreter_10(t *testing.T) {
	var (
		interp = NewInterpreter(Config{})
		first  = source.NewSourceFile("first.lisp", []byte("(def f (\\x nope))"))
		second = source.NewSourceFile("second.lisp", []byte("(f 1)"))
	)
	//
	_, errs := interp.EvalFile(first)
	require.Empty(t, errs)
	//
	_, errs = interp.EvalFile(second)
	require.Len(t, errs, 1)
	// The offending symbol was written in the first file only
	assert.Empty(t, Diagnose(second, errs[0]))
	//
	diags := Diagnose(first, errs[0])
	require.Len(t, diags, 1)
	assert.Equal(t, "nope", first.Text(diags[0].Span()))
}

func TestInterpreter_11(t *testing.T) {
	file := source.NewSourceFile("test.lisp", []byte("'x"))
	results, errs := NewInterpreter(Config{}).EvalFile(file)
	// Results remember which file they were read from
	require.Empty(t, errs)
	require.Len(t, results, 1)
	assert.Same(t, file, results[0].Meta().File)
}

// ==================================================================
// Framework
// ==================================================================

func checkResults(t *testing.T, text string, expected ...string) []expr.Expr {
	interp := NewInterpreter(Config{})
	results, errs := interp.EvalString(text)
	//
	require.Empty(t, errs)
	require.Len(t, results, len(expected))
	//
	for i, r := range results {
		assert.Equal(t, expected[i], r.String())
	}
	//
	assert.Equal(t, uint(0), interp.Stack().Depth())
	//
	return results
}
