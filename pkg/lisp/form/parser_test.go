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
	"testing"

	"github.com/consensys/go-lisp/pkg/lisp/token"
	"github.com/consensys/go-lisp/pkg/util/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================================================================
// Valid input
// ==================================================================

func TestParser_00(t *testing.T) {
	checkForms(t, "")
	checkForms(t, "   ")
}

func TestParser_01(t *testing.T) {
	checkForms(t, "1 x 0x10", "1", "x", "16")
}

func TestParser_02(t *testing.T) {
	checkForms(t, "(a b)", "(a b)")
	checkForms(t, "()  []  {}", "()", "[]", "{}")
}

func TestParser_03(t *testing.T) {
	checkForms(t, "(a (b [c {d}]))", "(a (b [c {d}]))")
}

func TestParser_04(t *testing.T) {
	checkForms(t, "'x `y ~z \\w", "'x", "`y", "~z", "\\w")
}

func TestParser_05(t *testing.T) {
	checkForms(t, ":int x", ":int x")
	checkForms(t, ":int :int x", ":int :int x")
}

func TestParser_06(t *testing.T) {
	// One close event completes several nested prefixes
	forms := checkForms(t, "''(a)", "''(a)")
	//
	outer := forms[0].(*Macro)
	inner := outer.Value.(*Macro)
	//
	assert.Equal(t, token.Quote, outer.Prefix.Kind)
	assert.Equal(t, token.Quote, inner.Prefix.Kind)
	assert.IsType(t, &Group{}, inner.Value)
}

func TestParser_07(t *testing.T) {
	forms := checkForms(t, ":'t (\\x x)", ":'t (\\x x)")
	//
	macro := forms[0].(*Macro)
	assert.Equal(t, token.HasType, macro.Prefix.Kind)
	assert.Equal(t, "'t", macro.Type.String())
	assert.Equal(t, "(\\x x)", macro.Value.String())
}

func TestParser_08(t *testing.T) {
	forms := checkForms(t, "(a\n  b)", "(a b)")
	// Group spans run from open to close
	span := forms[0].Span()
	assert.Equal(t, 0, span.Start().Offset)
	assert.Equal(t, 7, span.End().Offset)
	assert.Equal(t, 1, span.End().Line)
}

func TestParser_09(t *testing.T) {
	input := " 1 (a 'b) :t v  [x]"
	forms := checkForms(t, input, "1", "(a 'b)", ":t v", "[x]")
	tokens, _ := token.Tokenize([]rune(input))
	// Spans are ordered, do not overlap and together cover every token.
	covered := 0
	//
	for i, f := range forms {
		if i > 0 {
			assert.LessOrEqual(t, forms[i-1].Span().End().Offset, f.Span().Start().Offset)
		}
		//
		for _, tok := range tokens {
			if within(tok.Span, f.Span()) {
				covered++
			}
		}
	}
	//
	assert.Equal(t, len(tokens), covered)
	assert.Equal(t, tokens[0].Span.Start(), forms[0].Span().Start())
	assert.Equal(t, tokens[len(tokens)-1].Span.End(), forms[3].Span().End())
}

// ==================================================================
// Recovery
// ==================================================================

func TestParser_10(t *testing.T) {
	parser := NewParser(token.NewScanner([]rune("(a ] b")))
	//
	_, err := parser.Next()
	perr := checkError(t, err, DoesNotComplete)
	// Snapshot matches the state before the closer
	expected := []Partial{
		&PartialGroup{Delimited{token.Paren, span(0, 1)}, []Form{&Symbol{"a", span(1, 2)}}},
	}
	//
	assert.Equal(t, expected, perr.Partials)
	assert.Equal(t, token.Square, perr.Close.Kind)
	// Parsing resumes with an empty stack
	assert.True(t, parser.stack.IsEmpty())
	//
	f, err := parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", f.String())
	//
	_, err = parser.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParser_11(t *testing.T) {
	parser := NewParser(token.NewScanner([]rune("(a [b")))
	//
	_, err := parser.Next()
	perr := checkError(t, err, Incomplete)
	//
	require.Len(t, perr.Partials, 2)
	assert.Nil(t, perr.Close)
	assert.True(t, IsIncomplete(err))
	// Innermost is last
	inner := perr.Innermost().(*PartialGroup)
	assert.Equal(t, token.Square, inner.Open.Kind)
	assert.Len(t, inner.Children, 1)
	// Incomplete input is only reported once
	_, err = parser.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParser_12(t *testing.T) {
	_, errs := Parse([]rune(")"))
	//
	require.Len(t, errs, 1)
	perr := checkError(t, errs[0], Incomplete)
	//
	assert.Empty(t, perr.Partials)
	assert.NotNil(t, perr.Close)
	assert.False(t, IsIncomplete(errs[0]))
}

func TestParser_13(t *testing.T) {
	_, errs := Parse([]rune("'"))
	//
	require.Len(t, errs, 1)
	perr := checkError(t, errs[0], Incomplete)
	assert.IsType(t, &PartialQuoting{}, perr.Innermost())
	//
	_, errs = Parse([]rune(":t"))
	require.Len(t, errs, 1)
	perr = checkError(t, errs[0], Incomplete)
	//
	hasType := perr.Innermost().(*PartialHasType)
	assert.Equal(t, "t", hasType.Type.String())
}

func TestParser_14(t *testing.T) {
	// A quote awaiting its operand cannot be closed
	_, errs := Parse([]rune("('a ')"))
	//
	require.Len(t, errs, 1)
	perr := checkError(t, errs[0], DoesNotComplete)
	require.Len(t, perr.Partials, 2)
	assert.IsType(t, &PartialQuoting{}, perr.Innermost())
}

func TestParser_15(t *testing.T) {
	forms, errs := Parse([]rune("(a \x01 b)"))
	// Token failures leave open constructs intact
	require.Len(t, errs, 1)
	perr := checkError(t, errs[0], TokenFailure)
	assert.Equal(t, token.InvalidChar, perr.Token.Kind)
	assert.Len(t, perr.Partials, 1)
	//
	require.Len(t, forms, 1)
	assert.Equal(t, "(a b)", forms[0].String())
}

func TestParser_16(t *testing.T) {
	text := "(a [b"
	file := source.NewSourceFile("test.lisp", []byte(text))
	_, errs := Parse([]rune(text))
	//
	require.Len(t, errs, 1)
	perr := checkError(t, errs[0], Incomplete)
	diags := perr.Diagnose(file)
	// Innermost first
	require.Len(t, diags, 2)
	assert.Equal(t, "unclosed '['", diags[0].Message())
	assert.Equal(t, 3, diags[0].Span().Start().Offset)
	assert.Equal(t, "unclosed '('", diags[1].Message())
	assert.Equal(t, 0, diags[1].Span().Start().Offset)
}

func TestParser_17(t *testing.T) {
	text := "(a }"
	file := source.NewSourceFile("test.lisp", []byte(text))
	_, errs := Parse([]rune(text))
	//
	require.Len(t, errs, 1)
	diags := checkError(t, errs[0], DoesNotComplete).Diagnose(file)
	//
	require.Len(t, diags, 2)
	assert.Equal(t, "'}' does not close '('", diags[0].Message())
	assert.Equal(t, "unclosed '('", diags[1].Message())
}

// ==================================================================
// Framework
// ==================================================================

func checkForms(t *testing.T, input string, expected ...string) []Form {
	forms, errs := Parse([]rune(input))
	//
	require.Empty(t, errs)
	require.Len(t, forms, len(expected))
	//
	for i, f := range forms {
		assert.Equal(t, expected[i], f.String())
	}
	//
	return forms
}

func checkError(t *testing.T, err error, kind ErrorKind) *Error {
	var perr *Error
	//
	require.True(t, errors.As(err, &perr), "expected parse error, got %v", err)
	require.Equal(t, kind, perr.Kind)
	//
	return perr
}

func within(inner source.Span, outer source.Span) bool {
	return outer.Start().Offset <= inner.Start().Offset && inner.End().Offset <= outer.End().Offset
}

// Construct a span on a single line.
func span(start int, end int) source.Span {
	s := source.Position{Offset: start, Column: start}
	e := source.Position{Offset: end, Column: end}
	//
	return source.NewSpan(s, e)
}
