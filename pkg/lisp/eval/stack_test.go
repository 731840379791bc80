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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ztrue/tracerr"
)

func TestStack_00(t *testing.T) {
	stack := NewStack()
	x := expr.NewSymbol("x", nil)
	// Rollback to no binding
	stack.Enter()
	stack.Assign(x, expr.NewInt(1, nil))
	require.NoError(t, stack.Leave())
	//
	_, err := stack.Lookup(x)
	checkError(t, err, UnknownBinding)
}

func TestStack_01(t *testing.T) {
	stack := NewStack()
	x := expr.NewSymbol("x", nil)
	// Rollback to previous binding
	stack.Assign(x, expr.NewInt(1, nil))
	stack.Enter()
	// Ambient bindings remain visible
	v, err := stack.Lookup(x)
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())
	//
	stack.Assign(x, expr.NewInt(2, nil))
	v, _ = stack.Lookup(x)
	assert.Equal(t, "2", v.String())
	//
	require.NoError(t, stack.Leave())
	v, _ = stack.Lookup(x)
	assert.Equal(t, "1", v.String())
}

func TestStack_02(t *testing.T) {
	stack := NewStack()
	//
	stack.Enter()
	stack.Enter()
	assert.Equal(t, uint(2), stack.Depth())
	require.NoError(t, stack.Leave())
	require.NoError(t, stack.Leave())
	// Unmatched leave
	err := stack.Leave()
	require.Error(t, err)
	assert.Equal(t, ErrStackUnderflow, tracerr.Unwrap(err))
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.NotEmpty(t, tracerr.StackTrace(err))
}

func TestStack_03(t *testing.T) {
	stack := NewStack()
	stack.Define("a", expr.NewInt(1, nil))
	snapshot := stack.Snapshot()
	// Snapshots are unaffected by later updates
	stack.Define("b", expr.NewInt(2, nil))
	//
	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, []string{"a", "b"}, stack.Names())
}

func TestStack_04(t *testing.T) {
	names := NewPrelude().Names()
	//
	for _, name := range []string{"lambda", "quote", "quasiquote", "unquote", "the", "list", "map", "def", "macro",
		"+", "-", "*"} {
		assert.Contains(t, names, name)
	}
}
