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
package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_00(t *testing.T) {
	s := NewStack[int]()
	//
	assert.True(t, s.IsEmpty())
	_, ok := s.Top()
	assert.False(t, ok)
	assert.Panics(t, func() { s.Pop() })
}

func TestStack_01(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	//
	top, ok := s.Top()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, uint(3), s.Len())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, uint(2), s.Len())
}

func TestStack_02(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	snapshot := s.Snapshot()
	// Updates after a snapshot are not visible in it
	s.Pop()
	s.Push(5)
	assert.Equal(t, []int{1, 2}, snapshot)
	assert.Equal(t, []int{1, 5}, s.Take())
	assert.True(t, s.IsEmpty())
}
