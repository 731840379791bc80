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

// Stack represents a reusable LIFO stack which is implemented using an array.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Top returns the topmost item, or false if the stack is empty.
func (p *Stack[T]) Top() (T, bool) {
	var empty T
	//
	if len(p.items) == 0 {
		return empty, false
	}
	//
	return p.items[len(p.items)-1], true
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	var n = len(p.items)
	//
	if n == 0 {
		panic("cannot pop from empty stack")
	}
	// Get last item
	item := p.items[n-1]
	// Remove last item
	p.items = p.items[:n-1]
	// Done
	return item
}

// Snapshot returns a copy of the items currently on the stack, ordered from
// bottom to top.  The copy is independent of any subsequent updates.
func (p *Stack[T]) Snapshot() []T {
	items := make([]T, len(p.items))
	copy(items, p.items)
	//
	return items
}

// Take removes every item from the stack, returning them ordered from bottom to
// top.
func (p *Stack[T]) Take() []T {
	items := p.items
	p.items = nil
	//
	return items
}
