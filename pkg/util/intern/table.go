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
package intern

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Id is a small, comparable identifier for a piece of interned text.  Two ids
// produced by the same table are equal if and only if their texts are equal.
type Id struct {
	// Table which issued this id (zero is never issued).
	table uint32
	// Index of the text within that table.
	index uint32
}

// Default is the table used throughout the interpreter for symbol names.
var Default = NewTable()

// Used to give every table a distinct stamp, such that ids from one table are
// rejected by another.
var tableCounter atomic.Uint32

// Table deduplicates strings into ids.  Interning requires exclusive access to
// the table, whilst resolution only requires shared access.  Resolved text is
// always handed out either as a copy, or within a scoped callback (see View),
// so no caller can observe storage which a later Intern call reallocates.
type Table struct {
	mux   sync.RWMutex
	stamp uint32
	ids   map[string]uint32
	texts []string
}

// NewTable constructs an empty interning table.
func NewTable() *Table {
	return &Table{
		stamp: tableCounter.Add(1),
		ids:   make(map[string]uint32),
	}
}

// Intern returns the id for the given text, allocating one if necessary.  This
// is idempotent: the same text always gives the same id for the lifetime of the
// table.
func (p *Table) Intern(text string) Id {
	// Fast path (shared)
	p.mux.RLock()
	index, ok := p.ids[text]
	p.mux.RUnlock()
	//
	if ok {
		return Id{p.stamp, index}
	}
	// Slow path (exclusive)
	p.mux.Lock()
	defer p.mux.Unlock()
	// Check again, since another writer may have got there first.
	if index, ok = p.ids[text]; !ok {
		index = uint32(len(p.texts))
		p.texts = append(p.texts, text)
		p.ids[text] = index
	}
	//
	return Id{p.stamp, index}
}

// Lookup returns the id for the given text, without interning it.
func (p *Table) Lookup(text string) (Id, bool) {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	index, ok := p.ids[text]
	//
	return Id{p.stamp, index}, ok
}

// Resolve returns the text for an id issued by this table.  This panics if the
// id did not originate from this table.
func (p *Table) Resolve(id Id) string {
	var text string
	//
	p.View(id, func(s string) { text = s })
	//
	return text
}

// View calls fn with the text of the given id whilst holding a shared lock on
// the table.  The callback must not intern anything on the same table.  This
// panics if the id did not originate from this table.
func (p *Table) View(id Id, fn func(string)) {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	if id.table != p.stamp || int(id.index) >= len(p.texts) {
		panic(fmt.Sprintf("unknown intern id (%d,%d)", id.table, id.index))
	}
	//
	fn(p.texts[id.index])
}

// Len returns the number of distinct texts interned so far.
func (p *Table) Len() uint {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	return uint(len(p.texts))
}

// Hash returns a hash code for a given id, suitable for hash-based containers.
func (id Id) Hash() uint32 {
	// Fibonacci hashing spreads consecutive indices
	return (id.index * 2654435761) ^ id.table
}

// IsValid checks whether this id was issued by some table.
func (id Id) IsValid() bool {
	return id.table != 0
}
