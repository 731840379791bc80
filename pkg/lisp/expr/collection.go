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
package expr

import (
	"cmp"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/consensys/go-lisp/pkg/util/intern"
)

// ============================================================================
// List
// ============================================================================

// List is an ordered sequence of expressions, backed by a persistent vector.
// Copies share structure, and updates return a new list.
type List struct {
	values *immutable.List[Expr]
	meta   *Meta
}

// NewList constructs a new list from the given values.
func NewList(meta *Meta, values ...Expr) *List {
	return &List{immutable.NewList(values...), meta}
}

// Meta implementation for Expr interface.
func (p *List) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *List) WithMeta(meta *Meta) Expr {
	return &List{p.values, meta}
}

// Len returns the number of items in this list.
func (p *List) Len() uint {
	return uint(p.values.Len())
}

// IsEmpty checks whether this list has no items.
func (p *List) IsEmpty() bool {
	return p.values.Len() == 0
}

// Get returns the ith item of this list.
func (p *List) Get(i uint) Expr {
	return p.values.Get(int(i))
}

// Head returns the first item in this list.  This panics if the list is empty.
func (p *List) Head() Expr {
	return p.values.Get(0)
}

// Tail returns everything after the first item of this list (which must be
// non-empty).  The tail shares structure with this list, and inherits its
// provenance.
func (p *List) Tail() *List {
	return &List{p.values.Slice(1, p.values.Len()), p.meta}
}

// Append returns a new list with a given item added at the end.
func (p *List) Append(item Expr) *List {
	return &List{p.values.Append(item), p.meta}
}

// Prepend returns a new list with a given item added at the front.
func (p *List) Prepend(item Expr) *List {
	return &List{p.values.Prepend(item), p.meta}
}

// Values returns the items of this list as a (fresh) slice.
func (p *List) Values() []Expr {
	var (
		items = make([]Expr, 0, p.values.Len())
		itr   = p.values.Iterator()
	)
	//
	for !itr.Done() {
		_, item := itr.Next()
		items = append(items, item)
	}
	//
	return items
}

func (p *List) String() string {
	return writeSequence('(', ')', p.Values())
}

// ============================================================================
// Map
// ============================================================================

// Map is an association from expressions to expressions, backed by a persistent
// hash array mapped trie.  Keys are compared structurally, ignoring provenance.
type Map struct {
	values *immutable.Map[Expr, Expr]
	meta   *Meta
}

// NewMap constructs a new empty map.
func NewMap(meta *Meta) *Map {
	return &Map{immutable.NewMap[Expr, Expr](exprHasher{}), meta}
}

// Meta implementation for Expr interface.
func (p *Map) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Map) WithMeta(meta *Meta) Expr {
	return &Map{p.values, meta}
}

// Len returns the number of entries in this map.
func (p *Map) Len() uint {
	return uint(p.values.Len())
}

// Get returns the value associated with a given key, if any.
func (p *Map) Get(key Expr) (Expr, bool) {
	return p.values.Get(key)
}

// Set returns a new map which additionally associates key with value.
func (p *Map) Set(key Expr, value Expr) *Map {
	return &Map{p.values.Set(key, value), p.meta}
}

// Delete returns a new map without the given key.
func (p *Map) Delete(key Expr) *Map {
	return &Map{p.values.Delete(key), p.meta}
}

// Entry is a key-value pair of a map.
type Entry struct {
	Key   Expr
	Value Expr
}

// Entries returns the entries of this map, sorted by the printed form of their
// keys.
func (p *Map) Entries() []Entry {
	var (
		entries = make([]Entry, 0, p.values.Len())
		itr     = p.values.Iterator()
	)
	//
	for !itr.Done() {
		k, v, _ := itr.Next()
		entries = append(entries, Entry{k, v})
	}
	//
	slices.SortFunc(entries, func(l, r Entry) int {
		return cmp.Compare(l.Key.String(), r.Key.String())
	})
	//
	return entries
}

func (p *Map) String() string {
	var items []Expr
	//
	for _, e := range p.Entries() {
		items = append(items, e.Key, e.Value)
	}
	//
	return writeSequence('{', '}', items)
}

func writeSequence(open rune, close rune, items []Expr) string {
	var builder strings.Builder
	//
	builder.WriteRune(open)
	//
	for i, item := range items {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(item.String())
	}
	//
	builder.WriteRune(close)
	//
	return builder.String()
}

// ============================================================================
// Bindings
// ============================================================================

// Bindings is a persistent map from interned names to values.
type Bindings = immutable.Map[intern.Id, Expr]

// NewBindings constructs an empty set of bindings.
func NewBindings() *Bindings {
	return immutable.NewMap[intern.Id, Expr](idHasher{})
}

type idHasher struct{}

func (idHasher) Hash(id intern.Id) uint32 {
	return id.Hash()
}

func (idHasher) Equal(a, b intern.Id) bool {
	return a == b
}

type exprHasher struct{}

func (exprHasher) Hash(e Expr) uint32 {
	return Hash(e)
}

func (exprHasher) Equal(a, b Expr) bool {
	return Equal(a, b)
}
