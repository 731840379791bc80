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
	"hash/fnv"
)

// Equal determines whether two expressions are structurally identical.  Meta is
// ignored, as is the captured environment of a function.
func Equal(lhs Expr, rhs Expr) bool {
	switch l := lhs.(type) {
	case Nil:
		_, ok := rhs.(Nil)
		return ok
	case *Int:
		r, ok := rhs.(*Int)
		return ok && l.Value == r.Value
	case *Symbol:
		r, ok := rhs.(*Symbol)
		return ok && l.Name == r.Name
	case *Special:
		r, ok := rhs.(*Special)
		return ok && l.Kind == r.Kind
	case *Primitive:
		r, ok := rhs.(*Primitive)
		return ok && l.Name == r.Name
	case *Fun:
		r, ok := rhs.(*Fun)
		return ok && l.Param.Name == r.Param.Name && Equal(l.Body, r.Body)
	case *Macro:
		r, ok := rhs.(*Macro)
		return ok && l.Param.Name == r.Param.Name && Equal(l.Body, r.Body)
	case *List:
		r, ok := rhs.(*List)
		return ok && equalLists(l, r)
	case *Map:
		r, ok := rhs.(*Map)
		return ok && equalMaps(l, r)
	}
	//
	return false
}

func equalLists(lhs *List, rhs *List) bool {
	if lhs.values == rhs.values {
		return true
	} else if lhs.Len() != rhs.Len() {
		return false
	}
	//
	for i := uint(0); i < lhs.Len(); i++ {
		if !Equal(lhs.Get(i), rhs.Get(i)) {
			return false
		}
	}
	//
	return true
}

func equalMaps(lhs *Map, rhs *Map) bool {
	if lhs.values == rhs.values {
		return true
	} else if lhs.Len() != rhs.Len() {
		return false
	}
	//
	itr := lhs.values.Iterator()
	//
	for !itr.Done() {
		k, v, _ := itr.Next()
		//
		if w, ok := rhs.values.Get(k); !ok || !Equal(v, w) {
			return false
		}
	}
	//
	return true
}

// Hash returns a hash code for an expression which is consistent with Equal.
func Hash(e Expr) uint32 {
	switch e := e.(type) {
	case *Int:
		return mix(1, uint32(e.Value)^uint32(e.Value>>32))
	case *Symbol:
		return mix(2, e.Name.Hash())
	case *Special:
		return mix(3, uint32(e.Kind))
	case *Primitive:
		h := fnv.New32a()
		_, _ = h.Write([]byte(e.Name))
		//
		return mix(4, h.Sum32())
	case *Fun:
		return mix(mix(5, e.Param.Name.Hash()), Hash(e.Body))
	case *Macro:
		return mix(mix(6, e.Param.Name.Hash()), Hash(e.Body))
	case *List:
		h := uint32(7)
		//
		for _, item := range e.Values() {
			h = mix(h, Hash(item))
		}
		//
		return h
	case *Map:
		// Order independent
		var h uint32
		//
		itr := e.values.Iterator()
		for !itr.Done() {
			k, v, _ := itr.Next()
			h += mix(Hash(k), Hash(v))
		}
		//
		return mix(8, h)
	}
	// Nil
	return 0
}

func mix(h uint32, v uint32) uint32 {
	return (h ^ v) * 16777619
}
