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
package printer

import (
	"math"

	"github.com/consensys/go-lisp/pkg/lisp/expr"
)

// Chunk is an item of a list which may be placed on its own line, indented by
// a given amount, once the printer reaches the chunk's priority.
type Chunk struct {
	Priority uint
	Indent   uint
	Contents expr.Expr
}

// Rule is given the opportunity to direct how a list is broken over lines.  A
// rule returns nil when it does not handle the given list.
type Rule interface {
	Split(*expr.List) []Chunk
}

// HeadRule matches lists whose head is a given symbol (or special), keeping
// the first few items on the opening line and breaking the remainder thusly:
//
//	(head child1
//	   child2
//	   ...
//	   childn)
type HeadRule struct {
	// Head to match.  An empty head matches any non-empty list.
	Head string
	// Number of items kept on the opening line (including the head).
	Inline uint
	// Priority at which remaining items are broken.
	Priority uint
}

// Split implementation for the Rule interface.
func (p *HeadRule) Split(list *expr.List) []Chunk {
	if list.IsEmpty() || (p.Head != "" && !hasHead(list, p.Head)) {
		return nil
	}
	//
	chunks := make([]Chunk, list.Len())
	//
	for i, item := range list.Values() {
		chunks[i].Contents = item
		//
		if uint(i) < p.Inline {
			chunks[i].Priority = math.MaxUint
		} else {
			chunks[i].Priority = p.Priority
			chunks[i].Indent = 1
		}
	}
	//
	return chunks
}

func hasHead(list *expr.List, head string) bool {
	switch h := list.Head().(type) {
	case *expr.Symbol:
		return h.Text() == head
	case *expr.Special:
		return h.Kind.Name() == head
	}
	//
	return false
}
