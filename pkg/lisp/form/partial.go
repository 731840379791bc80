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
	"fmt"
	"slices"

	"github.com/consensys/go-lisp/pkg/util/source"
)

// Partial is a construct which the parser has started but not yet completed.
// Partials only escape the parser as part of an error.
type Partial interface {
	// Span returns the source text covered so far.
	Span() source.Span
	// Describe what is missing, for use in diagnostics.
	Describe() string
	// clone returns a copy which is unaffected by further parsing.
	clone() Partial
}

// PartialGroup is an open group, along with the children accumulated so far.
type PartialGroup struct {
	Open     Delimited
	Children []Form
}

// Span implementation for Partial interface.
func (p *PartialGroup) Span() source.Span {
	if n := len(p.Children); n > 0 {
		return p.Open.Span.Join(p.Children[n-1].Span())
	}
	//
	return p.Open.Span
}

// Describe implementation for Partial interface.
func (p *PartialGroup) Describe() string {
	return fmt.Sprintf("unclosed '%c'", p.Open.Kind.Open())
}

func (p *PartialGroup) clone() Partial {
	return &PartialGroup{p.Open, slices.Clone(p.Children)}
}

// PartialHasType is a type ascription awaiting its type (when Type is nil) or
// its value.
type PartialHasType struct {
	Prefix Prefixed
	Type   Form
}

// Span implementation for Partial interface.
func (p *PartialHasType) Span() source.Span {
	if p.Type != nil {
		return p.Prefix.Span.Join(p.Type.Span())
	}
	//
	return p.Prefix.Span
}

// Describe implementation for Partial interface.
func (p *PartialHasType) Describe() string {
	if p.Type == nil {
		return fmt.Sprintf("'%s' missing type and value", p.Prefix.Kind)
	}
	//
	return fmt.Sprintf("'%s' missing value", p.Prefix.Kind)
}

func (p *PartialHasType) clone() Partial {
	return &PartialHasType{p.Prefix, p.Type}
}

// PartialQuoting is a unary prefix awaiting its operand.
type PartialQuoting struct {
	Prefix Prefixed
}

// Span implementation for Partial interface.
func (p *PartialQuoting) Span() source.Span {
	return p.Prefix.Span
}

// Describe implementation for Partial interface.
func (p *PartialQuoting) Describe() string {
	return fmt.Sprintf("'%s' missing operand", p.Prefix.Kind)
}

func (p *PartialQuoting) clone() Partial {
	return &PartialQuoting{p.Prefix}
}
