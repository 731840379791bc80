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
	"strings"

	"github.com/consensys/go-lisp/pkg/lisp/token"
	"github.com/consensys/go-lisp/pkg/util/source"
)

// Form is a syntax tree produced by the parser, before any desugaring has taken
// place.  Every form knows the span of source text it covers.
type Form interface {
	// Span returns the source text covered by this form.
	Span() source.Span
	// String returns the surface syntax for this form.
	String() string
}

// Delimited is a delimiter character at a given position.
type Delimited struct {
	Kind token.Delimiter
	Span source.Span
}

// Prefixed is a prefix character at a given position.
type Prefixed struct {
	Kind token.Prefix
	Span source.Span
}

// ============================================================================
// Int
// ============================================================================

// Int is a 64-bit integer literal.
type Int struct {
	Value int64
	At    source.Span
}

// Span implementation for Form interface.
func (p *Int) Span() source.Span {
	return p.At
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Value)
}

// ============================================================================
// Symbol
// ============================================================================

// Symbol is a symbol literal.
type Symbol struct {
	Text string
	At   source.Span
}

// Span implementation for Form interface.
func (p *Symbol) Span() source.Span {
	return p.At
}

func (p *Symbol) String() string {
	return p.Text
}

// ============================================================================
// Group
// ============================================================================

// Group is a bracketed sequence of forms.  The open and close delimiters always
// have the same kind.
type Group struct {
	Open     Delimited
	Close    Delimited
	Children []Form
}

// Kind returns the delimiter kind of this group.
func (p *Group) Kind() token.Delimiter {
	return p.Open.Kind
}

// Span implementation for Form interface.
func (p *Group) Span() source.Span {
	return p.Open.Span.Join(p.Close.Span)
}

func (p *Group) String() string {
	var builder strings.Builder
	//
	builder.WriteRune(p.Open.Kind.Open())
	//
	for i, child := range p.Children {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(child.String())
	}
	//
	builder.WriteRune(p.Close.Kind.Close())
	//
	return builder.String()
}

// ============================================================================
// Macro
// ============================================================================

// Macro is a prefix applied to its operands.  The type-ascription prefix is
// binary and has a non-nil Type, whilst all other prefixes are unary.
type Macro struct {
	Prefix Prefixed
	Type   Form
	Value  Form
}

// Span implementation for Form interface.
func (p *Macro) Span() source.Span {
	return p.Prefix.Span.Join(p.Value.Span())
}

func (p *Macro) String() string {
	if p.Type != nil {
		return fmt.Sprintf("%s%s %s", p.Prefix.Kind, p.Type, p.Value)
	}
	//
	return fmt.Sprintf("%s%s", p.Prefix.Kind, p.Value)
}
