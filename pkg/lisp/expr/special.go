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

// SpecialKind identifies a special form.
type SpecialKind uint8

const (
	// Lambda constructs a function.
	Lambda SpecialKind = iota
	// Quasiquote returns its operand unevaluated.
	Quasiquote
	// Quote returns its operand unevaluated.
	Quote
	// The ascribes a type to a value.
	The
	// Unquote is only meaningful inside a quasiquote.
	Unquote
)

// SpecialKinds lists every special kind.
var SpecialKinds = []SpecialKind{Lambda, Quasiquote, Quote, The, Unquote}

var specialNames = [...]string{"lambda", "quasiquote", "quote", "the", "unquote"}

// Name returns the name conventionally bound to this special.
func (k SpecialKind) Name() string {
	return specialNames[k]
}

// Special is a special form as a first-class value.  Specials are recognised by
// the evaluator through their value, never through the name of a symbol.
type Special struct {
	Kind SpecialKind
	meta *Meta
}

// NewSpecial constructs a new special.
func NewSpecial(kind SpecialKind, meta *Meta) *Special {
	return &Special{kind, meta}
}

// Meta implementation for Expr interface.
func (p *Special) Meta() *Meta {
	return p.meta
}

// WithMeta implementation for Expr interface.
func (p *Special) WithMeta(meta *Meta) Expr {
	return &Special{p.Kind, meta}
}

func (p *Special) String() string {
	return p.Kind.Name()
}
