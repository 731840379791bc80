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

import "github.com/consensys/go-lisp/pkg/util/source"

// Meta records where an expression came from.  The head of the chain is where
// the expression was written, and each later entry is a site through which the
// value subsequently passed (for example, each symbol reference which resolved
// to it), oldest first.  Meta is immutable: a nil *Meta means "no provenance".
type Meta struct {
	// Span of source text (if known).
	Span *source.Span
	// File containing the span (if known).
	File *source.File
	// Next entry in the chain, recorded after this one (if any).
	Old *Meta
}

// NewMeta constructs a provenance record for a given span.
func NewMeta(span source.Span) *Meta {
	return &Meta{&span, nil, nil}
}

// NewSourceMeta constructs a provenance record for a given span of a given file.
func NewSourceMeta(file *source.File, span source.Span) *Meta {
	return &Meta{&span, file, nil}
}

// PushOld returns a copy of this chain with the given entry appended at the end
// (i.e. as the most recent site).  Neither chain is modified.
func (p *Meta) PushOld(m *Meta) *Meta {
	if p == nil {
		return m
	} else if m == nil {
		return p
	}
	//
	return &Meta{p.Span, p.File, p.Old.PushOld(m)}
}

// Len returns the number of entries in this chain.
func (p *Meta) Len() uint {
	var n uint
	//
	for m := p; m != nil; m = m.Old {
		n++
	}
	//
	return n
}

// Spans returns all known spans in this chain, oldest first.  Hence, the span
// where the expression was written comes first and the most recent reference
// comes last.
func (p *Meta) Spans() []source.Span {
	var spans []source.Span
	//
	for m := p; m != nil; m = m.Old {
		if m.Span != nil {
			spans = append(spans, *m.Span)
		}
	}
	//
	return spans
}

// First returns the oldest known span in this chain (i.e. where the expression
// was written), if any.
func (p *Meta) First() (source.Span, bool) {
	for m := p; m != nil; m = m.Old {
		if m.Span != nil {
			return *m.Span, true
		}
	}
	//
	return source.Span{}, false
}

// FirstIn returns the oldest known span in this chain which lies within a given
// file, if any.  Spans of unknown origin never match.
func (p *Meta) FirstIn(file *source.File) (source.Span, bool) {
	for m := p; m != nil; m = m.Old {
		if m.Span != nil && m.File != nil && m.File == file {
			return *m.Span, true
		}
	}
	//
	return source.Span{}, false
}
