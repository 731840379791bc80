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

// MAX_PRIORITY is the highest priority the printer will escalate to when trying
// to fit the output within its width.
const MAX_PRIORITY = 4

// Printer formats expressions so that, as far as possible, no line exceeds a
// given width.  Lists which do not fit are broken over several lines, as
// directed by the printer's rules.  Breaking happens in rounds of increasing
// priority until the output fits (or the priority is exhausted).
type Printer struct {
	// Maximum desired width
	width uint
	// Rules to be used for formatting (first match wins)
	rules []Rule
}

// New constructs a printer for a given width, with the default rules.
func New(width uint) *Printer {
	p := &Printer{width, nil}
	//
	p.Add(&HeadRule{"lambda", 2, 1})
	p.Add(&HeadRule{"the", 2, 1})
	p.Add(&HeadRule{"def", 2, 1})
	p.Add(&HeadRule{"macro", 1, 1})
	p.Add(&HeadRule{"", 1, 2})
	//
	return p
}

// Add a new formatting rule.  Rules added earlier take precedence.
func (p *Printer) Add(rule Rule) {
	p.rules = append(p.rules, rule)
}

// Format an expression, producing one or more newline-terminated lines.
func (p *Printer) Format(e expr.Expr) string {
	var text Text
	//
	for priority := uint(0); ; priority++ {
		text = Text{}
		p.format(priority, e, &text)
		//
		if text.MaxWidth() <= p.width || priority >= MAX_PRIORITY {
			return text.String()
		}
	}
}

func (p *Printer) format(priority uint, e expr.Expr, text *Text) {
	switch e := e.(type) {
	case *expr.List:
		p.formatList(priority, e, text)
	case *expr.Map:
		p.formatMap(priority, e, text)
	case *expr.Fun:
		p.formatList(priority, lambdaOf(e), text)
	case *expr.Macro:
		view := expr.NewList(nil, expr.NewSymbol("macro", nil), lambdaOf(e.Fun()))
		p.formatList(priority, view, text)
	default:
		text.WriteString(e.String())
	}
}

func (p *Printer) formatList(priority uint, list *expr.List, text *Text) {
	// Don't break anything which already fits
	if text.LineWidth()+uint(len(list.String())) <= p.width {
		priority = 0
	}
	//
	for _, rule := range p.rules {
		if chunks := rule.Split(list); chunks != nil {
			p.formatChunks(priority, "(", ")", chunks, text)
			return
		}
	}
	// Empty list
	text.WriteString(list.String())
}

func (p *Printer) formatMap(priority uint, m *expr.Map, text *Text) {
	var chunks []Chunk
	//
	if text.LineWidth()+uint(len(m.String())) <= p.width {
		priority = 0
	}
	// Each entry starts a line of its own
	for i, entry := range m.Entries() {
		var keyPriority uint = 2
		//
		if i == 0 {
			keyPriority = math.MaxUint
		}
		//
		chunks = append(chunks, Chunk{keyPriority, 1, entry.Key}, Chunk{math.MaxUint, 0, entry.Value})
	}
	//
	p.formatChunks(priority, "{", "}", chunks, text)
}

func (p *Printer) formatChunks(priority uint, open string, close string, chunks []Chunk, text *Text) {
	text.WriteString(open)
	//
	for i, chunk := range chunks {
		brk := chunk.Priority <= priority
		//
		if brk {
			text.Indent(int(chunk.Indent))
			text.NewLine()
		} else if i != 0 {
			text.WriteString(" ")
		}
		//
		p.format(priority, chunk.Contents, text)
		//
		if brk {
			text.Indent(-int(chunk.Indent))
		}
	}
	//
	text.WriteString(close)
}

func lambdaOf(fn *expr.Fun) *expr.List {
	return expr.NewList(fn.Meta(), expr.NewSpecial(expr.Lambda, nil), fn.Param, fn.Body)
}
