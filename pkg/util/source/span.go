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
package source

import (
	"fmt"
)

// Position identifies a single point within a source text.  All three
// components count runes from zero, so the very first character of a file is at
// offset 0, line 0, column 0.
type Position struct {
	// Offset (in runes) from the start of the text.
	Offset int
	// Line number (counting from 0).
	Line int
	// Column within the line (counting from 0).
	Column int
}

// Advance returns the position reached after consuming the given text from this
// position.  Newlines are tracked, such that each newline increments the line
// number and resets the column.
func (p Position) Advance(text []rune) Position {
	for _, c := range text {
		p.Offset++
		//
		if c == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	//
	return p
}

// AdvanceColumns returns the position reached after consuming n runes, none of
// which is a newline.  This is a cheaper alternative to Advance for tokens
// which can never cross a line boundary.
func (p Position) AdvanceColumns(n int) Position {
	p.Offset += n
	p.Column += n
	//
	return p
}

// To constructs the span starting at this position and ending at another.
func (p Position) To(end Position) Span {
	return NewSpan(p, end)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Span represents a contiguous slice of the original string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// actual positions so that line information can be reported for errors.
type Span struct {
	// The first character of this span in the original string.
	start Position
	// One past the final character of this span in the original string.
	end Position
}

// NewSpan constructs a new span whilst checking that the invariant start <= end
// is properly maintained.
func NewSpan(start Position, end Position) Span {
	if start.Offset > end.Offset {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting position of this span in the original string.
func (p Span) Start() Position {
	return p.start
}

// End returns one past the last position of this span in the original string.
func (p Span) End() Position {
	return p.end
}

// Length returns the number of characters covered by this span in the original
// string.
func (p Span) Length() int {
	return p.end.Offset - p.start.Offset
}

// Join returns the smallest span covering both this span and the other.
func (p Span) Join(other Span) Span {
	start, end := p.start, p.end
	//
	if other.start.Offset < start.Offset {
		start = other.start
	}
	//
	if other.end.Offset > end.Offset {
		end = other.end
	}
	//
	return Span{start, end}
}

func (p Span) String() string {
	return fmt.Sprintf("%s-%s", p.start, p.end)
}
