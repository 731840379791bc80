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

import "strings"

// INDENT is the text written for each level of indentation.
const INDENT = "   "

// Text is a block of lines under construction, where each new line starts at
// the current indentation level.
type Text struct {
	// Current indent level
	indent int
	// Lines being written
	lines []string
}

func (p *Text) String() string {
	var builder strings.Builder
	//
	for _, line := range p.lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// Indent adjusts the indentation level for subsequent lines.
func (p *Text) Indent(delta int) {
	p.indent += delta
}

// NewLine starts a new line at the current indentation level.
func (p *Text) NewLine() {
	p.lines = append(p.lines, strings.Repeat(INDENT, max(0, p.indent)))
}

// LineWidth returns the width of the line currently being written.
func (p *Text) LineWidth() uint {
	if n := len(p.lines); n > 0 {
		return uint(len(p.lines[n-1]))
	}
	//
	return 0
}

// MaxWidth returns the width of the widest line.
func (p *Text) MaxWidth() uint {
	width := 0
	//
	for _, line := range p.lines {
		width = max(width, len(line))
	}
	//
	return uint(width)
}

// WriteString appends text to the line currently being written.
func (p *Text) WriteString(str string) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, str)
	} else {
		p.lines[len(p.lines)-1] += str
	}
}
