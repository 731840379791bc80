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
	"errors"
	"fmt"

	"github.com/consensys/go-lisp/pkg/lisp/token"
	"github.com/consensys/go-lisp/pkg/util/source"
)

// ErrorKind identifies the cause of a parse error.
type ErrorKind uint8

const (
	// TokenFailure indicates the token source reported an error.
	TokenFailure ErrorKind = iota
	// DoesNotComplete indicates a closing delimiter which does not match the
	// innermost open construct.
	DoesNotComplete
	// Incomplete indicates input ended with constructs still open, or a
	// closing delimiter arrived when nothing was open.
	Incomplete
)

func (k ErrorKind) String() string {
	switch k {
	case TokenFailure:
		return "token failure"
	case DoesNotComplete:
		return "does not complete"
	default:
		return "incomplete"
	}
}

// Error describes a failure to parse.  Every error carries a snapshot of the
// constructs which were open at the time, ordered outermost first.
type Error struct {
	Kind ErrorKind
	// Underlying token error (TokenFailure only).
	Token *token.Error
	// Closing delimiter which was rejected, if any.
	Close *Delimited
	// Open constructs, outermost first.
	Partials []Partial
}

func (e *Error) Error() string {
	switch {
	case e.Kind == TokenFailure:
		return e.Token.Error()
	case e.Close != nil && len(e.Partials) == 0:
		return fmt.Sprintf("%s: unmatched '%c'", e.Close.Span.Start(), e.Close.Kind.Close())
	case e.Close != nil:
		inner := e.Partials[len(e.Partials)-1]
		return fmt.Sprintf("%s: '%c' does not close %s at %s", e.Close.Span.Start(), e.Close.Kind.Close(),
			describeOpen(inner), inner.Span().Start())
	default:
		inner := e.Partials[len(e.Partials)-1]
		return fmt.Sprintf("%s: %s", inner.Span().Start(), inner.Describe())
	}
}

// Innermost returns the innermost open construct, or nil if there is none.
func (e *Error) Innermost() Partial {
	if n := len(e.Partials); n > 0 {
		return e.Partials[n-1]
	}
	//
	return nil
}

// Diagnose converts this error into syntax errors against a given source file.
// The innermost unmatched construct is reported first, followed by each
// enclosing construct.
func (e *Error) Diagnose(file *source.File) []source.SyntaxError {
	var errs []source.SyntaxError
	//
	switch {
	case e.Kind == TokenFailure:
		errs = append(errs, *file.SyntaxError(e.Token.Span, e.Token.Message()))
	case e.Close != nil && len(e.Partials) == 0:
		errs = append(errs, *file.SyntaxError(e.Close.Span, fmt.Sprintf("unmatched '%c'", e.Close.Kind.Close())))
	case e.Close != nil:
		msg := fmt.Sprintf("'%c' does not close %s", e.Close.Kind.Close(), describeOpen(e.Innermost()))
		errs = append(errs, *file.SyntaxError(e.Close.Span, msg))
	}
	// Open constructs, innermost first
	for i := len(e.Partials) - 1; i >= 0; i-- {
		p := e.Partials[i]
		errs = append(errs, *file.SyntaxError(p.Span(), p.Describe()))
	}
	//
	return errs
}

// IsIncomplete checks whether a given error arose only because input ended
// before some construct was closed.  A line-oriented console can use this to
// decide whether to keep reading.
func IsIncomplete(err error) bool {
	var perr *Error
	//
	if errors.As(err, &perr) {
		return perr.Kind == Incomplete && perr.Close == nil && len(perr.Partials) > 0
	}
	//
	return false
}

func describeOpen(p Partial) string {
	switch p := p.(type) {
	case *PartialGroup:
		return fmt.Sprintf("'%c'", p.Open.Kind.Open())
	case *PartialHasType:
		return fmt.Sprintf("'%s'", p.Prefix.Kind)
	case *PartialQuoting:
		return fmt.Sprintf("'%s'", p.Prefix.Kind)
	}
	//
	return "construct"
}
