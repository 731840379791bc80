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
package lisp

import (
	"errors"
	"io"

	"github.com/consensys/go-lisp/pkg/lisp/eval"
	"github.com/consensys/go-lisp/pkg/lisp/expr"
	"github.com/consensys/go-lisp/pkg/lisp/form"
	"github.com/consensys/go-lisp/pkg/lisp/reader"
	"github.com/consensys/go-lisp/pkg/lisp/token"
	"github.com/consensys/go-lisp/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Config determines how an interpreter is constructed.
type Config struct {
	// Options for the underlying evaluator.
	Options eval.Options
	// NoPrelude starts the interpreter with an empty stack, rather than one
	// binding the specials and primitives.
	NoPrelude bool
}

// Interpreter runs source text end to end: parsing, reading and then evaluating
// each top-level form in turn.  Bindings persist between calls.
type Interpreter struct {
	config    Config
	evaluator *eval.Evaluator
}

// NewInterpreter constructs a new interpreter with a given configuration.
func NewInterpreter(config Config) *Interpreter {
	p := &Interpreter{config: config}
	p.Reset()
	//
	return p
}

// Reset discards all bindings made so far.
func (p *Interpreter) Reset() {
	stack := eval.NewStack()
	//
	if !p.config.NoPrelude {
		stack = eval.NewPrelude()
	}
	//
	p.evaluator = eval.NewEvaluator(stack, p.config.Options)
}

// Stack returns the stack of this interpreter.
func (p *Interpreter) Stack() *eval.Stack {
	return p.evaluator.Stack()
}

// Stats returns what the underlying evaluator has done so far.
func (p *Interpreter) Stats() eval.Stats {
	return p.evaluator.Stats()
}

// EvalString evaluates every top-level form in a given piece of text.
func (p *Interpreter) EvalString(text string) ([]expr.Expr, []error) {
	return p.EvalFile(source.NewSourceFile("<input>", []byte(text)))
}

// EvalFile evaluates every top-level form in a given file, returning the result
// of each form which evaluated successfully.  Evaluation continues after any
// error, which may arise from parsing, reading or evaluation.
func (p *Interpreter) EvalFile(file *source.File) ([]expr.Expr, []error) {
	var (
		parser  = form.NewParser(token.NewScanner(file.Contents()))
		rd      = reader.NewReader(file)
		results []expr.Expr
		errs    []error
	)
	//
	log.Debugf("evaluating %s", file.Filename())
	//
	for {
		f, err := parser.Next()
		//
		if errors.Is(err, io.EOF) {
			return results, errs
		} else if err != nil {
			errs = append(errs, err)
			continue
		}
		//
		e, err := rd.Read(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		//
		if result, err := p.evaluator.Eval(e); err != nil {
			errs = append(errs, err)
		} else {
			results = append(results, result)
		}
	}
}

// NeedsMore determines whether a given piece of text ends part way through
// some construct, such that more input could complete it.
func NeedsMore(text string) bool {
	_, errs := form.Parse([]rune(text))
	//
	for _, err := range errs {
		if form.IsIncomplete(err) {
			return true
		}
	}
	//
	return false
}

// Diagnose converts an error into zero or more syntax errors against a given
// file, for reporting with source context.  Errors which carry no position
// within that file (e.g. internal failures, or evaluation errors arising in code
// read from some other file) give no syntax errors.
func Diagnose(file *source.File, err error) []source.SyntaxError {
	var (
		ferr *form.Error
		rerr *reader.Error
		eerr *eval.Error
	)
	//
	switch {
	case errors.As(err, &ferr):
		return ferr.Diagnose(file)
	case errors.As(err, &rerr):
		return []source.SyntaxError{*file.SyntaxError(rerr.Span(), rerr.Message())}
	case errors.As(err, &eerr):
		if span, ok := eerr.Meta().FirstIn(file); ok {
			return []source.SyntaxError{*file.SyntaxError(span, eerr.Message())}
		}
	}
	//
	return nil
}
