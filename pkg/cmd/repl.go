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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/consensys/go-lisp/pkg/lisp"
	"github.com/consensys/go-lisp/pkg/lisp/expr"
	"github.com/consensys/go-lisp/pkg/lisp/printer"
	"github.com/consensys/go-lisp/pkg/util/source"
	"github.com/peterh/liner"
	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	promptMain = "lisp> "
	promptCont = "  ... "
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "start an interactive session.",
	Long: `Start an interactive read-eval-print loop.  Input spanning several lines is
	 read until it forms complete expressions.  When standard input is not a
	 terminal, it is evaluated in one batch instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		config := configure(cmd)
		session := NewSession(newInterpreter(config), printer.New(outputWidth(config)), os.Stdout)
		//
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			if !runBatch(session, os.Stdin) {
				os.Exit(1)
			}
			//
			return
		}
		//
		runInteractive(session, historyPath(config.History))
	},
}

// Session is an interactive session with an interpreter, which handles one
// chunk of input at a time.
type Session struct {
	interp  *lisp.Interpreter
	printer *printer.Printer
	out     io.Writer
}

// NewSession constructs a new session which writes its output to a given
// writer.
func NewSession(interp *lisp.Interpreter, printer *printer.Printer, out io.Writer) *Session {
	return &Session{interp, printer, out}
}

// Handle a chunk of input, which is either a session command (":quit", ":reset"
// or ":stack") or source text to evaluate.  This returns false when the session
// should end, along with any errors arising from evaluation.
func (p *Session) Handle(input string) (bool, []error) {
	code := strings.TrimSpace(input)
	//
	switch {
	case code == "":
		return true, nil
	case code == ":quit":
		return false, nil
	case code == ":reset":
		p.interp.Reset()
		fmt.Fprintln(p.out, "bindings reset")
		//
		return true, nil
	case code == ":stack":
		p.printStack()
		return true, nil
	}
	// Anything else (including type ascriptions such as ":t x") is source text
	file := source.NewSourceFile("<repl>", []byte(input))
	results, errs := p.interp.EvalFile(file)
	//
	for _, r := range results {
		fmt.Fprint(p.out, p.printer.Format(r))
	}
	//
	if len(errs) > 0 {
		printErrors(file, errs)
	}
	//
	return true, errs
}

func (p *Session) printStack() {
	stack := p.interp.Stack()
	//
	fmt.Fprintf(p.out, "depth %d\n", stack.Depth())
	//
	for _, name := range stack.Names() {
		value, err := stack.Lookup(expr.NewSymbol(name, nil))
		// Names come from the stack itself
		if err != nil {
			panic(err)
		}
		//
		fmt.Fprintf(p.out, "%s = %s\n", name, value.String())
	}
}

// Evaluate everything from a given reader in one go.  This returns false if any
// error arose.
func runBatch(session *Session, in io.Reader) bool {
	bytes, err := io.ReadAll(in)
	if err != nil {
		fmt.Println(pkgErrors.Wrap(err, "failed to read standard input"))
		return false
	}
	//
	_, errs := session.Handle(string(bytes))
	//
	return len(errs) == 0
}

func runInteractive(session *Session, history string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	//
	if f, err := os.Open(history); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	//
	defer func() {
		if f, err := os.Create(history); err != nil {
			log.Debugf("cannot write history %s: %s", history, err)
		} else {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()
	//
	for {
		input, ok := readInput(ln)
		if !ok {
			fmt.Println()
			return
		}
		//
		if strings.TrimSpace(input) != "" {
			ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		}
		//
		if more, _ := session.Handle(input); !more {
			return
		}
	}
}

// Read lines until they form complete input, or the input ends.  Input which
// is malformed (rather than incomplete) is returned straight away, so its
// errors get reported.
func readInput(ln *liner.State) (string, bool) {
	var builder strings.Builder
	//
	for {
		prompt := promptMain
		//
		if builder.Len() > 0 {
			prompt = promptCont
		}
		//
		line, err := ln.Prompt(prompt)
		//
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		} else if err != nil {
			log.Debugf("prompt failed: %s", err)
			return "", false
		}
		//
		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		//
		builder.WriteString(line)
		//
		if !lisp.NeedsMore(builder.String()) {
			return builder.String(), true
		}
	}
}

// Determine where the history file lives, where relative paths are taken
// relative to the home directory.
func historyPath(history string) string {
	if history == "" {
		history = DEFAULT_HISTORY
	}
	//
	if filepath.IsAbs(history) {
		return history
	} else if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, history)
	}
	//
	return history
}

func init() {
	rootCmd.AddCommand(replCmd)
}
