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
	"os"
	"strings"

	"github.com/consensys/go-lisp/pkg/lisp"
	"github.com/consensys/go-lisp/pkg/util/source"
	"github.com/spf13/cobra"
	"github.com/ztrue/tracerr"
	"golang.org/x/term"
)

// FALLBACK_WIDTH is used for pretty printing when no width is configured and
// the output is not a terminal.
const FALLBACK_WIDTH = 80

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Determine the width for pretty printing, preferring the configured width and
// then the width of the terminal (if there is one).
func outputWidth(config Config) uint {
	if config.Width != 0 {
		return config.Width
	}
	//
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return FALLBACK_WIDTH
}

// Print a set of errors arising from a given file.  Errors with position
// information are printed against the source, internal failures with their
// stack trace.
func printErrors(file *source.File, errs []error) {
	for _, err := range errs {
		var terr tracerr.Error
		//
		if diags := lisp.Diagnose(file, err); len(diags) > 0 {
			for i := range diags {
				printSyntaxError(&diags[i])
			}
		} else if errors.As(err, &terr) {
			tracerr.PrintSourceColor(terr)
		} else {
			fmt.Println(err)
		}
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-span.Start().Column, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+span.Start().Column, 1+span.Start().Column+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", span.Start().Column))
	// Print highlight (at least one character, even at end of line)
	fmt.Println(strings.Repeat("^", max(1, length)))
}
