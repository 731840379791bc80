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
	"fmt"
	"os"

	"github.com/consensys/go-lisp/pkg/lisp"
	"github.com/consensys/go-lisp/pkg/lisp/printer"
	"github.com/consensys/go-lisp/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] source_file(s)",
	Short: "evaluate one or more source files.",
	Long: `Evaluate every top-level form of the given source file(s) in turn, printing
	 the result of each.  Bindings made by one file are visible to those after it.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := configure(cmd)
		quiet := GetFlag(cmd, "quiet")
		interp := newInterpreter(config)
		// Read source files
		files, err := source.ReadFiles(args...)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if !runFiles(interp, printer.New(outputWidth(config)), files, quiet) {
			os.Exit(1)
		}
	},
}

// Evaluate a set of files in order, printing the results (unless quiet) and
// any errors.  This returns false if any error arose.
func runFiles(interp *lisp.Interpreter, printer *printer.Printer, files []source.File, quiet bool) bool {
	ok := true
	//
	for i := range files {
		results, errs := interp.EvalFile(&files[i])
		//
		if !quiet {
			for _, r := range results {
				fmt.Print(printer.Format(r))
			}
		}
		//
		if len(errs) > 0 {
			printErrors(&files[i], errs)
			ok = false
		}
		//
		log.Debugf("%s: %d results, %d errors", files[i].Filename(), len(results), len(errs))
	}
	//
	return ok
}

func init() {
	runCmd.Flags().BoolP("quiet", "q", false, "do not print results")
	rootCmd.AddCommand(runCmd)
}
