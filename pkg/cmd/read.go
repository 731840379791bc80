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

	"github.com/alecthomas/repr"
	"github.com/consensys/go-lisp/pkg/lisp/form"
	"github.com/consensys/go-lisp/pkg/lisp/printer"
	"github.com/consensys/go-lisp/pkg/lisp/reader"
	"github.com/consensys/go-lisp/pkg/util/source"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [flags] source_file(s)",
	Short: "print the expressions read from one or more source files.",
	Long: `Parse and read the given source file(s) without evaluating them, printing each
	 expression read.  This is useful for seeing how surface syntax is desugared.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := configure(cmd)
		dump := GetFlag(cmd, "dump")
		printer := printer.New(outputWidth(config))
		ok := true
		//
		files, err := source.ReadFiles(args...)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for i := range files {
			forms, errs := form.Parse(files[i].Contents())
			//
			if dump {
				for _, f := range forms {
					repr.Println(f, repr.Indent("   "), repr.OmitEmpty(true))
				}
			} else {
				exprs, rerrs := reader.ReadAll(forms)
				errs = append(errs, rerrs...)
				//
				for _, e := range exprs {
					fmt.Print(printer.Format(e))
				}
			}
			//
			if len(errs) > 0 {
				printErrors(&files[i], errs)
				ok = false
			}
		}
		//
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	readCmd.Flags().Bool("dump", false, "dump the raw forms, rather than the expressions read from them")
	rootCmd.AddCommand(readCmd)
}
