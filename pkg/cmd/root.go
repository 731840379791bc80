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
	"runtime/debug"

	"github.com/consensys/go-lisp/pkg/lisp"
	"github.com/consensys/go-lisp/pkg/lisp/eval"
	"github.com/consensys/go-lisp/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lisp",
	Short: "A small Lisp interpreter.",
	Long:  "A reader, evaluator and REPL for a small Lisp with first-class macros.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("lisp ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			_ = cmd.Help()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Determine the configuration for a given command, by reading the config file
// (if any) and then applying any flags explicitly given.  This also sets the
// log level accordingly.
func configure(cmd *cobra.Command) Config {
	filename := GetString(cmd, "config")
	// An explicitly named config file must exist
	config, err := LoadConfig(filename, cmd.Flags().Changed("config"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	config.Override(cmd)
	// Configure log level
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	return config
}

// Construct an interpreter for a given configuration, and evaluate any prelude
// files it names.  Failures in the prelude are reported, and are fatal.
func newInterpreter(config Config) *lisp.Interpreter {
	interp := lisp.NewInterpreter(lisp.Config{
		Options: eval.Options{
			CaptureClosures: config.Closures,
			MaxDepth:        config.MaxDepth,
		},
		NoPrelude: config.NoPrelude,
	})
	//
	files, err := source.ReadFiles(config.Prelude...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	for i := range files {
		log.Debugf("loading prelude %s", files[i].Filename())
		//
		if _, errs := interp.EvalFile(&files[i]); len(errs) > 0 {
			printErrors(&files[i], errs)
			os.Exit(2)
		}
	}
	//
	return interp
}

// Declare the flags common to every command.
func addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	cmd.PersistentFlags().String("config", DEFAULT_CONFIG, "configuration file")
	cmd.PersistentFlags().Bool("closures", false, "lambdas capture the bindings in scope where they are made")
	cmd.PersistentFlags().Uint("max-depth", 0, "maximum evaluation depth (0 for unlimited)")
	cmd.PersistentFlags().Uint("width", 0, "width of pretty printed output (0 for terminal width)")
	cmd.PersistentFlags().Bool("no-prelude", false, "start without the builtin specials and primitives")
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	addFlags(rootCmd)
}
