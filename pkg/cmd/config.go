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
	"io/fs"
	"os"

	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// DEFAULT_CONFIG is the config file read when none is given explicitly.
const DEFAULT_CONFIG = ".lisp.yaml"

// DEFAULT_HISTORY is the REPL history file, relative to the home directory.
const DEFAULT_HISTORY = ".lisp_history"

// Config captures the settings which can be given in a config file, and then
// overridden on the command line.
type Config struct {
	// Source files evaluated before any user input.
	Prelude []string `yaml:"prelude"`
	// Whether lambdas capture the bindings in scope where they are made.
	Closures bool `yaml:"closures"`
	// Maximum evaluation depth, where 0 means unlimited.
	MaxDepth uint `yaml:"max_depth"`
	// Width for pretty printing, where 0 means the terminal width.
	Width uint `yaml:"width"`
	// REPL history file.
	History string `yaml:"history"`
	// Enable debug logging.
	Verbose bool `yaml:"verbose"`
	// Start without the builtin specials and primitives (flag only).
	NoPrelude bool `yaml:"-"`
}

// DefaultConfig returns the configuration used in the absence of any config
// file.
func DefaultConfig() Config {
	return Config{History: DEFAULT_HISTORY}
}

// LoadConfig reads a configuration file.  A missing file gives the default
// configuration, unless the file is required.
func LoadConfig(filename string, required bool) (Config, error) {
	config := DefaultConfig()
	//
	bytes, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return config, nil
	} else if err != nil {
		return config, pkgErrors.Wrapf(err, "failed to read config file %#v", filename)
	}
	//
	log.Debugf("reading config file %s", filename)
	//
	if err := ParseConfig(bytes, &config); err != nil {
		return config, pkgErrors.Wrapf(err, "malformed config file %#v", filename)
	}
	//
	return config, nil
}

// ParseConfig parses the contents of a config file on top of a given
// configuration.  Keys absent from the file leave the existing setting alone.
func ParseConfig(bytes []byte, config *Config) error {
	return yaml.UnmarshalStrict(bytes, config)
}

// Override applies those flags which were explicitly given on the command line.
func (p *Config) Override(cmd *cobra.Command) {
	flags := cmd.Flags()
	//
	if flags.Changed("closures") {
		p.Closures = GetFlag(cmd, "closures")
	}
	//
	if flags.Changed("max-depth") {
		p.MaxDepth = GetUint(cmd, "max-depth")
	}
	//
	if flags.Changed("width") {
		p.Width = GetUint(cmd, "width")
	}
	//
	if flags.Changed("verbose") {
		p.Verbose = GetFlag(cmd, "verbose")
	}
	//
	p.NoPrelude = GetFlag(cmd, "no-prelude")
}
