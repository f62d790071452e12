// Copyright (C) 2026 The go-textnbt Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the tellrawctl command-line tool, a thin
// exerciser for the textnbt library. It is not a reimplementation of
// any real tellraw command parser.
package cmd

import (
	"strings"

	"github.com/cybergarage/go-logger/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// ProgramName is the CLI's executable name.
	ProgramName = "tellrawctl"
	// Version is the CLI's reported version string.
	Version = "0.1.0"

	VerboseParamStr  = "verbose"
	DebugParamStr    = "debug"
	MaxDepthParamStr = "max-depth"
)

var rootCmd = &cobra.Command{ // nolint:exhaustruct
	Use:               ProgramName,
	Version:           Version,
	Short:             "tellrawctl encodes text components into the tagged binary tree wire format",
	Long:              "tellrawctl encodes text components into the tagged binary tree wire format used to exercise the textnbt library.",
	DisableAutoGenTag: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetSharedLogger(nil)
		verbose := viper.GetBool(VerboseParamStr)
		debug := viper.GetBool(DebugParamStr)
		if debug {
			verbose = true
		}
		if verbose {
			log.Infof("%s version %s", ProgramName, Version)
			log.Infof("verbose:%t, debug:%t", verbose, debug)
			if debug {
				log.SetSharedLogger(log.NewStdoutLogger(log.LevelDebug))
			} else {
				log.SetSharedLogger(log.NewStdoutLogger(log.LevelInfo))
			}
		}
		return nil
	},
}

// RootCommand returns the root command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	viper.SetEnvPrefix("textnbt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	viper.SetDefault(VerboseParamStr, false)
	rootCmd.PersistentFlags().Bool(VerboseParamStr, false, "enable verbose output")
	viper.BindPFlag(VerboseParamStr, rootCmd.PersistentFlags().Lookup(VerboseParamStr))
	viper.BindEnv(VerboseParamStr) // TEXTNBT_VERBOSE

	viper.SetDefault(DebugParamStr, false)
	rootCmd.PersistentFlags().Bool(DebugParamStr, false, "enable debug output")
	viper.BindPFlag(DebugParamStr, rootCmd.PersistentFlags().Lookup(DebugParamStr))
	viper.BindEnv(DebugParamStr) // TEXTNBT_DEBUG

	viper.SetDefault(MaxDepthParamStr, 512)
	rootCmd.PersistentFlags().Int(MaxDepthParamStr, 512, "maximum nesting depth before a structural fault is raised")
	viper.BindPFlag(MaxDepthParamStr, rootCmd.PersistentFlags().Lookup(MaxDepthParamStr))
	viper.BindEnv(MaxDepthParamStr) // TEXTNBT_MAX_DEPTH
}
