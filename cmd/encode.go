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

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	texterrors "github.com/opencraftmc/textnbt/errors"
	"github.com/opencraftmc/textnbt/textnbt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

// encodeCmd is a thin exerciser for the library: it builds a single
// flat Compound root out of "key=value" pairs, encodes it, and prints
// the result as hex. It is not a reimplementation of a real tellraw
// command parser; the grammar for nested components and argument
// selectors belongs to the caller of the library, not to this CLI.
var encodeCmd = &cobra.Command{ // nolint:exhaustruct
	Use:   "encode <key=value>...",
	Short: "Encode a flat string-valued Compound and print its wire bytes as hex",
	Long:  "Encode a flat string-valued Compound and print its wire bytes as hex. Each argument is a key=value pair; values are always encoded as the String tag.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := textnbt.NewCompound()
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("%w: %s (expected key=value)", texterrors.ErrInvalidArgument, arg)
			}
			root.Put(textnbt.MUTF8(key), textnbt.String(textnbt.MUTF8(value)))
		}

		maxDepth := viper.GetInt(MaxDepthParamStr)
		out, err := textnbt.EncodeTextComponent(root, textnbt.WithMaxDepth(maxDepth))
		if err != nil {
			return err
		}

		fmt.Println(hex.EncodeToString(out))
		return nil
	},
}
