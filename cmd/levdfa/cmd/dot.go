//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/couchbase/levenshtein"
	"github.com/spf13/cobra"
)

var dotSvg bool

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Dot prints the contents of this automaton file in the dot format",
	Long: `Dot prints the contents of this automaton file in the dot
format.  With --svg it renders it through the GraphViz dot binary
instead.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dfa, err := levenshtein.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = dfa.Close()
		}()

		if dotSvg {
			return levenshtein.ExportDFASVG(dfa, os.Stdout)
		}
		return levenshtein.ExportDFADot(dfa, os.Stdout)
	},
}

func init() {
	dotCmd.Flags().BoolVar(&dotSvg, "svg", false,
		"render SVG through the dot binary")
	RootCmd.AddCommand(dotCmd)
}
