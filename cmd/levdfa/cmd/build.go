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
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var buildDistance uint8
var buildTransposition bool
var buildPrefix bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds a Levenshtein automaton file for a query string",
	Long:  `Builds a Levenshtein automaton file for a query string.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("query and path required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lb, err := levenshtein.NewLevenshteinAutomatonBuilder(
			buildDistance, buildTransposition)
		if err != nil {
			return err
		}

		var dfa *levenshtein.DFA
		if buildPrefix {
			dfa = lb.BuildPrefixDfa(args[0], buildDistance)
		} else {
			dfa = lb.BuildDfa(args[0], buildDistance)
		}

		outFile, err := os.Create(args[1])
		if err != nil {
			return err
		}
		err = dfa.Save(outFile)
		if err != nil {
			_ = outFile.Close()
			return err
		}
		err = outFile.Close()
		if err != nil {
			return err
		}

		fi, err := os.Stat(args[1])
		if err != nil {
			return err
		}
		fmt.Printf("built automaton with %s states (%s)\n",
			humanize.Comma(int64(dfa.NumStates())),
			humanize.Bytes(uint64(fi.Size())))
		return nil
	},
}

func init() {
	buildCmd.Flags().Uint8VarP(&buildDistance, "distance", "d", 1,
		"maximum edit distance")
	buildCmd.Flags().BoolVarP(&buildTransposition, "transposition", "t",
		false, "count the transposition of adjacent bytes as one edit")
	buildCmd.Flags().BoolVar(&buildPrefix, "prefix", false,
		"match inputs starting with a prefix close to the query")
	RootCmd.AddCommand(buildCmd)
}
