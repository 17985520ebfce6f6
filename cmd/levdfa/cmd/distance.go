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

	"github.com/couchbase/levenshtein"
	"github.com/spf13/cobra"
)

var distanceDistance uint8
var distanceTransposition bool

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Distance evaluates terms against a query without any file",
	Long: `Distance builds the automaton for the query in memory and
reports the edit distance of each term to it.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("query and at least one term required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lb, err := levenshtein.NewLevenshteinAutomatonBuilder(
			distanceDistance, distanceTransposition)
		if err != nil {
			return err
		}

		dfa := lb.BuildDfa(args[0], distanceDistance)
		for _, term := range args[1:] {
			switch d := dfa.Eval([]byte(term)).(type) {
			case levenshtein.Exact:
				fmt.Printf("%s - %d\n", term, d.Distance())
			case levenshtein.Atleast:
				fmt.Printf("%s - at least %d\n", term, d.Distance())
			}
		}
		return nil
	},
}

func init() {
	distanceCmd.Flags().Uint8VarP(&distanceDistance, "distance", "d", 1,
		"maximum edit distance")
	distanceCmd.Flags().BoolVarP(&distanceTransposition, "transposition",
		"t", false, "count the transposition of adjacent bytes as one edit")
	RootCmd.AddCommand(distanceCmd)
}
