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
	"bufio"
	"fmt"
	"os"

	"github.com/couchbase/levenshtein"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match lists the terms of a file accepted by this automaton",
	Long: `Match lists the terms of a file accepted by this automaton.
The terms file holds one term per line, sorted files match faster.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("automaton and terms paths required")
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

		termsFile, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer func() {
			_ = termsFile.Close()
		}()

		var terms [][]byte
		scanner := bufio.NewScanner(termsFile)
		for scanner.Scan() {
			term := make([]byte, len(scanner.Bytes()))
			copy(term, scanner.Bytes())
			terms = append(terms, term)
		}
		err = scanner.Err()
		if err != nil {
			return err
		}

		itr, err := dfa.Iterator(terms)
		for err == nil {
			term, dist := itr.Current()
			fmt.Printf("%s - %d\n", term, dist.Distance())
			err = itr.Next()
		}
		if err != levenshtein.ErrIteratorDone {
			return err
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(matchCmd)
}
