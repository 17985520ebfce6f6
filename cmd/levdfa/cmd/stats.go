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
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var statsJSON bool

type automatonStats struct {
	Path            string `json:"path"`
	SizeBytes       int64  `json:"size_bytes"`
	Version         int    `json:"version"`
	NumStates       int    `json:"num_states"`
	MaxDistance     uint8  `json:"max_distance"`
	MatchingStates  int    `json:"matching_states"`
	AbsorbingStates int    `json:"absorbing_states"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Stats reports the size and shape of this automaton file",
	Long:  `Stats reports the size and shape of this automaton file.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fi, err := os.Stat(args[0])
		if err != nil {
			return err
		}

		dfa, err := levenshtein.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			_ = dfa.Close()
		}()

		stats := automatonStats{
			Path:        args[0],
			SizeBytes:   fi.Size(),
			Version:     dfa.Version(),
			NumStates:   dfa.NumStates(),
			MaxDistance: dfa.MaxDistance(),
		}
		for state := 0; state < dfa.NumStates(); state++ {
			if dfa.IsMatch(state) {
				stats.MatchingStates++
			}
			if dfa.WillAlwaysMatch(state) {
				stats.AbsorbingStates++
			}
		}

		if statsJSON {
			var json = jsoniter.ConfigCompatibleWithStandardLibrary
			out, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", out)
			return nil
		}

		fmt.Printf("path: %s\n", stats.Path)
		fmt.Printf("size: %s\n", humanize.Bytes(uint64(stats.SizeBytes)))
		fmt.Printf("version: %d\n", stats.Version)
		fmt.Printf("states: %s\n", humanize.Comma(int64(stats.NumStates)))
		fmt.Printf("max distance: %d\n", stats.MaxDistance)
		fmt.Printf("matching states: %s\n",
			humanize.Comma(int64(stats.MatchingStates)))
		fmt.Printf("absorbing states: %s\n",
			humanize.Comma(int64(stats.AbsorbingStates)))
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false,
		"emit the stats as JSON")
	RootCmd.AddCommand(statsCmd)
}
