//  Copyright (c) 2018 Couchbase, Inc.
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

/*
Package levenshtein builds byte level Levenshtein automata: deterministic
finite automata recognizing exactly the inputs within a chosen edit
distance of a query string, optionally counting the transposition of two
adjacent bytes as a single edit.

The expensive, query independent part of the construction is tabulated
once per maximum distance by NewLevenshteinAutomatonBuilder.  Stamping
out the automaton for one query is then cheap enough to do per lookup.

	lb, err := levenshtein.NewLevenshteinAutomatonBuilder(2, false)
	if err != nil {
		log.Fatal(err)
	}
	dfa := lb.BuildDfa("coffee", 2)

	state := dfa.Start()
	for _, b := range []byte("covfee") {
		state = dfa.Accept(state, b)
	}
	if dfa.IsMatch(state) {
		fmt.Println(dfa.Distance(state))
	}

Distances are counted over raw bytes, a multi byte character differing in
one byte is one edit away.
*/
package levenshtein

import (
	"fmt"
)

// MaxSupportedDistance is the largest maximum distance a builder can be
// created for.  The parametric tables grow exponentially with the
// distance, beyond this building them stops being reasonable.
const MaxSupportedDistance = 4

// ErrExceededMaxDistance is returned if you attempt to create a builder
// for a maximum distance larger than MaxSupportedDistance.
var ErrExceededMaxDistance = fmt.Errorf("max distance exceeds %d",
	MaxSupportedDistance)

// LevenshteinAutomatonBuilder wraps a precomputed datastructure that
// allows to produce small (but not minimal) DFA.
type LevenshteinAutomatonBuilder struct {
	pDfa *ParametricDFA
}

// NewLevenshteinAutomatonBuilder creates a Levenshtein automaton builder.
// `maxDistance` - maximum distance considered by the automaton.
// `transposition` - assign a distance of 1 for transposition
//
// Building this automaton builder is computationally intensive.
// While it takes only a few milliseconds for `d=2`, it grows
// exponentially with `d`.
func NewLevenshteinAutomatonBuilder(maxDistance uint8,
	transposition bool) (*LevenshteinAutomatonBuilder, error) {
	if maxDistance > MaxSupportedDistance {
		return nil, ErrExceededMaxDistance
	}

	lnfa := newLevenshtein(maxDistance, transposition)

	return &LevenshteinAutomatonBuilder{
		pDfa: fromNfa(lnfa),
	}, nil
}

// BuildDfa builds the automaton for query, accepting the inputs within
// fuzziness edits of it.  A fuzziness beyond the builder's maximum
// distance is capped to it.
func (lab *LevenshteinAutomatonBuilder) BuildDfa(query string,
	fuzziness uint8) *DFA {
	return lab.pDfa.buildDfa(query, fuzziness, false)
}

// BuildPrefixDfa builds the automaton accepting the inputs that start
// with a prefix within fuzziness edits of query.
func (lab *LevenshteinAutomatonBuilder) BuildPrefixDfa(query string,
	fuzziness uint8) *DFA {
	return lab.pDfa.buildDfa(query, fuzziness, true)
}

// MaxDistance returns the maximum distance the builder was created for.
func (lab *LevenshteinAutomatonBuilder) MaxDistance() uint8 {
	return lab.pDfa.maxDistance
}

// Load returns a DFA from its persistent form.  The automaton reads from
// data directly, the caller must not modify it while the DFA is in use.
func Load(data []byte) (*DFA, error) {
	return newDFA(data, nil)
}
