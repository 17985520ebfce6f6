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

package levenshtein

import (
	"sort"
)

// NFAState is a single configuration of the nondeterministic Levenshtein
// automaton: an alignment offset into the reference, the number of edits
// already spent, and whether a transposition is half-consumed.
type NFAState struct {
	Offset      uint32
	Distance    uint8
	InTranspose bool
}

// NFAStates implements sort.Interface ordering configurations by
// offset, then distance, then transpose flag.
type NFAStates []NFAState

func (ns NFAStates) Len() int {
	return len(ns)
}

func (ns NFAStates) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns NFAStates) Less(i, j int) bool {
	if ns[i].Offset != ns[j].Offset {
		return ns[i].Offset < ns[j].Offset
	}
	if ns[i].Distance != ns[j].Distance {
		return ns[i].Distance < ns[j].Distance
	}
	return !ns[i].InTranspose && ns[j].InTranspose
}

// imply reports whether any completion reachable from other is reachable
// from ns at no greater cost, i.e. other is redundant next to ns.
func (ns NFAState) imply(other NFAState) bool {
	transposeImply := ns.InTranspose || !other.InTranspose
	deltaOffset := dist(ns.Offset, other.Offset)
	if transposeImply {
		return uint32(other.Distance) >= uint32(ns.Distance)+deltaOffset
	}
	return uint32(other.Distance) > uint32(ns.Distance)+deltaOffset
}

func dist(left, right uint32) uint32 {
	if left > right {
		return left - right
	}
	return right - left
}

// MultiState is a dominance-pruned set of NFA configurations.  It is the
// canonical shape of a parametric state once normalized.
type MultiState struct {
	states []NFAState
}

func newMultiState() *MultiState {
	return &MultiState{}
}

func (ms *MultiState) getStates() []NFAState {
	return ms.states
}

func (ms *MultiState) clear() {
	ms.states = ms.states[:0]
}

// normalize rebases all offsets on the smallest one and sorts the
// configurations, returning the offset that was factored out.
func (ms *MultiState) normalize() uint32 {
	var minOffset uint32
	if len(ms.states) > 0 {
		minOffset = ms.states[0].Offset
		for _, s := range ms.states[1:] {
			if s.Offset < minOffset {
				minOffset = s.Offset
			}
		}
	}
	for i := range ms.states {
		ms.states[i].Offset -= minOffset
	}
	sort.Sort(NFAStates(ms.states))
	return minOffset
}

// addState inserts a configuration unless it is dominated, evicting any
// existing configurations the new one dominates.
func (ms *MultiState) addState(ns NFAState) {
	for _, s := range ms.states {
		if s.imply(ns) {
			return
		}
	}
	i := 0
	for i < len(ms.states) {
		if ns.imply(ms.states[i]) {
			ms.states[i] = ms.states[len(ms.states)-1]
			ms.states = ms.states[:len(ms.states)-1]
		} else {
			i++
		}
	}
	ms.states = append(ms.states, ns)
}

// LevenshteinNFA is the nondeterministic Levenshtein automaton for a fixed
// maximum distance, optionally counting adjacent transposition as a
// single edit.
type LevenshteinNFA struct {
	mDistance uint8
	damerau   bool
}

func newLevenshtein(maxD uint8, transposition bool) *LevenshteinNFA {
	return &LevenshteinNFA{
		mDistance: maxD,
		damerau:   transposition,
	}
}

func (la *LevenshteinNFA) maxDistance() uint8 {
	return la.mDistance
}

// multistateDiameter is the width of the characteristic vector window,
// 2*maxDistance + 1.
func (la *LevenshteinNFA) multistateDiameter() uint8 {
	return 2*la.mDistance + 1
}

func (la *LevenshteinNFA) initialStates() *MultiState {
	ms := newMultiState()
	ms.addState(NFAState{})
	return ms
}

// multistateDistance is the minimum edit distance over the configurations
// of ms, assuming queryLen reference characters must still be aligned.
func (la *LevenshteinNFA) multistateDistance(ms *MultiState,
	queryLen uint32) Distance {
	minDistance := uint32(la.mDistance) + 1
	for _, s := range ms.states {
		t := uint32(s.Distance) + dist(queryLen, s.Offset)
		if t < minDistance {
			minDistance = t
		}
	}
	if minDistance <= uint32(la.mDistance) {
		return Exact{d: uint8(minDistance)}
	}
	return Atleast{d: la.mDistance + 1}
}

func (la *LevenshteinNFA) simpleTransition(state NFAState,
	symbol uint64, ms *MultiState) {
	if state.Distance < la.mDistance {
		// insertion
		ms.addState(NFAState{Offset: state.Offset,
			Distance: state.Distance + 1})

		// substitution
		ms.addState(NFAState{Offset: state.Offset + 1,
			Distance: state.Distance + 1})

		// deletion of d reference characters followed by a match
		for d := uint8(1); d < la.mDistance+1-state.Distance; d++ {
			if extractBit(symbol, d) {
				ms.addState(NFAState{Offset: state.Offset + 1 + uint32(d),
					Distance: state.Distance + d})
			}
		}

		if la.damerau && extractBit(symbol, 1) {
			ms.addState(NFAState{Offset: state.Offset,
				Distance:    state.Distance + 1,
				InTranspose: true})
		}
	}

	if extractBit(symbol, 0) {
		ms.addState(NFAState{Offset: state.Offset + 1,
			Distance: state.Distance})
	}

	if state.InTranspose && extractBit(symbol, 0) {
		ms.addState(NFAState{Offset: state.Offset + 2,
			Distance: state.Distance})
	}
}

// transition computes the successor multistate under the given
// characteristic vector, which is anchored on the multistate's zero
// offset.  The result is not normalized.
func (la *LevenshteinNFA) transition(cState *MultiState,
	dState *MultiState, chiVector uint64) {
	dState.clear()
	mask := (uint64(1) << la.multistateDiameter()) - 1
	for _, state := range cState.getStates() {
		chi := (chiVector >> state.Offset) & mask
		la.simpleTransition(state, chi, dState)
	}
	sort.Sort(NFAStates(dState.states))
}

func (la *LevenshteinNFA) computeDistance(query, other []rune) Distance {
	cState := la.initialStates()
	dState := newMultiState()
	for _, r := range other {
		chi := characteristicVector(query, r)
		la.transition(cState, dState, chi)
		cState, dState = dState, cState
	}
	return la.multistateDistance(cState, uint32(len(query)))
}

func extractBit(bitset uint64, pos uint8) bool {
	return ((bitset >> pos) & 1) == 1
}

// characteristicVector reports which of the first 64 query positions hold
// the rune r.
func characteristicVector(query []rune, r rune) uint64 {
	var chi uint64
	for i := 0; i < len(query) && i < 64; i++ {
		if query[i] == r {
			chi |= uint64(1) << i
		}
	}
	return chi
}
