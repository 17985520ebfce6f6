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

// ParametricState identifies a state of a concrete DFA as a parametric
// shape anchored at an absolute offset in the query.
type ParametricState struct {
	shapeID uint32
	offset  uint32
}

func newParametricState() ParametricState {
	return ParametricState{}
}

func (ps *ParametricState) isDeadEnd() bool {
	return ps.shapeID == 0
}

// Transition is one entry of the parametric transition table: the
// destination shape and how far the anchor moves forward.
type Transition struct {
	destShapeID uint32
	deltaOffset uint32
}

func (t *Transition) apply(state ParametricState) ParametricState {
	ps := ParametricState{
		shapeID: t.destShapeID,
	}
	// the dead state keeps a zero offset, so there is a single dead
	// state per automaton
	if t.destShapeID != 0 {
		ps.offset = state.offset + t.deltaOffset
	}
	return ps
}

// ParametricDFA is the query-independent transition table of the
// Levenshtein automaton for one maximum distance.  Building it is costly,
// stamping out a concrete DFA for a query is cheap, so it is meant to be
// computed once and reused for every query.
type ParametricDFA struct {
	distance         []uint8
	transitions      []Transition
	maxDistance      uint8
	transitionStride uint32
	diameter         uint32
}

func (pdfa *ParametricDFA) initialState() ParametricState {
	return ParametricState{shapeID: 1}
}

// isPrefixSink reports whether, whatever bytes come afterward, the state
// can never reach a smaller distance than it already has.
func (pdfa *ParametricDFA) isPrefixSink(state ParametricState,
	queryLen uint32) bool {
	if state.isDeadEnd() {
		return true
	}

	remOffset := queryLen - state.offset
	if remOffset >= pdfa.diameter {
		return false
	}

	stateDistances := pdfa.distance[pdfa.diameter*state.shapeID:][:pdfa.diameter]
	prefixDistance := stateDistances[remOffset]
	if prefixDistance > pdfa.maxDistance {
		return false
	}

	for _, d := range stateDistances {
		if d < prefixDistance {
			return false
		}
	}
	return true
}

func (pdfa *ParametricDFA) numStates() int {
	return len(pdfa.transitions) / int(pdfa.transitionStride)
}

func (pdfa *ParametricDFA) transition(state ParametricState,
	chi uint32) Transition {
	return pdfa.transitions[pdfa.transitionStride*state.shapeID+chi]
}

func (pdfa *ParametricDFA) getDistance(state ParametricState,
	qLen uint32) Distance {
	remainingOffset := qLen - state.offset
	if state.isDeadEnd() || remainingOffset >= pdfa.diameter {
		return Atleast{d: pdfa.maxDistance + 1}
	}
	dist := pdfa.distance[pdfa.diameter*state.shapeID+remainingOffset]
	if dist > pdfa.maxDistance {
		return Atleast{d: dist}
	}
	return Exact{d: dist}
}

// clampDistance degrades a distance computed against the table's maximum
// to one valid for a DFA built with the smaller maximum mDistance.
func clampDistance(distance Distance, mDistance uint8) Distance {
	if distance.Distance() <= mDistance {
		return distance
	}
	return Atleast{d: mDistance + 1}
}

// computeDistance runs the parametric table directly over the bytes of
// right, without stamping out a concrete DFA for left.
func (pdfa *ParametricDFA) computeDistance(left, right string) Distance {
	state := pdfa.initialState()
	for i := 0; i < len(right); i++ {
		start := state.offset
		stop := start + pdfa.diameter
		if stop > uint32(len(left)) {
			stop = uint32(len(left))
		}
		var chi uint32
		for j := start; j < stop; j++ {
			if left[j] == right[i] {
				chi |= uint32(1) << (j - start)
			}
		}
		transition := pdfa.transition(state, chi)
		state = transition.apply(state)
		if state.isDeadEnd() {
			return Atleast{d: pdfa.maxDistance + 1}
		}
	}
	return pdfa.getDistance(state, uint32(len(left)))
}

// buildDfa stamps out the concrete byte level DFA recognizing all inputs
// within mDistance of query.  With prefixDfa set, states that can no
// longer improve their distance become absorbing, which makes the DFA
// recognize inputs having a prefix within mDistance of query.
func (pdfa *ParametricDFA) buildDfa(query string, mDistance uint8,
	prefixDfa bool) *DFA {
	if mDistance > pdfa.maxDistance {
		mDistance = pdfa.maxDistance
	}

	qLen := uint32(len(query))
	alphabet := queryChars(query)

	psi := newParametricStateIndex(qLen, uint32(pdfa.numStates()))
	// the dead end claims id 0, matching SinkState
	psi.getOrAllocate(newParametricState())
	initialStateID := psi.getOrAllocate(pdfa.initialState())

	builder := withMaxStates(uint32(psi.maxNumStates()), mDistance)
	mask := uint64(1)<<pdfa.diameter - 1

	for stateID := 0; stateID < psi.numStates(); stateID++ {
		state := psi.get(uint32(stateID))
		distance := clampDistance(pdfa.getDistance(state, qLen), mDistance)

		if prefixDfa && pdfa.isPrefixSink(state, qLen) {
			builder.addSinkState(uint32(stateID), distance)
			continue
		}

		transition := pdfa.transition(state, 0)
		defaultSuccessor := transition.apply(state)
		defaultSuccessorID := psi.getOrAllocate(defaultSuccessor)
		builder.addState(uint32(stateID), distance, defaultSuccessorID)

		for _, ch := range alphabet.charset {
			chi := uint32(ch.vector.shiftAndMask(uint64(state.offset), mask))
			transition = pdfa.transition(state, chi)
			destState := transition.apply(state)
			destStateID := psi.getOrAllocate(destState)
			builder.setTransition(uint32(stateID), ch.value, destStateID)
		}
	}

	builder.setInitialState(initialStateID)
	return builder.build()
}

// fromNfa tabulates the NFA into its parametric form, interning every
// reachable multistate shape.  Shape 0 is the empty multistate, shape 1
// the initial one.
func fromNfa(nfa *LevenshteinNFA) *ParametricDFA {
	lookup := newRegistry()
	lookup.entry(newMultiState())
	lookup.entry(nfa.initialStates())

	diameter := uint32(nfa.multistateDiameter())
	numChi := uint32(1) << diameter

	transitions := make([]Transition, 0, numChi*64)
	dest := newMultiState()
	for shapeID := uint32(0); shapeID < lookup.numShapes(); shapeID++ {
		for chi := uint32(0); chi < numChi; chi++ {
			shape := MultiState{states: lookup.shape(shapeID)}
			nfa.transition(&shape, dest, uint64(chi))
			translation := dest.normalize()
			destShapeID, _ := lookup.entry(dest)
			transitions = append(transitions, Transition{
				destShapeID: destShapeID,
				deltaOffset: translation,
			})
		}
	}

	numShapes := lookup.numShapes()
	distance := make([]uint8, 0, diameter*numShapes)
	for shapeID := uint32(0); shapeID < numShapes; shapeID++ {
		shape := MultiState{states: lookup.shape(shapeID)}
		for offset := uint32(0); offset < diameter; offset++ {
			distance = append(distance,
				nfa.multistateDistance(&shape, offset).Distance())
		}
	}

	return &ParametricDFA{
		diameter:         diameter,
		transitions:      transitions,
		maxDistance:      nfa.maxDistance(),
		transitionStride: numChi,
		distance:         distance,
	}
}
