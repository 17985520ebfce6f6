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
	"io"

	"github.com/willf/bitset"
)

// SinkState is the id of the dead state.  Once an automaton has reached
// it, no sequence of bytes can lead back to a match.
const SinkState = uint32(0)

// DFA is the concrete byte level automaton for one query string: it
// recognizes exactly the inputs within a fixed edit distance of the
// query.  A DFA is immutable once built and safe for concurrent use by
// multiple goroutines without locking.
type DFA struct {
	transitions [][256]uint32
	distances   []Distance
	accept      *bitset.BitSet
	alwaysMatch *bitset.BitSet
	initState   int
	ed          uint8

	ver  int
	data []byte
	f    io.Closer
	dec  decoder
}

func newDFA(data []byte, f io.Closer) (*DFA, error) {
	rv := &DFA{
		data: data,
		f:    f,
	}

	err := rv.initDFA()
	if err != nil {
		return nil, err
	}

	return rv, nil
}

func (d *DFA) initDFA() error {
	var err error
	d.ver, _, err = decodeHeader(d.data)
	if err != nil {
		return err
	}

	d.dec, err = loadDecoder(d.ver, d.data)
	if err != nil {
		return err
	}

	return d.dec.start(d)
}

// Start returns the automaton's initial state.
func (d *DFA) Start() int {
	return d.initState
}

// Accept returns the state reached from state by consuming the byte b.
func (d *DFA) Accept(state int, b byte) int {
	if d.dec != nil {
		return d.dec.accept(state, b)
	}
	return int(d.transitions[state][b])
}

// IsMatch returns true if the bytes consumed so far lie within the
// automaton's maximum distance of the query.
func (d *DFA) IsMatch(state int) bool {
	return d.accept.Test(uint(state))
}

// CanMatch returns true if some sequence of additional bytes can still
// lead to a match from state.
func (d *DFA) CanMatch(state int) bool {
	return state > 0 && state < d.NumStates()
}

// WillAlwaysMatch returns true if every sequence of additional bytes
// keeps the automaton matching.  Only prefix automata have such states.
func (d *DFA) WillAlwaysMatch(state int) bool {
	return d.alwaysMatch.Test(uint(state))
}

// Distance reports how far the bytes consumed so far are from the query,
// exactly up to the automaton's maximum, as a lower bound beyond it.
func (d *DFA) Distance(state int) Distance {
	return d.distances[state]
}

// Eval runs the automaton over input and reports its distance from the
// query.
func (d *DFA) Eval(input []byte) Distance {
	state := d.Start()
	for _, b := range input {
		state = d.Accept(state, b)
	}
	return d.Distance(state)
}

// NumStates returns the number of states, the dead state included.
func (d *DFA) NumStates() int {
	return len(d.distances)
}

// MaxDistance returns the maximum edit distance this DFA was built for.
func (d *DFA) MaxDistance() uint8 {
	return d.ed
}

// Version returns the encoding version used by a DFA obtained from Load
// or Open.  It is zero for a freshly built automaton.
func (d *DFA) Version() int {
	return d.ver
}

// Save writes the automaton to w in its persistent form.
func (d *DFA) Save(w io.Writer) error {
	enc, err := loadEncoder(versionV1, w)
	if err != nil {
		return err
	}
	err = enc.start(d)
	if err != nil {
		return err
	}
	for state := 0; state < d.NumStates(); state++ {
		err = enc.encodeState(d, state)
		if err != nil {
			return err
		}
	}
	return enc.finish(d)
}

// Close will unmap any mmap'd data (if managed by this package) and it
// will close the backing file (if managed by this package).  You MUST
// call Close() on any DFA obtained from Open.
func (d *DFA) Close() error {
	if d.f != nil {
		err := d.f.Close()
		if err != nil {
			return err
		}
	}
	d.data = nil
	d.dec = nil
	return nil
}

// dfaBuilder assembles a DFA one state at a time.  States must be added
// in increasing id order, starting from the dead state at id 0.
type dfaBuilder struct {
	transitions [][256]uint32
	distances   []Distance
	accept      *bitset.BitSet
	alwaysMatch *bitset.BitSet
	initState   int
	ed          uint8
}

func withMaxStates(maxStates uint32, ed uint8) *dfaBuilder {
	return &dfaBuilder{
		transitions: make([][256]uint32, 0, maxStates),
		distances:   make([]Distance, 0, maxStates),
		accept:      bitset.New(uint(maxStates)),
		alwaysMatch: bitset.New(uint(maxStates)),
		ed:          ed,
	}
}

// addState appends the state's row, wired entirely to defaultSuccessor.
// Individual bytes are rerouted afterward with setTransition.
func (b *dfaBuilder) addState(state uint32, distance Distance,
	defaultSuccessor uint32) {
	var row [256]uint32
	for i := range row {
		row[i] = defaultSuccessor
	}
	b.transitions = append(b.transitions, row)
	b.distances = append(b.distances, distance)
	if _, ok := distance.(Exact); ok {
		b.accept.Set(uint(state))
	}
}

// addSinkState appends an absorbing state, every byte loops back to it.
func (b *dfaBuilder) addSinkState(state uint32, distance Distance) {
	b.addState(state, distance, state)
	if b.accept.Test(uint(state)) {
		b.alwaysMatch.Set(uint(state))
	}
}

func (b *dfaBuilder) setTransition(from uint32, on byte, to uint32) {
	b.transitions[from][on] = to
}

func (b *dfaBuilder) setInitialState(initState uint32) {
	b.initState = int(initState)
}

func (b *dfaBuilder) build() *DFA {
	return &DFA{
		transitions: b.transitions,
		distances:   b.distances,
		accept:      b.accept,
		alwaysMatch: b.alwaysMatch,
		initState:   b.initState,
		ed:          b.ed,
	}
}
