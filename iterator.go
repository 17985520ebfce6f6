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

package levenshtein

import "errors"

// ErrIteratorDone is returned by Iterator/Next methods when there are no
// further terms matched by the automaton.
var ErrIteratorDone = errors.New("iterator-done")

// Iterator enumerates, among a slice of terms, the ones accepted by a
// DFA.  Iterators should be constructed with the Iterator method on the
// parent DFA structure.
//
// The walk through the automaton is shared across the common prefix of
// consecutive terms, so feeding terms in sorted order is cheaper.
// Correctness does not depend on the order.
type Iterator struct {
	d     *DFA
	terms [][]byte

	idx    int
	prefix []byte
	states []int

	currTerm []byte
	currDist Distance
}

// Iterator returns an Iterator positioned on the first term of terms the
// automaton accepts, or ErrIteratorDone when it accepts none of them.
func (d *DFA) Iterator(terms [][]byte) (*Iterator, error) {
	return newIterator(d, terms)
}

func newIterator(d *DFA, terms [][]byte) (*Iterator, error) {
	rv := &Iterator{
		d:      d,
		terms:  terms,
		states: []int{d.Start()},
	}

	err := rv.next()
	if err != nil {
		return nil, err
	}

	return rv, nil
}

// Current returns the term and its distance currently pointed to by the
// iterator.  If the iterator is not pointing at a valid term (because
// Iterator/Next returned an error previously), it may return nil, nil.
func (i *Iterator) Current() ([]byte, Distance) {
	return i.currTerm, i.currDist
}

// Next advances this iterator to the next accepted term.  If there is
// none, ErrIteratorDone is returned.
func (i *Iterator) Next() error {
	return i.next()
}

func (i *Iterator) next() error {
	for ; i.idx < len(i.terms); i.idx++ {
		term := i.terms[i.idx]

		// reuse the states walked for the previous term across the
		// shared prefix
		shared := 0
		maxShared := len(i.prefix)
		if len(term) < maxShared {
			maxShared = len(term)
		}
		for shared < maxShared && term[shared] == i.prefix[shared] {
			shared++
		}
		i.prefix = i.prefix[:shared]
		i.states = i.states[:shared+1]

		state := i.states[len(i.states)-1]
		j := shared
		for j < len(term) && i.d.CanMatch(state) &&
			!i.d.WillAlwaysMatch(state) {
			state = i.d.Accept(state, term[j])
			i.states = append(i.states, state)
			i.prefix = append(i.prefix, term[j])
			j++
		}

		if i.d.WillAlwaysMatch(state) ||
			(j == len(term) && i.d.IsMatch(state)) {
			i.currTerm = term
			i.currDist = i.d.Distance(state)
			i.idx++
			return nil
		}
	}

	i.currTerm = nil
	i.currDist = nil
	return ErrIteratorDone
}

// Close will free any resources held by this iterator.
func (i *Iterator) Close() error {
	// at the moment we don't do anything, but wanted this for API completeness
	return nil
}
