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
	"testing"
)

func TestLevenshtein(t *testing.T) {

	hash := make(map[uint8]*LevenshteinAutomatonBuilder, 4)
	for _, d := range []uint8{0, 1, 2} {
		lb, err := NewLevenshteinAutomatonBuilder(d, false)
		if err != nil {
			t.Fatalf("error creating automaton builder: %v", err)
		}
		hash[d] = lb
	}

	tests := []struct {
		desc     string
		query    string
		distance uint8
		seq      []byte
		isMatch  bool
		canMatch bool
	}{
		{
			desc:     "cat/0 - c a t",
			query:    "cat",
			distance: 0,
			seq:      []byte{'c', 'a', 't'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cat/1 - c a",
			query:    "cat",
			distance: 1,
			seq:      []byte{'c', 'a'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cat/1 - c a t s",
			query:    "cat",
			distance: 1,
			seq:      []byte{'c', 'a', 't', 's'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cat/0 - c a",
			query:    "cat",
			distance: 0,
			seq:      []byte{'c', 'a'},
			isMatch:  false,
			canMatch: true,
		},
		{
			desc:     "cat/0 - c a t s",
			query:    "cat",
			distance: 0,
			seq:      []byte{'c', 'a', 't', 's'},
			isMatch:  false,
			canMatch: false,
		},
		// this section contains cases where the sequence of bytes
		// encountered contains utf-8 encoded multi-byte characters,
		// every byte of which counts toward the edit distance
		{
			desc:     "cat/0 - c 0xc3 0xa1 t (cát)",
			query:    "cat",
			distance: 0,
			seq:      []byte{'c', 0xc3, 0xa1, 't'},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cat/1 - c 0xc3 0xa1 t (cát)",
			query:    "cat",
			distance: 1,
			seq:      []byte{'c', 0xc3, 0xa1, 't'},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cat/2 - c 0xc3 0xa1 t (cát)",
			query:    "cat",
			distance: 2,
			seq:      []byte{'c', 0xc3, 0xa1, 't'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cat/1 - 0xc3 0xa1 (á)",
			query:    "cat",
			distance: 1,
			seq:      []byte{0xc3, 0xa1},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cat/1 - 0xc3 0xa1 c a t (ácat)",
			query:    "cat",
			distance: 1,
			seq:      []byte{0xc3, 0xa1, 'c', 'a', 't'},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cat/2 - 0xc3 0xa1 c a t (ácat)",
			query:    "cat",
			distance: 2,
			seq:      []byte{0xc3, 0xa1, 'c', 'a', 't'},
			isMatch:  true,
			canMatch: true,
		},
		// this section has utf-8 encoded multi-byte characters in the
		// query, again counting per byte
		{
			desc:     "cát/0 - c a t (cat)",
			query:    "cát",
			distance: 0,
			seq:      []byte{'c', 'a', 't'},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cát/1 - c 0xc3 0xa1 (cá)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'c', 0xc3, 0xa1},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cát/1 - c 0xc3 0xa1 s (cás)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'c', 0xc3, 0xa1, 's'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cát/1 - c 0xc3 0xa1 t a (cáta)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'c', 0xc3, 0xa1, 't', 'a'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cát/1 - d 0xc3 0xa1 t (dát)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'d', 0xc3, 0xa1, 't'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cát/1 - c a t (cat)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'c', 'a', 't'},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cát/2 - c a t (cat)",
			query:    "cát",
			distance: 2,
			seq:      []byte{'c', 'a', 't'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cát/1 - c a t s (cats)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'c', 'a', 't', 's'},
			isMatch:  false,
			canMatch: false,
		},
		{
			desc:     "cát/1 - 0xc3 0xa1 (á)",
			query:    "cát",
			distance: 1,
			seq:      []byte{0xc3, 0xa1},
			isMatch:  false,
			canMatch: true,
		},
		{
			desc:     "cát/1 - a c 0xc3 0xa1 t (acát)",
			query:    "cát",
			distance: 1,
			seq:      []byte{'a', 'c', 0xc3, 0xa1, 't'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cate/1 - cate",
			query:    "cate",
			distance: 1,
			seq:      []byte{'c', 'a', 't', 'e'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "cater/1 - cate",
			query:    "cater",
			distance: 1,
			seq:      []byte{'c', 'a', 't', 'e'},
			isMatch:  true,
			canMatch: true,
		},
		{
			desc:     "catered/2 - cater",
			query:    "catered",
			distance: 2,
			seq:      []byte{'c', 'a', 't', 'e', 'r'},
			isMatch:  true,
			canMatch: true,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			l := hash[test.distance].pDfa.buildDfa(test.query, test.distance, false)

			s := l.Start()
			for _, b := range test.seq {
				s = l.Accept(s, b)
				if uint32(s) == SinkState {
					break
				}
			}

			isMatch := l.IsMatch(s)
			if isMatch != test.isMatch {
				t.Errorf("expected isMatch %t, got %t", test.isMatch, isMatch)
			}

			canMatch := l.CanMatch(s)
			if canMatch != test.canMatch {
				t.Errorf("expected canMatch %t, got %t", test.canMatch, canMatch)
			}
		})
	}
}

func makeDistance(d uint8, md uint8) Distance {
	if d > md {
		return Atleast{d: md + 1}
	}
	return Exact{d: d}
}

func testLevenshteinNfaUtil(left, right string, ed uint8, t *testing.T) {
	for _, d := range []uint8{0, 1, 2, 3} {
		expectedDistance := makeDistance(ed, d)
		lev := newLevenshtein(d, false)
		testSymmetric(lev, left, right, expectedDistance, t)
	}
}

func testSymmetric(lev *LevenshteinNFA, left, right string, expected Distance, t *testing.T) {
	levd := lev.computeDistance([]rune(left), []rune(right))
	if levd.Distance() != expected.Distance() {
		t.Errorf("expected distance: %d, actual: %d", expected.Distance(), levd.Distance())
	}

	levd = lev.computeDistance([]rune(right), []rune(left))
	if levd.Distance() != expected.Distance() {
		t.Errorf("expected distance: %d, actual: %d", expected.Distance(), levd.Distance())
	}
}

func TestLevenshteinNfa(t *testing.T) {
	testLevenshteinNfaUtil("abc", "abc", 0, t)
	testLevenshteinNfaUtil("abc", "abcd", 1, t)
	testLevenshteinNfaUtil("aab", "ab", 1, t)
}

func TestDeadState(t *testing.T) {
	nfa := newLevenshtein(1, false)
	pdfa := fromNfa(nfa)
	dfa := pdfa.buildDfa("abcdefghijklmnop", 1, false)

	// one stray byte leaves the edit budget intact
	state := dfa.Start()
	state = dfa.Accept(state, 'X')
	if uint32(state) == SinkState {
		t.Errorf("expected a live state after one stray byte")
	}

	// a second one exhausts it
	state = dfa.Accept(state, 'X')
	if uint32(state) != SinkState {
		t.Errorf("expected state: %d, actual: %d", SinkState, state)
	}

	// the dead state absorbs everything, query bytes included
	state = dfa.Accept(state, 'a')
	if uint32(state) != SinkState {
		t.Errorf("expected state: %d, actual: %d", SinkState, state)
	}
}

func TestLevenshteinParametricDfa(t *testing.T) {
	lev := newLevenshtein(1, true)
	pDfa := fromNfa(lev)
	testStr := "abc"
	dfa := pDfa.buildDfa(testStr, 1, false)

	rd := dfa.Eval([]byte("abc"))
	if rd.Distance() != 0 {
		t.Errorf("expected distance 0, actual: %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("ab"))
	if rd.Distance() != 1 {
		t.Errorf("expected distance 1, actual: %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("ac"))
	if rd.Distance() != 1 {
		t.Errorf("expected distance 1, actual: %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("a"))
	if rd.Distance() != 2 {
		t.Errorf("expected distance 2, actual: %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("abcd"))
	if rd.Distance() != 1 {
		t.Errorf("expected distance 1, actual: %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("abdd"))
	if rd.Distance() != 2 {
		t.Errorf("expected distance 2, actual: %d", rd.Distance())
	}

	testStr = "abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlmnopqrstuvwxyz"

	dfa = pDfa.buildDfa(testStr, 1, false)

	sample1 := "abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlnopqrstuvwxyz" +
		"abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlmnopqrstuvwxyz"
	rd = dfa.Eval([]byte(sample1))
	if rd.Distance() != 1 {
		t.Errorf("expected distance 1, actual: %d", rd.Distance())
	}

	sample2 := "abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlnopqrstuvwxyz" +
		"abcdefghijlmnopqrstuvwxyz" +
		"abcdefghijlmnoprqstuvwxyz"
	rd = dfa.Eval([]byte(sample2))
	if rd.Distance() != 2 {
		t.Errorf("expected distance 2, actual: %d", rd.Distance())
	}
}

func TestDamerau(t *testing.T) {
	nfa := newLevenshtein(2, true)
	testSymmetric(nfa, "abc", "abc", Exact{d: 0}, t)
	testSymmetric(nfa, "abc", "abcd", Exact{d: 1}, t)
	testSymmetric(nfa, "abcdef", "abddef", Exact{d: 1}, t)
	testSymmetric(nfa, "abcdef", "abdcef", Exact{d: 1}, t)
}

// transpositions are restricted, once two bytes have been swapped no
// other edit touches them, so CA -> AC -> ABC is not a valid derivation
// of cost 2
func TestDamerauRestricted(t *testing.T) {
	nfa := newLevenshtein(2, true)
	testSymmetric(nfa, "CA", "ABC", Atleast{d: 3}, t)
}

func TestLevenshteinDfa(t *testing.T) {
	nfa := newLevenshtein(1, false)
	pDfa := fromNfa(nfa)
	dfa := pDfa.buildDfa("ab", 1, false)
	if dfa.NumStates() != 10 {
		t.Errorf("expected number of states: 10, actual: %d", dfa.NumStates())
	}
}

func TestZeroDistanceChain(t *testing.T) {
	lb, err := NewLevenshteinAutomatonBuilder(0, false)
	if err != nil {
		t.Fatalf("error creating automaton builder: %v", err)
	}

	// at distance 0 the automaton is a plain chain over the query
	// bytes, plus the dead state
	tests := []struct {
		query     string
		numStates int
	}{
		{"a", 3},
		{"ab", 4},
		{"abc", 5},
	}

	for _, test := range tests {
		dfa := lb.BuildDfa(test.query, 0)
		if dfa.NumStates() != test.numStates {
			t.Errorf("query %q: expected %d states, got %d",
				test.query, test.numStates, dfa.NumStates())
		}

		rd := dfa.Eval([]byte(test.query))
		if rd != (Exact{d: 0}) {
			t.Errorf("query %q: expected Exact 0, got %d",
				test.query, rd.Distance())
		}

		rd = dfa.Eval([]byte(test.query + "x"))
		if rd != (Atleast{d: 1}) {
			t.Errorf("query %q: expected Atleast 1, got %d",
				test.query, rd.Distance())
		}

		rd = dfa.Eval(nil)
		if rd != (Atleast{d: 1}) {
			t.Errorf("query %q: expected Atleast 1 on empty input, got %d",
				test.query, rd.Distance())
		}
	}
}

func TestEmptyQuery(t *testing.T) {
	lb, err := NewLevenshteinAutomatonBuilder(1, false)
	if err != nil {
		t.Fatalf("error creating automaton builder: %v", err)
	}

	dfa := lb.BuildDfa("", 1)

	rd := dfa.Eval(nil)
	if rd != (Exact{d: 0}) {
		t.Errorf("expected Exact 0, got %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("x"))
	if rd != (Exact{d: 1}) {
		t.Errorf("expected Exact 1, got %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("xy"))
	if rd != (Atleast{d: 2}) {
		t.Errorf("expected Atleast 2, got %d", rd.Distance())
	}
}

func TestNewLevenshteinAutomatonBuilderLimit(t *testing.T) {
	lb, err := NewLevenshteinAutomatonBuilder(MaxSupportedDistance, false)
	if err != nil {
		t.Fatalf("expected distance %d to be supported, got: %v",
			MaxSupportedDistance, err)
	}
	if lb.MaxDistance() != MaxSupportedDistance {
		t.Errorf("expected max distance %d, got %d",
			MaxSupportedDistance, lb.MaxDistance())
	}

	_, err = NewLevenshteinAutomatonBuilder(MaxSupportedDistance+1, false)
	if err != ErrExceededMaxDistance {
		t.Errorf("expected ErrExceededMaxDistance, got: %v", err)
	}
}

func TestBuildDfaFuzzinessCapped(t *testing.T) {
	lb, err := NewLevenshteinAutomatonBuilder(1, false)
	if err != nil {
		t.Fatalf("error creating automaton builder: %v", err)
	}

	// asking for more fuzziness than the builder supports caps it
	dfa := lb.BuildDfa("abc", 3)
	if dfa.MaxDistance() != 1 {
		t.Errorf("expected max distance 1, got %d", dfa.MaxDistance())
	}

	rd := dfa.Eval([]byte("abcd"))
	if rd != (Exact{d: 1}) {
		t.Errorf("expected Exact 1, got %d", rd.Distance())
	}

	rd = dfa.Eval([]byte("abcdd"))
	if rd != (Atleast{d: 2}) {
		t.Errorf("expected Atleast 2, got %d", rd.Distance())
	}
}

func TestMultiByteCountsPerByte(t *testing.T) {
	lb, err := NewLevenshteinAutomatonBuilder(1, false)
	if err != nil {
		t.Fatalf("error creating automaton builder: %v", err)
	}

	// あ is 0xe3 0x81 0x82 in utf-8
	dfa := lb.BuildDfa("あ", 1)

	rd := dfa.Eval([]byte("あ"))
	if rd != (Exact{d: 0}) {
		t.Errorf("expected Exact 0, got %d", rd.Distance())
	}

	// flipping the last byte of the character is a single edit
	rd = dfa.Eval([]byte{0xe3, 0x81, 0x83})
	if rd != (Exact{d: 1}) {
		t.Errorf("expected Exact 1, got %d", rd.Distance())
	}

	// dropping the character entirely is three edits
	dfa = lb.BuildDfa("寿a", 1)
	rd = dfa.Eval([]byte("a"))
	if rd != (Atleast{d: 2}) {
		t.Errorf("expected Atleast 2, got %d", rd.Distance())
	}
}

func TestTypos(t *testing.T) {
	tests := []struct {
		desc          string
		query         string
		input         string
		distance      uint8
		transposition bool
		want          Distance
	}{
		{
			desc:     "single substitution",
			query:    "Levenshtein",
			input:    "Levenshtain",
			distance: 1,
			want:     Exact{d: 1},
		},
		{
			desc:     "single substitution at distance 2",
			query:    "Levenshtein",
			input:    "Levenshtain",
			distance: 2,
			want:     Exact{d: 1},
		},
		{
			desc:     "missing space",
			query:    "saucisson sec",
			input:    "saucissonsec",
			distance: 2,
			want:     Exact{d: 1},
		},
		{
			desc:          "swapped letters",
			query:         "saucisson",
			input:         "saucissno",
			distance:      2,
			transposition: true,
			want:          Exact{d: 1},
		},
		{
			desc:          "transposition costs one",
			query:         "acheter",
			input:         "achetre",
			distance:      1,
			transposition: true,
			want:          Exact{d: 1},
		},
		{
			desc:          "transposition costs two without the option",
			query:         "acheter",
			input:         "achetre",
			distance:      2,
			transposition: false,
			want:          Exact{d: 2},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			lb, err := NewLevenshteinAutomatonBuilder(test.distance,
				test.transposition)
			if err != nil {
				t.Fatalf("error creating automaton builder: %v", err)
			}
			dfa := lb.BuildDfa(test.query, test.distance)
			rd := dfa.Eval([]byte(test.input))
			if rd != test.want {
				t.Errorf("expected %v, got %v", test.want, rd)
			}
		})
	}
}
