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

// Distance is the outcome of evaluating an input against a Levenshtein
// automaton.  The automaton computes exact distances only up to its
// configured maximum; beyond that it reports Atleast(max+1).
type Distance interface {
	// Distance returns the highest known lower bound for the
	// edit distance.
	Distance() uint8
}

// Exact is an edit distance the automaton resolved precisely.
type Exact struct {
	d uint8
}

// Distance returns the exact edit distance.
func (e Exact) Distance() uint8 {
	return e.d
}

// Atleast indicates the edit distance exceeds the automaton's maximum,
// carrying max+1 as the lower bound.
type Atleast struct {
	d uint8
}

// Distance returns the lower bound for the edit distance.
func (a Atleast) Distance() uint8 {
	return a.d
}
