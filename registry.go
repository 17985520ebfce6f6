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

import (
	"github.com/zeebo/xxh3"
)

// registry interns normalized multistates, assigning each distinct shape
// a dense id in first-seen order.  Ids are stable for the life of the
// registry, shapes are never evicted.
type registry struct {
	shapes [][]NFAState
	table  map[uint64][]uint32
	buf    []byte
}

func newRegistry() *registry {
	return &registry{
		table: make(map[uint64][]uint32),
	}
}

// entry returns the id for the shape of ms, interning a copy of it first
// if it has not been seen.  The second return is true when the shape was
// already known.
func (r *registry) entry(ms *MultiState) (uint32, bool) {
	bucket := r.hash(ms)
	for _, id := range r.table[bucket] {
		if shapeEquiv(r.shapes[id], ms.states) {
			return id, true
		}
	}
	id := uint32(len(r.shapes))
	r.shapes = append(r.shapes, append([]NFAState(nil), ms.states...))
	r.table[bucket] = append(r.table[bucket], id)
	return id, false
}

func (r *registry) numShapes() uint32 {
	return uint32(len(r.shapes))
}

func (r *registry) shape(id uint32) []NFAState {
	return r.shapes[id]
}

func (r *registry) hash(ms *MultiState) uint64 {
	r.buf = r.buf[:0]
	for _, s := range ms.states {
		var transpose byte
		if s.InTranspose {
			transpose = 1
		}
		r.buf = append(r.buf,
			byte(s.Offset),
			byte(s.Offset>>8),
			byte(s.Offset>>16),
			byte(s.Offset>>24),
			s.Distance,
			transpose)
	}
	return xxh3.Hash(r.buf)
}

func shapeEquiv(a, b []NFAState) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
