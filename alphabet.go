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

// FullCharacteristicVector is the characteristic bit vector of one input
// byte over the whole reference string, bit i set when reference[i] is
// that byte.  It carries one word of zero padding so that any window
// starting at an offset within the reference can be extracted.
type FullCharacteristicVector []uint64

// shiftAndMask extracts the window of the vector starting at offset,
// keeping only the bits selected by mask.
func (fcv FullCharacteristicVector) shiftAndMask(offset, mask uint64) uint64 {
	bucketID := offset / 64
	align := offset - bucketID*64
	if align == 0 {
		return fcv[bucketID] & mask
	}
	left := fcv[bucketID] >> align
	right := fcv[bucketID+1] << (64 - align)
	return (left | right) & mask
}

type characteristic struct {
	value  byte
	vector FullCharacteristicVector
}

// Alphabet holds, for each distinct byte of the reference string, its full
// characteristic vector.  Bytes absent from the reference are not listed,
// they all share the zero vector.
type Alphabet struct {
	charset []characteristic
}

func queryChars(query string) Alphabet {
	if len(query) == 0 {
		return Alphabet{}
	}

	seen := make([]bool, 256)
	values := make([]byte, 0, len(query))
	for i := 0; i < len(query); i++ {
		if !seen[query[i]] {
			seen[query[i]] = true
			values = append(values, query[i])
		}
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})

	numWords := uint64(len(query))/64 + 2
	charset := make([]characteristic, 0, len(values))
	for _, value := range values {
		vector := make(FullCharacteristicVector, numWords)
		for i := 0; i < len(query); i++ {
			if query[i] == value {
				vector[i/64] |= uint64(1) << (uint64(i) % 64)
			}
		}
		charset = append(charset, characteristic{value: value,
			vector: vector})
	}
	return Alphabet{charset: charset}
}
