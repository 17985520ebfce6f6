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
	"encoding/binary"
	"fmt"

	"github.com/willf/bitset"
)

func init() {
	registerDecoder(versionV1, func(data []byte) (decoder, error) {
		return newDecoderV1(data)
	})
}

// decoderV1 decodes the small parts of the automaton eagerly and serves
// transitions straight out of the backing data.
type decoderV1 struct {
	data      []byte
	numStates int
	initState int
	ed        uint8
}

func newDecoderV1(data []byte) (*decoderV1, error) {
	if len(data) < headerSize+footerSizeV1 {
		return nil, fmt.Errorf(
			"invalid data, not enough to decode header and footer")
	}

	footer := data[len(data)-footerSizeV1:]
	numStates := binary.LittleEndian.Uint64(footer)
	initState := binary.LittleEndian.Uint64(footer[8:])
	ed := binary.LittleEndian.Uint64(footer[16:])

	body := len(data) - headerSize - footerSizeV1
	if body%stateSizeV1 != 0 || uint64(body/stateSizeV1) != numStates {
		return nil, fmt.Errorf(
			"invalid data, length %d does not hold %d states",
			len(data), numStates)
	}
	if initState >= numStates {
		return nil, fmt.Errorf("invalid initial state %d of %d",
			initState, numStates)
	}
	if ed > MaxSupportedDistance {
		return nil, fmt.Errorf("invalid max distance %d", ed)
	}

	return &decoderV1{
		data:      data,
		numStates: int(numStates),
		initState: int(initState),
		ed:        uint8(ed),
	}, nil
}

func (d *decoderV1) start(dfa *DFA) error {
	dfa.initState = d.initState
	dfa.ed = d.ed
	dfa.distances = make([]Distance, d.numStates)
	dfa.accept = bitset.New(uint(d.numStates))
	dfa.alwaysMatch = bitset.New(uint(d.numStates))

	for state := 0; state < d.numStates; state++ {
		db := d.data[headerSize+state*stateSizeV1]
		switch {
		case db == atleastMarkerV1:
			dfa.distances[state] = Atleast{d: d.ed + 1}
		case db <= d.ed:
			dfa.distances[state] = Exact{d: db}
			dfa.accept.Set(uint(state))
		default:
			return fmt.Errorf("invalid distance byte 0x%x for state %d",
				db, state)
		}
	}

	// a matching state whose whole row loops back to itself is an
	// absorbing sink of a prefix automaton
	for state := 0; state < d.numStates; state++ {
		if !dfa.accept.Test(uint(state)) {
			continue
		}
		absorbing := true
		for b := 0; b < 256; b++ {
			if d.accept(state, byte(b)) != state {
				absorbing = false
				break
			}
		}
		if absorbing {
			dfa.alwaysMatch.Set(uint(state))
		}
	}

	return nil
}

func (d *decoderV1) accept(state int, b byte) int {
	off := headerSize + state*stateSizeV1 + 1 + 4*int(b)
	return int(binary.LittleEndian.Uint32(d.data[off:]))
}
