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
)

func decodeHeader(data []byte) (ver int, typ int, err error) {
	if len(data) < headerSize {
		err = fmt.Errorf("invalid header < %d bytes", headerSize)
		return
	}
	ver = int(binary.LittleEndian.Uint64(data[0:8]))
	typ = int(binary.LittleEndian.Uint64(data[8:16]))
	return
}

type decoderConstructor func(data []byte) (decoder, error)

var decoders = map[int]decoderConstructor{}

type decoder interface {
	start(d *DFA) error
	accept(state int, b byte) int
}

func loadDecoder(ver int, data []byte) (decoder, error) {
	if cons, ok := decoders[ver]; ok {
		return cons(data)
	}
	return nil, fmt.Errorf("no decoder for version %d registered", ver)
}

func registerDecoder(ver int, cons decoderConstructor) {
	decoders[ver] = cons
}
