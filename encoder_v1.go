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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const versionV1 = 1
const footerSizeV1 = 24

// stateSizeV1 is one distance byte followed by a full 256 entry
// transition row of little endian uint32 state ids.
const stateSizeV1 = 1 + 256*4

// atleastMarkerV1 is the distance byte of states beyond the maximum.
const atleastMarkerV1 = 0xff

func init() {
	registerEncoder(versionV1, func(w io.Writer) encoder {
		return newEncoderV1(w)
	})
}

type encoderV1 struct {
	w   *bufio.Writer
	buf [stateSizeV1]byte
}

func newEncoderV1(w io.Writer) *encoderV1 {
	return &encoderV1{
		w: bufio.NewWriter(w),
	}
}

func (e *encoderV1) start(d *DFA) error {
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(header, versionV1)
	binary.LittleEndian.PutUint64(header[8:], uint64(0)) // type
	n, err := e.w.Write(header)
	if err != nil {
		return err
	}
	if n != headerSize {
		return fmt.Errorf("short write of header %d/%d", n, headerSize)
	}
	return nil
}

func (e *encoderV1) encodeState(d *DFA, state int) error {
	e.buf[0] = encodeDistanceV1(d.Distance(state))
	for b := 0; b < 256; b++ {
		binary.LittleEndian.PutUint32(e.buf[1+4*b:],
			uint32(d.Accept(state, byte(b))))
	}
	n, err := e.w.Write(e.buf[:])
	if err != nil {
		return err
	}
	if n != stateSizeV1 {
		return fmt.Errorf("short write of state %d/%d", n, stateSizeV1)
	}
	return nil
}

func (e *encoderV1) finish(d *DFA) error {
	footer := make([]byte, footerSizeV1)
	binary.LittleEndian.PutUint64(footer, uint64(d.NumStates()))
	binary.LittleEndian.PutUint64(footer[8:], uint64(d.Start()))
	binary.LittleEndian.PutUint64(footer[16:], uint64(d.MaxDistance()))
	n, err := e.w.Write(footer)
	if err != nil {
		return err
	}
	if n != footerSizeV1 {
		return fmt.Errorf("short write of footer %d/%d", n, footerSizeV1)
	}
	return e.w.Flush()
}

func encodeDistanceV1(d Distance) byte {
	if _, ok := d.(Atleast); ok {
		return atleastMarkerV1
	}
	return d.Distance()
}
