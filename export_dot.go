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
	"bytes"
	"fmt"
	"io"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportDFADot will export the contents of the provided DFA into the
// GraphViz (dot) file format.  Matching states carry their distance and
// are drawn as double circles.  Transitions into the dead state and self
// loops are left out, consecutive bytes sharing a destination are
// collapsed into ranges.
func ExportDFADot(d *DFA, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	err = exportDFAStateDot(d, d.Start(), bw, map[int]struct{}{})
	if err != nil {
		return err
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func exportDFAStateDot(d *DFA, state int, bw *bufio.Writer,
	seen map[int]struct{}) error {
	if _, already := seen[state]; already {
		return nil
	}
	seen[state] = struct{}{}

	var buf bytes.Buffer
	if d.IsMatch(state) {
		_, _ = buf.WriteString(fmt.Sprintf("%d [label=\"%d (%d)\"]\n",
			state, state, d.Distance(state).Distance()))
		_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n",
			state))
	}

	var nexts []int
	for b := 0; b < 256; {
		next := d.Accept(state, byte(b))
		hi := b
		for hi+1 < 256 && d.Accept(state, byte(hi+1)) == next {
			hi++
		}
		if uint32(next) != SinkState && next != state {
			_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%s\"]\n",
				state, next, dotByteRange(byte(b), byte(hi))))
			nexts = append(nexts, next)
		}
		b = hi + 1
	}
	_, _ = buf.WriteString("\n\n")

	_, err := bw.Write(buf.Bytes())
	if err != nil {
		return err
	}

	for _, next := range nexts {
		err = exportDFAStateDot(d, next, bw, seen)
		if err != nil {
			return err
		}
	}
	return nil
}

func dotByteRange(lo, hi byte) string {
	if lo == hi {
		return dotByte(lo)
	}
	return dotByte(lo) + "-" + dotByte(hi)
}

func dotByte(b byte) string {
	if b > 0x20 && b < 0x7f && b != '"' && b != '\\' {
		return fmt.Sprintf("%c", b)
	}
	return fmt.Sprintf("0x%02x", b)
}
