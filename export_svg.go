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
	"io"
	"io/ioutil"
	"os"
	"os/exec"
)

// ExportDFASVGFile will invoke ExportDFASVG and send the output to a new
// file at the provided path.
func ExportDFASVGFile(d *DFA, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return ExportDFASVG(d, file)
}

// ExportDFASVG will take the provided DFA and generate an SVG
// representation of it.  This SVG will be streamed to the provided
// writer.  It relies on the GraphViz dot binary being on the path.
func ExportDFASVG(d *DFA, w io.Writer) error {
	pr, pw := io.Pipe()
	go func() {
		defer func() {
			_ = pw.Close()
		}()
		_ = ExportDFADot(d, pw)
	}()
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = pr
	cmd.Stdout = w
	cmd.Stderr = ioutil.Discard
	err := cmd.Run()
	if err != nil {
		return err
	}
	return nil
}
