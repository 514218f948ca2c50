// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package benchmark holds the shared test-data loading helper used by this
// module's benchmarks and by cmd/bzbench to compare bz2enc against other
// compressors on the same inputs.
package benchmark

import "io"
import "io/ioutil"

// LoadFile loads the first n bytes of the input file. If the file is smaller
// than n, then it will replicate the input until it matches n. Each copy will
// be XORed by some mask to avoid favoring algorithms with large LZ77 windows.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(input) >= n {
		return input[:n], nil
	}
	if len(input) == 0 {
		return nil, io.ErrNoProgress
	}

	var rb byte // Chunk mask
	output := make([]byte, n)
	buf := output
	for {
		for _, c := range input {
			if len(buf) == 0 {
				return output, nil
			}
			buf[0] = c ^ rb
			buf = buf[1:]
		}
		rb++
	}
}
