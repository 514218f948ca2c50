// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

import (
	"io"
	"strings"
	"testing"
)

func TestRunLengthEncoder(t *testing.T) {
	var vectors = []struct {
		size   int
		input  string
		output string
		done   bool
	}{{
		size:   0,
		input:  "",
		output: "",
	}, {
		size:   6,
		input:  "abc",
		output: "abc",
	}, {
		size:   6,
		input:  "abcccc",
		output: "abccc",
		done:   true,
	}, {
		size:   7,
		input:  "abcccc",
		output: "abcccc\x00",
	}, {
		size:   14,
		input:  "aaaabbbbcccc",
		output: "aaaa\x00bbbb\x00ccc",
		done:   true,
	}, {
		size:   15,
		input:  "aaaabbbbcccc",
		output: "aaaa\x00bbbb\x00cccc\x00",
	}, {
		size:   16,
		input:  strings.Repeat("a", 4),
		output: "aaaa\x00",
	}, {
		// Below the 259-byte cap (4 literal bytes plus a single run-length
		// byte 0..255), the whole run fits in one unit.
		size:   16,
		input:  strings.Repeat("a", 255),
		output: "aaaa\xfb",
	}, {
		size:   16,
		input:  strings.Repeat("a", 256),
		output: "aaaa\xfc",
	}, {
		// Exactly at the cap: the run-length byte saturates at 255 (total
		// 259 identical bytes), matching the reference bzip2 RLE1 bound.
		size:   16,
		input:  strings.Repeat("a", 259),
		output: "aaaa\xff",
	}, {
		size:   16,
		input:  strings.Repeat("a", 260),
		output: "aaaa\xffa",
	}, {
		size:   16,
		input:  strings.Repeat("a", 500),
		output: "aaaa\xffaaaa\xed",
	}, {
		// The literal scenario from the specification: 300 copies of 0x41
		// splits into a capped 259-run followed by a 41-run.
		size:   16,
		input:  strings.Repeat("\x41", 300),
		output: "\x41\x41\x41\x41\xff\x41\x41\x41\x41\x25",
	}, {
		size:   64,
		input:  "aaabbbcccddddddeeefgghiiijkllmmmmmmmmnnoo",
		output: "aaabbbcccdddd\x02eeefgghiiijkllmmmm\x04nnoo",
	}}

	buf := make([]byte, 3)
	for i, v := range vectors {
		rle := new(runLengthEncoding)
		rle.Init(make([]byte, v.size))
		_, err := io.CopyBuffer(rle, strings.NewReader(v.input), buf)
		output := string(rle.Bytes())

		if output != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %q\nwant %q", i, output, v.output)
		}
		if done := err == rleDone; done != v.done {
			t.Errorf("test %d, done mismatch: got %v want %v", i, done, v.done)
		}
	}
}
