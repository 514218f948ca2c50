// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

import "errors"

// rleDone is returned by runLengthEncoding.Write once its fixed-capacity
// output buffer cannot hold any more bytes. It signals the block driver to
// start a new block with the unwritten remainder of the input.
var rleDone = errors.New("bzip2: rle1 buffer is full")

// runLengthEncoding implements bzip2's first run-length pass: any run of 4
// or more identical input bytes is collapsed to the byte repeated 4 times
// followed by a single byte holding min(k,259)-4, the count of additional
// repeats beyond the fourth. Runs shorter than 4 pass through verbatim.
//
// The output is accumulated into a caller-supplied, fixed-capacity buffer;
// Write stops and returns rleDone as soon as the next unit of output
// (either a single passthrough byte, or a literal byte paired with its
// run-length byte) would overflow that capacity.
type runLengthEncoding struct {
	buf    []byte
	last   byte
	cnt    int // length of the current run seen so far, saturating at 4
	runPos int // index into buf of the pending run-length byte, or -1
}

// maxRunExtra is the largest value the run-length byte can hold: runs are
// capped at 4+maxRunExtra = 259 total identical bytes per unit.
const maxRunExtra = 255

// Init resets the encoder, directing output at buf[:0] with capacity
// cap(buf).
func (z *runLengthEncoding) Init(buf []byte) {
	z.buf = buf[:0]
	z.last = 0
	z.cnt = 0
	z.runPos = -1
}

// Bytes returns the bytes written so far.
func (z *runLengthEncoding) Bytes() []byte { return z.buf }

func (z *runLengthEncoding) Write(data []byte) (n int, err error) {
	for _, b := range data {
		if z.runPos >= 0 && b == z.last {
			if z.buf[z.runPos] == maxRunExtra {
				// This run is already at its cap; the byte starts a new one.
				z.runPos = -1
				z.cnt = 0
			} else {
				z.buf[z.runPos]++
				n++
				continue
			}
		}

		if z.cnt > 0 && b == z.last {
			z.cnt++
		} else {
			z.cnt = 1
			z.last = b
			z.runPos = -1
		}

		if z.cnt == 4 {
			if len(z.buf)+2 > cap(z.buf) {
				return n, rleDone
			}
			z.buf = append(z.buf, b, 0)
			z.runPos = len(z.buf) - 1
		} else {
			if len(z.buf)+1 > cap(z.buf) {
				return n, rleDone
			}
			z.buf = append(z.buf, b)
		}
		n++
	}
	return n, nil
}
