// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

// The Burrows-Wheeler Transform implementation here is based on the Suffix
// Array by Induced Sorting (SA-IS) methodology by Nong, Zhang, and Chan.
//
// bzip2's BWT sorts the m cyclic rotations of a block, while a suffix array
// sorts suffixes. To bridge the two, the block is written out twice and a
// unique minimal sentinel is appended. The first m symbols of any suffix
// starting at i < m are exactly rotation i, so those suffixes appear in
// rotation order. Suffixes starting at i >= m (the second copy and the
// sentinel) are skipped when reading the result back.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	https://github.com/cscott/compressjs/blob/master/lib/BWT.js
//	https://ge-nong.googlecode.com/files/Two%20Efficient%20Algorithms%20for%20Linear%20Time%20Suffix%20Array%20Construction.pdf

import "github.com/go-bzip/bz2enc/bzip2/internal/sais"

// encodeBWT performs an in-place Burrows-Wheeler Transform of buf, returning
// the primary index (the rank, among sorted rotations, of the rotation that
// starts at buf[0]). It reports -1 for an empty block.
func encodeBWT(buf []byte) (ptr int) {
	m := len(buf)
	if m == 0 {
		return -1
	}

	// Shift real bytes into 1..256 so that a sentinel of value 0 is
	// guaranteed to be both unique and strictly minimal.
	text := make([]int32, 2*m+1)
	for i, b := range buf {
		text[i] = int32(b) + 1
		text[m+i] = int32(b) + 1
	}
	text[2*m] = 0

	sa := make([]int32, 2*m+1)
	sais.ComputeSA(text, sa, 257)

	// Only suffixes starting in the first copy stand for rotations.
	out := make([]byte, m)
	j := 0
	for _, p := range sa {
		if int(p) >= m {
			continue
		}
		if p == 0 {
			out[j] = buf[m-1]
			ptr = j
		} else {
			out[j] = buf[p-1]
		}
		j++
	}
	copy(buf, out)
	return ptr
}

// decodeBWT inverts encodeBWT in place; it is only exercised by this
// package's own tests, since decoding bzip2 streams is out of scope.
func decodeBWT(buf []byte, ptr int) {
	if len(buf) == 0 {
		return
	}

	var c [256]int
	for _, v := range buf {
		c[v]++
	}

	var sum int
	for i, v := range c {
		sum += v
		c[i] = sum - v
	}

	tt := make([]int, len(buf))
	for i := range buf {
		b := buf[i]
		tt[c[b]] = i
		c[b]++
	}

	buf2 := make([]byte, len(buf))
	tPos := tt[ptr]
	for i := range tt {
		buf2[i] = buf[tPos]
		tPos = tt[tPos]
	}
	copy(buf, buf2)
}
