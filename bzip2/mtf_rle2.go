// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

// moveToFront drives bzip2's combined MTF+RLE2 stage (C6): it walks the BWT
// column through a self-organizing list of the byte values present in the
// block and, instead of handing back a separate (idxs, runs) pair for a
// caller to reassemble, appends the coded symbols directly to the []uint16
// stream codeSymbols (in block.go) builds — RUNA/RUNB digits in place of
// each maximal run of rank-0 hits, mtf-rank+1 everywhere else. There is no
// decode side: this package never reconstructs the BWT column it consumes.
type moveToFront struct {
	dict [256]uint8
	n    int
}

// init seeds the move-to-front list. dict must list every byte value used
// by a following encode call, ascending; a copy is kept so the caller's
// slice may be reused or mutated afterward.
func (m *moveToFront) init(dict []uint8) {
	if len(dict) > len(m.dict) {
		panic("bzip2: mtf alphabet too large")
	}
	copy(m.dict[:], dict)
	m.n = len(dict)
}

// encode runs vals through move-to-front and appends the resulting coded
// symbols — RUNA/RUNB run digits and mtf-rank+1 values — to *syms.
func (m *moveToFront) encode(vals []byte, syms *[]uint16) {
	dict := m.dict[:m.n]

	var run uint32
	for _, val := range vals {
		var idx uint8
		for di, dv := range dict {
			if dv == val {
				idx = uint8(di)
				break
			}
		}
		copy(dict[1:], dict[:idx])
		dict[0] = val

		if idx == 0 {
			run++
			continue
		}
		if run > 0 {
			appendRunCode(syms, run)
			run = 0
		}
		*syms = append(*syms, uint16(idx)+1)
	}
	if run > 0 {
		appendRunCode(syms, run)
	}
}

// For the RLE encoding that is applied after MTF, a bijective base-2 numeration
// is used. This is a variable length code, so the length of the input effects
// the value of the output.
//
// To save space, the RLE encoding is stored in a single uint32, where the lower
// 5-bits are used for the bit-length, the upper 27-bits are for the RLE code
// itself. RUNA is represented by a 0; RUNB is represented by a 1. The bits
// are packed in LE order; that is, the least significant bit is in the LSB
// position of the integer. This encoding has a maximum size of ~256MiB.
type runCode uint32

func (v runCode) Encode() (x uint32) {
	var n int
	if v > 0 {
		for rep := v - 1; ; rep = (rep - 2) / 2 {
			if x >>= 1; rep&1 > 0 {
				x |= 0x80000000
			}
			n++
			if rep < 2 {
				break
			}
		}
		if n > 27 {
			return ^uint32(0) // Invalid value to cause problems later
		}
	}
	return (x >> uint(27-n)) | uint32(n)
}

func (v runCode) Decode() (x uint32) {
	repPwr := uint32(1)
	n := int(v & 0x1f)
	v >>= 5
	for i := 0; i < n; i++ {
		x += repPwr << (v & 1)
		repPwr <<= 1
		v >>= 1
	}
	if n > 27 {
		return ^uint32(0) // Invalid value to cause problems later
	}
	return x
}
