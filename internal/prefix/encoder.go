// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

// Encoder is a dense, symbol-indexed view over a set of PrefixCodes, built
// once per Huffman table so that encoding a symbol is an array lookup rather
// than a scan.
type Encoder struct {
	codes []PrefixCode
}

// Init prepares e to encode the alphabet described by codes. codes must be
// sorted by symbol with Sym values forming a dense range starting at 0 (as
// produced by GeneratePrefixes over a fixed-size bzip2 alphabet).
func (e *Encoder) Init(codes PrefixCodes) {
	e.codes = make([]PrefixCode, len(codes))
	copy(e.codes, codes)
}

// Code returns the (value, bit-length) pair assigned to sym.
func (e *Encoder) Code(sym uint32) (val uint32, len uint32) {
	c := e.codes[sym]
	return c.Val, c.Len
}
