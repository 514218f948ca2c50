// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

import "github.com/go-bzip/bz2enc/internal/prefix"

const (
	initLenHigh = 15
	initLenLow  = 0
)

// huffmanTables holds the canonical Huffman tables and per-group selectors
// chosen for one block's coded MTF/RLE2 symbol stream.
type huffmanTables struct {
	alphaSize int
	numTables int
	selectors []uint8 // one per groupSize-symbol segment, in stream order
	tables    []prefix.PrefixCodes
	encoders  []prefix.Encoder
}

// numHuffmanTables returns the number of Huffman tables bzip2 splits a
// coded symbol stream of the given length into. The thresholds are the
// reference encoder's fixed heuristic, not tuned per input.
func numHuffmanTables(numSyms int) int {
	switch {
	case numSyms < 200:
		return minNumTrees
	case numSyms < 600:
		return minNumTrees + 1
	case numSyms < 1200:
		return minNumTrees + 2
	case numSyms < 2400:
		return minNumTrees + 3
	default:
		return maxNumTrees
	}
}

// selectTables partitions syms (values in 0..alphaSize, the coded
// MTF/RLE2 stream for one block) into a fixed number of canonical Huffman
// tables and assigns each groupSize-symbol segment the table that encodes
// it most cheaply, refining the assignment over numRefinements passes.
func selectTables(syms []uint16, alphaSize int) *huffmanTables {
	numSyms := len(syms)
	numTables := numHuffmanTables(numSyms)

	freqs := make([]uint32, alphaSize)
	for _, s := range syms {
		freqs[s]++
	}

	lens := make([][]uint8, numTables)
	for t := range lens {
		lens[t] = make([]uint8, alphaSize)
	}
	initialSplit(freqs, lens, numTables)

	numGroups := (numSyms + groupSize - 1) / groupSize
	selectors := make([]uint8, numGroups)
	tableFreqs := make([][]uint32, numTables)
	for t := range tableFreqs {
		tableFreqs[t] = make([]uint32, alphaSize)
	}

	for it := 0; it < numRefinements; it++ {
		lastIt := it == numRefinements-1
		for t := range tableFreqs {
			for s := range tableFreqs[t] {
				tableFreqs[t][s] = 0
			}
		}

		for g := 0; g < numGroups; g++ {
			lo := g * groupSize
			hi := lo + groupSize
			if hi > numSyms {
				hi = numSyms
			}
			group := syms[lo:hi]

			best, bestCost := 0, -1
			for t := 0; t < numTables; t++ {
				cost := 0
				for _, s := range group {
					cost += int(lens[t][s])
				}
				if bestCost < 0 || cost < bestCost {
					best, bestCost = t, cost
				}
			}
			for _, s := range group {
				tableFreqs[best][s]++
			}
			if lastIt {
				selectors[g] = uint8(best)
			}
		}

		for t := 0; t < numTables; t++ {
			lens[t] = buildLengths(tableFreqs[t])
		}
	}

	tables := make([]prefix.PrefixCodes, numTables)
	encoders := make([]prefix.Encoder, numTables)
	for t := 0; t < numTables; t++ {
		codes := make(prefix.PrefixCodes, alphaSize)
		for s := 0; s < alphaSize; s++ {
			codes[s] = prefix.PrefixCode{Sym: uint32(s), Len: uint32(lens[t][s])}
		}
		if err := prefix.GeneratePrefixes(codes); err != nil {
			// lens came from buildLengths, which always yields a complete
			// canonical-length assignment; a failure here means a bug in
			// the refinement loop above, not bad input.
			panic(err)
		}
		tables[t] = codes
		encoders[t].Init(codes)
	}

	return &huffmanTables{
		alphaSize: alphaSize,
		numTables: numTables,
		selectors: selectors,
		tables:    tables,
		encoders:  encoders,
	}
}

// initialSplit seeds lens with a proportional-frequency partition of the
// alphabet across numTables tables: symbols in a table's assigned range get
// initLenHigh, everything else initLenLow. An odd interior table backtracks
// by one symbol to counter the average greediness of the forward scan.
func initialSplit(freqs []uint32, lens [][]uint8, numTables int) {
	alphaSize := len(freqs)
	var total uint32
	for _, f := range freqs {
		total += f
	}

	freqRemaining := total
	symLeft := 0
	for curTable := 0; curTable < numTables; curTable++ {
		tablesRemaining := uint32(numTables - curTable)
		freqTarget := freqRemaining / tablesRemaining

		var freqAcc uint32
		symRight := symLeft
		for symRight < alphaSize {
			freqAcc += freqs[symRight]
			if freqAcc >= freqTarget || symRight+1 == alphaSize {
				break
			}
			symRight++
		}

		if symRight > symLeft && curTable != 0 && curTable != numTables-1 && curTable%2 == 1 {
			freqAcc -= freqs[symRight]
			symRight--
		}

		for s := 0; s < alphaSize; s++ {
			if s >= symLeft && s <= symRight {
				lens[curTable][s] = initLenHigh
			} else {
				lens[curTable][s] = initLenLow
			}
		}

		symLeft = symRight + 1
		freqRemaining -= freqAcc
	}
}

// buildLengths constructs a length-limited canonical code-length assignment
// from freqs. Every symbol's count is bumped by one so that zero-frequency
// symbols still get a (long but valid) code, matching the reference
// encoder's use of a non-zero floor when building its frequency queue.
func buildLengths(freqs []uint32) []uint8 {
	alphaSize := len(freqs)
	codes := make(prefix.PrefixCodes, alphaSize)
	for s := 0; s < alphaSize; s++ {
		codes[s] = prefix.PrefixCode{Sym: uint32(s), Cnt: freqs[s] + 1}
	}
	codes.SortByCount()
	if err := prefix.GenerateLengths(codes, maxCodeLen); err != nil {
		panic(err)
	}
	lens := make([]uint8, alphaSize)
	for _, c := range codes {
		lens[c.Sym] = uint8(c.Len)
	}
	return lens
}

// writeSelectors MTF-encodes h.selectors and writes them as a sequence of
// unary codes: the table's position in the move-to-front list as that many
// one-bits followed by a terminating zero-bit.
func (h *huffmanTables) writeSelectors(bw *bitWriter) {
	mtf := make([]uint8, h.numTables)
	for i := range mtf {
		mtf[i] = uint8(i)
	}
	for _, sel := range h.selectors {
		pos := 0
		for mtf[pos] != sel {
			pos++
		}
		for i := 0; i < pos; i++ {
			bw.WriteBits(1, 1)
		}
		bw.WriteBits(0, 1)
		copy(mtf[1:pos+1], mtf[:pos])
		mtf[0] = sel
	}
}

// writeTables emits each table's per-symbol code lengths as a 5-bit
// starting length followed by a run of continuation/direction bit pairs per
// symbol: "10" increments the running length, "11" decrements it, and a
// single "0" bit commits the current length to that symbol before moving
// to the next.
func (h *huffmanTables) writeTables(bw *bitWriter) {
	for _, codes := range h.tables {
		lens := make([]uint8, h.alphaSize)
		for _, c := range codes {
			lens[c.Sym] = uint8(c.Len)
		}

		acc := lens[0]
		bw.WriteBits(uint32(acc), 5)
		for _, l := range lens {
			for acc != l {
				if acc < l {
					bw.WriteBits(2, 2)
					acc++
				} else {
					bw.WriteBits(3, 2)
					acc--
				}
			}
			bw.WriteBits(0, 1)
		}
	}
}

// writeSymbols emits syms as coded bits, switching Huffman tables every
// groupSize symbols according to h.selectors.
func (h *huffmanTables) writeSymbols(bw *bitWriter, syms []uint16) {
	for i, s := range syms {
		sel := h.selectors[i/groupSize]
		val, length := h.encoders[sel].Code(uint32(s))
		bw.WriteBits(val, uint(length))
	}
}
