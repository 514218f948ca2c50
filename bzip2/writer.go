// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bzip2

import "io"

// Writer compresses data written to it and writes the bzip2-formatted
// result to an underlying io.Writer. A Writer must be closed to flush the
// final block and trailer.
type Writer struct {
	bw  bitWriter
	rle runLengthEncoding
	buf []byte

	level     int
	blockCRC  crcRegister
	streamCRC uint32
	closed    bool
}

// NewWriter creates a new Writer that writes bzip2-compressed data to w
// at the default compression level.
func NewWriter(w io.Writer) *Writer {
	bz, err := NewWriterLevel(w, defaultLevel)
	if err != nil {
		panic(err) // defaultLevel is always in range
	}
	return bz
}

// NewWriterLevel is like NewWriter but specifies the compression level,
// which must be in the range 1..=9 and sets the block size to
// level*100,000 bytes. Higher levels trade memory and CPU time for a
// better compression ratio.
func NewWriterLevel(w io.Writer, level int) (*Writer, error) {
	if level < minLevel || level > maxLevel {
		return nil, errInvalidLevel
	}

	bz := &Writer{
		level:    level,
		blockCRC: newCRCRegister(),
	}
	bz.buf = make([]byte, blockSizeMultiple*level)
	bz.rle.Init(bz.buf)
	bz.bw.Reset(w)

	bz.bw.WriteBits(uint32(hdrMagic[0]), 8)
	bz.bw.WriteBits(uint32(hdrMagic[1]), 8)
	bz.bw.WriteBits('h', 8)
	bz.bw.WriteBits(uint32('0'+level), 8)
	return bz, bz.bw.err
}

// Write feeds data through bzip2's first run-length pass, flushing and
// encoding a full block whenever the pass's output buffer fills.
func (bz *Writer) Write(data []byte) (n int, err error) {
	if bz.closed {
		return 0, errClosed
	}
	for len(data) > 0 {
		k, werr := bz.rle.Write(data)
		bz.blockCRC.Write(data[:k])
		n += k
		data = data[k:]

		switch werr {
		case nil:
		case rleDone:
			if ferr := bz.flushBlock(); ferr != nil {
				return n, ferr
			}
		default:
			return n, werr
		}
	}
	return n, bz.bw.err
}

// flushBlock encodes the bytes accumulated in bz.rle as one block (if any)
// and resets the run-length pass for the next block.
func (bz *Writer) flushBlock() error {
	if buf := bz.rle.Bytes(); len(buf) > 0 {
		crc := bz.blockCRC.Sum()
		bz.streamCRC = combineStreamCRC(bz.streamCRC, crc)
		encodeBlock(&bz.bw, buf, crc)
	}
	bz.blockCRC = newCRCRegister()
	bz.rle.Init(bz.buf)
	return bz.bw.err
}

// Close flushes any buffered data as a final block and writes the stream
// trailer. It is an error to call Write after Close.
func (bz *Writer) Close() error {
	if bz.closed {
		return nil
	}
	bz.closed = true

	if err := bz.flushBlock(); err != nil {
		return err
	}
	bz.bw.WriteBits(endMagic>>24, magicBits-24)
	bz.bw.WriteBits(endMagic&0xffffff, 24)
	bz.bw.WriteBits(bz.streamCRC, 32)
	return bz.bw.Flush()
}
