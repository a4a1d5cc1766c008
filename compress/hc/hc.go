// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package hc implements a single-stream Huffman container: a table of byte
// frequencies followed by the bytes coded with the Huffman tree built from
// that table.
//
// The frequency table is computed over the whole input before coding
// starts, so Encode needs an input it can read twice.
package hc

import (
	"io"

	"github.com/intel/fasthuff/compress/hc/internal/bitstream"
	"github.com/intel/fasthuff/compress/hc/internal/huffman"
	"github.com/pkg/errors"
)

// Stats describes one compression or decompression.
type Stats struct {
	OriginalSize   int64 `json:"original_size"`   // bytes of plain data
	CompressedSize int64 `json:"compressed_size"` // bytes of container data
	Symbols        int   `json:"symbols"`         // distinct byte values
}

// Ratio returns the compressed size as a fraction of the original size.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSaved returns how many bytes compression saved. It is negative when
// the container is larger than the input.
func (s Stats) SpaceSaved() int64 { return s.OriginalSize - s.CompressedSize }

// Encode compresses src into dst. An empty src produces no output at all.
func Encode(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	in, err := bitstream.NewInput(src)
	if err != nil {
		return Stats{}, ioError("open input", err)
	}
	if in.Size() == 0 {
		return Stats{}, nil
	}
	if in.Size() > MaxCount {
		return Stats{}, errors.Wrapf(ErrInputTooLarge, "%d bytes", in.Size())
	}

	// first pass: frequencies
	var h Header
	freqs := h.freqs()
	for {
		b, err := in.ReadByte()
		if err != nil {
			break
		}
		freqs[b]++
	}
	if err := in.Err(); err != nil {
		return Stats{}, ioError("read input", err)
	}
	total := freqs.Total()
	if total == 0 {
		return Stats{}, nil
	}
	if total > MaxCount {
		return Stats{}, errors.Wrapf(ErrInputTooLarge, "%d bytes", total)
	}
	h.Total = uint32(total)

	out := bitstream.NewOutput(dst)
	if err := h.writeTo(out); err != nil {
		return Stats{}, err
	}

	// second pass: body
	if err := in.Reset(); err != nil {
		return Stats{}, ioError("rewind input", err)
	}
	tree := huffman.Build(freqs)
	var n uint64
	for {
		b, err := in.ReadByte()
		if err != nil {
			break
		}
		if err := tree.Encode(b, out); err != nil {
			if errors.Is(err, huffman.ErrUnknownSymbol) {
				return Stats{}, err
			}
			return Stats{}, ioError("write body", err)
		}
		n++
	}
	if err := in.Err(); err != nil {
		return Stats{}, ioError("read input", err)
	}
	if n != total {
		return Stats{}, ioError("read input", errInputChanged)
	}
	if err := out.Close(); err != nil {
		return Stats{}, ioError("write body", err)
	}
	return Stats{
		OriginalSize:   int64(total),
		CompressedSize: out.Written(),
		Symbols:        tree.Len(),
	}, nil
}

// Decode decompresses src into dst. An empty src produces no output.
func Decode(dst io.Writer, src io.Reader) (Stats, error) {
	r := NewReader(src)
	written, err := io.CopyBuffer(outputWriter{dst}, r, make([]byte, 32*1024))
	if err != nil {
		return Stats{}, err
	}
	s := Stats{OriginalSize: written}
	if r.hdr != nil && r.hdr.Total > 0 {
		s.Symbols = r.tree.Len()
		s.CompressedSize = r.hdr.Size() + int64((payloadBits(r.tree, r.hdr.freqs())+7)/8)
	}
	return s, nil
}

// outputWriter tells write failures apart from decode failures in
// io.CopyBuffer. It hides any ReadFrom of the destination.
type outputWriter struct{ w io.Writer }

func (o outputWriter) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	if err != nil {
		return n, ioError("write output", err)
	}
	return n, nil
}

func payloadBits(tree *huffman.Tree, freqs *huffman.Frequencies) uint64 {
	var bits uint64
	for sym, f := range freqs {
		if f != 0 {
			bits += uint64(f) * uint64(tree.CodeLen(byte(sym)))
		}
	}
	return bits
}
