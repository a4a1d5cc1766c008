// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hc

import (
	"io"
	"math"

	"github.com/intel/fasthuff/compress/hc/internal/bitstream"
	"github.com/intel/fasthuff/compress/hc/internal/huffman"
	"github.com/pkg/errors"
)

// MaxCount is the largest frequency or total the header can carry.
const MaxCount = math.MaxInt32

// Header is the frequency table that precedes the coded body.
//
//	byte   distinct symbols, 0 meaning 256
//	{ byte symbol; int32 count } per symbol, ascending
//	int32  total symbols
//
// Integers are little-endian.
type Header struct {
	Freqs [256]uint32
	Total uint32
}

func (h *Header) freqs() *huffman.Frequencies { return (*huffman.Frequencies)(&h.Freqs) }

// Distinct returns the number of symbols present.
func (h *Header) Distinct() int { return h.freqs().Distinct() }

// Size returns the encoded size of the header in bytes.
func (h *Header) Size() int64 { return 1 + 5*int64(h.Distinct()) + 4 }

func (h *Header) writeTo(out *bitstream.Output) error {
	// 256 wraps to 0; an empty input never gets a header
	out.WriteByte(byte(h.Distinct()))
	for sym, f := range h.Freqs {
		if f == 0 {
			continue
		}
		out.WriteByte(byte(sym))
		out.WriteUint32(f)
	}
	out.WriteUint32(h.Total)
	if err := out.Err(); err != nil {
		return ioError("write header", err)
	}
	return nil
}

func headerReadError(what string, err error) error {
	if unexpectedEOF(err) {
		return errors.Wrapf(ErrCorruptHeader, "%s: unexpected end of input", what)
	}
	return ioError("read header", err)
}

// readHeader reads a header from in. It returns io.EOF if in is empty.
func readHeader(in *bitstream.Input) (*Header, error) {
	c, err := in.ReadByte()
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, ioError("read header", err)
	}
	n := int(c)
	if n == 0 {
		n = 256
	}

	h := &Header{}
	var sum uint64
	for i := 0; i < n; i++ {
		sym, err := in.ReadByte()
		if err != nil {
			return nil, headerReadError("symbol", err)
		}
		f, err := in.ReadUint32()
		if err != nil {
			return nil, headerReadError("frequency", err)
		}
		switch {
		case f == 0 || f > MaxCount:
			return nil, errors.Wrapf(ErrCorruptHeader, "symbol %#02x: count %d", sym, f)
		case h.Freqs[sym] != 0:
			return nil, errors.Wrapf(ErrCorruptHeader, "symbol %#02x listed twice", sym)
		}
		h.Freqs[sym] = f
		sum += uint64(f)
	}
	h.Total, err = in.ReadUint32()
	if err != nil {
		return nil, headerReadError("total", err)
	}
	if uint64(h.Total) != sum {
		return nil, errors.Wrapf(ErrCorruptHeader, "total %d, counts add up to %d", h.Total, sum)
	}
	return h, nil
}
