// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hc

import (
	"io"

	"github.com/intel/fasthuff/compress/hc/internal/huffman"
	"github.com/pkg/errors"
)

// SymbolReport is one row of a Report.
type SymbolReport struct {
	Symbol byte   `json:"symbol"`
	Count  uint32 `json:"count"`
	Bits   uint8  `json:"bits"`
}

// Report predicts the result of compressing an input without coding it.
type Report struct {
	Stats
	HeaderSize  int64          `json:"header_size"`
	PayloadBits uint64         `json:"payload_bits"`
	Codes       []SymbolReport `json:"codes"`
}

type freqWriter struct {
	f *huffman.Frequencies
	n int64
}

func (w *freqWriter) Write(p []byte) (int, error) {
	w.f.Add(p)
	w.n += int64(len(p))
	return len(p), nil
}

// Analyze reads src to its end and reports the frequency table, the optimal
// code length of every symbol and the size Encode would produce.
func Analyze(src io.Reader) (*Report, error) {
	var h Header
	fw := &freqWriter{f: h.freqs()}
	if _, err := io.Copy(fw, src); err != nil {
		return nil, ioError("read input", err)
	}
	rep := &Report{Codes: []SymbolReport{}}
	rep.OriginalSize = fw.n
	if fw.n == 0 {
		return rep, nil
	}
	if fw.n > MaxCount {
		return nil, errors.Wrapf(ErrInputTooLarge, "%d bytes", fw.n)
	}

	lens := huffman.CodeLengths(fw.f)
	rep.Symbols = h.Distinct()
	rep.HeaderSize = h.Size()
	rep.PayloadBits = huffman.Cost(fw.f, &lens)
	rep.CompressedSize = rep.HeaderSize + int64((rep.PayloadBits+7)/8)
	for sym, f := range h.Freqs {
		if f != 0 {
			rep.Codes = append(rep.Codes, SymbolReport{Symbol: byte(sym), Count: f, Bits: lens[sym]})
		}
	}
	return rep, nil
}
