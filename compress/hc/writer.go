// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hc

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Writer accumulates everything written to it and compresses it to the
// underlying writer on Close, since the frequency table must be complete
// before the first byte is coded.
type Writer struct {
	w      io.Writer
	buffer bytes.Buffer
	stats  Stats
	err    error
	closed bool
}

// NewWriter returns a Writer compressing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write buffers p.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errors.New("hc: write to closed Writer")
	}
	if int64(w.buffer.Len())+int64(len(p)) > MaxCount {
		w.err = errors.WithStack(ErrInputTooLarge)
		return 0, w.err
	}
	return w.buffer.Write(p)
}

// Close compresses the buffered data. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if w.err != nil || w.closed {
		return w.err
	}
	w.closed = true
	w.stats, w.err = Encode(w.w, bytes.NewReader(w.buffer.Bytes()))
	w.buffer.Reset()
	return w.err
}

// Stats returns the figures of the last Close.
func (w *Writer) Stats() Stats { return w.stats }

// Reset discards buffered data and makes w write to dst.
func (w *Writer) Reset(dst io.Writer) {
	w.w = dst
	w.buffer.Reset()
	w.stats = Stats{}
	w.err = nil
	w.closed = false
}
