// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hc

import (
	"io"

	"github.com/intel/fasthuff/compress/hc/internal/bitstream"
	"github.com/intel/fasthuff/compress/hc/internal/huffman"
	"github.com/pkg/errors"
)

// Reader decompresses a container as it is read.
type Reader struct {
	in     *bitstream.Input
	hdr    *Header
	tree   *huffman.Tree
	remain uint32
	err    error
}

// NewReader returns a Reader decompressing from r. The header is read on
// first use.
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bitstream.NewReader(r)}
}

// Reset discards the state of z and makes it read from r.
func (z *Reader) Reset(r io.Reader) {
	*z = Reader{in: bitstream.NewReader(r)}
}

func (z *Reader) init() error {
	if z.hdr != nil || z.err != nil {
		return z.err
	}
	h, err := readHeader(z.in)
	if err == io.EOF {
		h = &Header{}
	} else if err != nil {
		z.err = err
		return err
	}
	z.hdr = h
	z.tree = huffman.Build(h.freqs())
	z.remain = h.Total
	return nil
}

// Header returns the frequency table of the stream. An empty stream has an
// all-zero table.
func (z *Reader) Header() (*Header, error) {
	if err := z.init(); err != nil {
		return nil, err
	}
	return z.hdr, nil
}

// Read decodes up to len(p) bytes into p.
func (z *Reader) Read(p []byte) (n int, err error) {
	if err := z.init(); err != nil {
		return 0, err
	}
	for n < len(p) && z.remain > 0 {
		sym, err := z.tree.Decode(z.in)
		if err != nil {
			z.err = z.decodeError(err)
			return n, z.err
		}
		p[n] = sym
		n++
		z.remain--
	}
	if z.remain == 0 {
		return n, io.EOF
	}
	return n, nil
}

func (z *Reader) decodeError(err error) error {
	if errors.Is(err, huffman.ErrTruncated) {
		done := z.hdr.Total - z.remain
		return errors.Wrapf(ErrTruncatedStream, "after %d of %d symbols", done, z.hdr.Total)
	}
	return ioError("read body", err)
}

// Close releases nothing and exists for io.ReadCloser.
func (z *Reader) Close() error { return nil }
