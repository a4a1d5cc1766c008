// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream provides sequential bit, byte and 32-bit integer access
// over byte streams. Bits are packed most significant first within each
// byte and integers are little-endian.
//
// Every read and write reports its error, and the first failure also
// latches the stream: Good turns false and later calls return the same
// error.
package bitstream

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

var errNotSeekable = errors.New("bitstream: input cannot be rewound")

// Input is a bit source.
type Input struct {
	src  io.Reader
	seek io.Seeker
	buf  *bufio.Reader
	r    *bitio.Reader
	size int64
	err  error
}

// NewInput returns an Input over rs positioned at its start.
func NewInput(rs io.ReadSeeker) (*Input, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, errors.Wrap(err, "bitstream: measure input")
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "bitstream: rewind input")
	}
	in := NewReader(rs)
	in.seek = rs
	in.size = size
	return in, nil
}

// NewReader returns a forward-only Input over r. Its Size is -1 and it
// cannot be Reset.
func NewReader(r io.Reader) *Input {
	buf := bufio.NewReader(r)
	return &Input{
		src:  r,
		buf:  buf,
		r:    bitio.NewReader(buf),
		size: -1,
	}
}

func (in *Input) fail(err error) error {
	if in.err == nil {
		in.err = err
	}
	return in.err
}

// ReadBool reads one bit.
func (in *Input) ReadBool() (bool, error) {
	if in.err != nil {
		return false, in.err
	}
	b, err := in.r.ReadBool()
	if err != nil {
		return false, in.fail(err)
	}
	return b, nil
}

// ReadByte reads eight bits.
func (in *Input) ReadByte() (byte, error) {
	if in.err != nil {
		return 0, in.err
	}
	b, err := in.r.ReadByte()
	if err != nil {
		return 0, in.fail(err)
	}
	return b, nil
}

// ReadUint32 reads a little-endian 32-bit integer. A stream that ends
// inside the integer yields io.ErrUnexpectedEOF.
func (in *Input) ReadUint32() (uint32, error) {
	var p [4]byte
	for i := range p {
		b, err := in.ReadByte()
		if err == io.EOF && i > 0 {
			in.err = io.ErrUnexpectedEOF
			return 0, in.err
		} else if err != nil {
			return 0, err
		}
		p[i] = b
	}
	return binary.LittleEndian.Uint32(p[:]), nil
}

// Good reports whether no read has failed or hit the end of the input.
func (in *Input) Good() bool { return in.err == nil }

// Err returns the error that latched the stream, or nil when it is still
// good or simply reached its end.
func (in *Input) Err() error {
	if in.err == io.EOF {
		return nil
	}
	return in.err
}

// Size returns the total size of the input in bytes.
func (in *Input) Size() int64 { return in.size }

// Reset rewinds the input to its start and clears its status.
func (in *Input) Reset() error {
	if in.seek == nil {
		return errNotSeekable
	}
	if _, err := in.seek.Seek(0, io.SeekStart); err != nil {
		return in.fail(errors.Wrap(err, "bitstream: rewind input"))
	}
	in.buf.Reset(in.src)
	in.r = bitio.NewReader(in.buf)
	in.err = nil
	return nil
}

// Output is a bit sink. Close must be called to write out the final
// partial byte.
type Output struct {
	cw  countWriter
	buf *bufio.Writer
	w   *bitio.Writer
	err error
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// NewOutput returns an Output writing to w.
func NewOutput(w io.Writer) *Output {
	out := &Output{}
	out.cw.w = w
	out.buf = bufio.NewWriter(&out.cw)
	out.w = bitio.NewWriter(out.buf)
	return out
}

func (out *Output) fail(err error) error {
	if out.err == nil {
		out.err = err
	}
	return out.err
}

// WriteBool writes one bit.
func (out *Output) WriteBool(b bool) error {
	if out.err != nil {
		return out.err
	}
	if err := out.w.WriteBool(b); err != nil {
		return out.fail(err)
	}
	return nil
}

// WriteByte writes eight bits.
func (out *Output) WriteByte(b byte) error {
	if out.err != nil {
		return out.err
	}
	if err := out.w.WriteByte(b); err != nil {
		return out.fail(err)
	}
	return nil
}

// WriteUint32 writes v as a little-endian 32-bit integer.
func (out *Output) WriteUint32(v uint32) error {
	var p [4]byte
	binary.LittleEndian.PutUint32(p[:], v)
	for _, b := range p {
		if err := out.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}

// Good reports whether every write so far has succeeded.
func (out *Output) Good() bool { return out.err == nil }

// Err returns the first write error.
func (out *Output) Err() error { return out.err }

// Written returns the number of bytes handed to the underlying writer.
func (out *Output) Written() int64 { return out.cw.n }

// Close pads the last byte with zero bits and flushes everything to the
// underlying writer, which is left open.
func (out *Output) Close() error {
	if out.err != nil {
		return out.err
	}
	if err := out.w.Close(); err != nil {
		return out.fail(err)
	}
	if err := out.buf.Flush(); err != nil {
		return out.fail(err)
	}
	return nil
}
