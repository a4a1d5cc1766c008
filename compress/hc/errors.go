// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package hc

import (
	"io"

	"github.com/intel/fasthuff/compress/hc/internal/huffman"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownSymbol is returned when a byte has no code in the tree,
	// which happens when the input changes between the two encoding passes.
	ErrUnknownSymbol = huffman.ErrUnknownSymbol
	// ErrTruncatedStream is returned when the body ends before every
	// symbol announced by the header has been decoded.
	ErrTruncatedStream = errors.New("hc: truncated stream")
	// ErrCorruptHeader is returned for a header that is cut short or
	// inconsistent with itself.
	ErrCorruptHeader = errors.New("hc: corrupt header")
	// ErrInputTooLarge is returned for inputs whose size does not fit the
	// 32-bit header fields.
	ErrInputTooLarge = errors.New("hc: input too large")

	errInputChanged = errors.New("input changed between passes")
)

// IOError reports a failure of the underlying reader or writer.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return "hc: " + e.Op + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

func ioError(op string, err error) error {
	return errors.WithStack(&IOError{Op: op, Err: err})
}

func unexpectedEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
