// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package fasthuff compresses and decompresses files with a static Huffman
// code. The container format lives in package
// github.com/intel/fasthuff/compress/hc; this package adds the file handling
// used by the compress and uncompress programs.
package fasthuff

import (
	"bufio"
	"context"
	"os"

	"github.com/intel/fasthuff/compress/hc"
	"github.com/pkg/errors"
)

// CompressFile compresses the file in into the file out, replacing out.
// On failure out is removed.
func CompressFile(ctx context.Context, in, out string) (hc.Stats, error) {
	return convert(ctx, in, out, func(dst *bufio.Writer, src *os.File) (hc.Stats, error) {
		return hc.Encode(dst, src)
	})
}

// DecompressFile decompresses the file in into the file out, replacing out.
// On failure out is removed, so a truncated or corrupt input never leaves
// partial output behind.
func DecompressFile(ctx context.Context, in, out string) (hc.Stats, error) {
	return convert(ctx, in, out, func(dst *bufio.Writer, src *os.File) (hc.Stats, error) {
		return hc.Decode(dst, src)
	})
}

func convert(ctx context.Context, in, out string, fn func(*bufio.Writer, *os.File) (hc.Stats, error)) (s hc.Stats, err error) {
	if err := ctx.Err(); err != nil {
		return s, err
	}
	src, err := os.Open(in)
	if err != nil {
		return s, errors.WithStack(&hc.IOError{Op: "open input", Err: err})
	}
	defer src.Close()
	adviseSequential(src)

	dst, err := os.Create(out)
	if err != nil {
		return s, errors.WithStack(&hc.IOError{Op: "create output", Err: err})
	}
	defer func() {
		if err != nil {
			dst.Close()
			os.Remove(out)
		}
	}()

	w := bufio.NewWriterSize(dst, 64*1024)
	s, err = fn(w, src)
	if err != nil {
		return s, errors.Wrapf(err, "%s", in)
	}
	if err = ctx.Err(); err != nil {
		return s, err
	}
	if err = w.Flush(); err != nil {
		return s, errors.WithStack(&hc.IOError{Op: "write output", Err: err})
	}
	if err = dst.Close(); err != nil {
		return s, errors.WithStack(&hc.IOError{Op: "close output", Err: err})
	}
	return s, nil
}
