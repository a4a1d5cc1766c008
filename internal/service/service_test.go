// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package service

import (
	"io"
	"testing"

	"github.com/intel/fasthuff/compress/hc"
	"github.com/intel/fasthuff/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newTestService(entries int) *Service {
	return New(entries, 1<<20, logger.NewTo(io.Discard, "", true))
}

func TestCompressDecompress(t *testing.T) {
	s := newTestService(16)
	body := []byte("peter piper picked a peck of pickled peppers")
	c, err := s.Compress(body)
	require.NoError(t, err)
	require.Equal(t, int64(len(body)), c.Stats.OriginalSize)
	require.Equal(t, int64(len(c.Data)), c.Stats.CompressedSize)

	d, err := s.Decompress(c.Data)
	require.NoError(t, err)
	require.Equal(t, body, d.Data)
}

func TestCacheHit(t *testing.T) {
	s := newTestService(16)
	body := []byte("cache me if you can")
	first, err := s.Compress(body)
	require.NoError(t, err)
	second, err := s.Compress(append([]byte(nil), body...))
	require.NoError(t, err)
	require.Same(t, first, second)

	// same bytes, different operation
	_, err = s.Decompress(body)
	require.Error(t, err)
}

func TestNoCache(t *testing.T) {
	s := newTestService(0)
	require.Nil(t, s.cache)
	a, err := s.Compress([]byte("abc"))
	require.NoError(t, err)
	b, err := s.Compress([]byte("abc"))
	require.NoError(t, err)
	require.NotSame(t, a, b)
	require.Equal(t, a.Data, b.Data)
}

func TestDecompressCorrupt(t *testing.T) {
	s := newTestService(16)
	c, err := s.Compress([]byte("the rain in spain"))
	require.NoError(t, err)
	_, err = s.Decompress(c.Data[:len(c.Data)-1])
	require.True(t, errors.Is(err, hc.ErrTruncatedStream))
}

func TestAnalyze(t *testing.T) {
	s := newTestService(0)
	rep, err := s.Analyze([]byte("abb"))
	require.NoError(t, err)
	require.Equal(t, 2, rep.Symbols)
	require.Equal(t, int64(16), rep.CompressedSize)
}

func TestKeyOf(t *testing.T) {
	a := keyOf(opCompress, []byte("x"))
	require.Equal(t, a, keyOf(opCompress, []byte("x")))
	require.NotEqual(t, a, keyOf(opDecompress, []byte("x")))
	require.NotEqual(t, hashKey(a), hashKey(keyOf(opDecompress, []byte("x"))))
}

func TestDecompressOutputLimit(t *testing.T) {
	s := newTestService(16)
	// one symbol codes in zero bits, so the header alone announces 256 MiB
	bomb := []byte{1, 'a', 0, 0, 0, 0x10, 0, 0, 0, 0x10}
	_, err := s.Decompress(bomb)
	require.True(t, errors.Is(err, ErrOutputTooLarge), "got %v", err)

	at := []byte{1, 'a', 0, 0, 0x10, 0, 0, 0, 0x10, 0}
	r, err := s.Decompress(at)
	require.NoError(t, err)
	require.Len(t, r.Data, 1<<20)
}

func TestCacheCollision(t *testing.T) {
	s := newTestService(16)
	a := []byte("first body")
	b := []byte("other body")
	stale, err := s.Compress(b)
	require.NoError(t, err)
	// b's result stored under a's key, as a colliding hash would
	s.cache.add(keyOf(opCompress, a), b, stale)

	got, err := s.Compress(a)
	require.NoError(t, err)
	require.NotSame(t, stale, got)
	d, err := s.Decompress(got.Data)
	require.NoError(t, err)
	require.Equal(t, a, d.Data)
}
