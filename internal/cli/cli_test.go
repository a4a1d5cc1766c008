// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/intel/fasthuff"
	"github.com/intel/fasthuff/compress/hc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var (
	compress = Program{
		Name: "compress", In: "original_file", Out: "compressed_file",
		Run: fasthuff.CompressFile,
	}
	uncompress = Program{
		Name: "uncompress", In: "compressed_file", Out: "uncompressed_file",
		Run: fasthuff.DecompressFile,
	}
)

func TestArgs(t *testing.T) {
	in, out, err := Args([]string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, "a", in)
	require.Equal(t, "b", out)

	for _, args := range [][]string{nil, {"a"}, {"a", "b", "c"}} {
		_, _, err := Args(args)
		require.True(t, errors.Is(err, ErrUsage))
	}
}

func TestUsage(t *testing.T) {
	called := false
	p := Program{Name: "compress", In: "in", Out: "out", Run: func(context.Context, string, string) (hc.Stats, error) {
		called = true
		return hc.Stats{}, nil
	}}
	var stderr bytes.Buffer
	require.Equal(t, 1, p.Main(context.Background(), []string{"only-one"}, &stderr))
	require.False(t, called)
	require.Contains(t, stderr.String(), "Correct form: compress <in> <out>")
}

func TestPrograms(t *testing.T) {
	t.Setenv("FASTHUFF_DEBUG", "")
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	packed := filepath.Join(dir, "packed")
	back := filepath.Join(dir, "back")
	require.NoError(t, os.WriteFile(plain, []byte("abb"), 0o644))

	var stderr bytes.Buffer
	ctx := context.Background()
	require.Equal(t, 0, compress.Main(ctx, []string{plain, packed}, &stderr))
	require.Equal(t, 0, uncompress.Main(ctx, []string{packed, back}, &stderr))
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	require.Equal(t, "abb", string(got))
	require.Empty(t, stderr.String())
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	status := uncompress.Main(context.Background(), []string{filepath.Join(dir, "missing"), filepath.Join(dir, "out")}, &stderr)
	require.Equal(t, 1, status)
	require.Contains(t, stderr.String(), "uncompress: [ERROR]")
}
