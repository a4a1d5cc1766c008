// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestOutputBitOrder(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)
	for _, b := range []bool{true, false, true} {
		require.NoError(t, out.WriteBool(b))
	}
	require.NoError(t, out.Close())
	// msb first, zero padded
	require.Equal(t, []byte{0xa0}, buf.Bytes())
	require.Equal(t, int64(1), out.Written())
}

func TestOutputMixed(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)
	require.NoError(t, out.WriteByte(0x02))
	require.NoError(t, out.WriteUint32(0x01020304))
	require.NoError(t, out.WriteBool(true))
	require.NoError(t, out.Close())
	require.Equal(t, []byte{0x02, 0x04, 0x03, 0x02, 0x01, 0x80}, buf.Bytes())
	require.True(t, out.Good())
}

func TestInputReadBack(t *testing.T) {
	in, err := NewInput(bytes.NewReader([]byte{0x02, 0x04, 0x03, 0x02, 0x01, 0x80}))
	require.NoError(t, err)
	require.Equal(t, int64(6), in.Size())

	b, err := in.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x02), b)
	v, err := in.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v)
	bit, err := in.ReadBool()
	require.NoError(t, err)
	require.True(t, bit)
	for rep := 0; rep < 7; rep++ {
		bit, err = in.ReadBool()
		require.NoError(t, err)
		require.False(t, bit)
	}
	require.True(t, in.Good())

	_, err = in.ReadBool()
	require.Equal(t, io.EOF, err)
	require.False(t, in.Good())
	require.NoError(t, in.Err())

	require.NoError(t, in.Reset())
	require.True(t, in.Good())
	b, err = in.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x02), b)
}

func TestInputShortUint32(t *testing.T) {
	in := NewReader(bytes.NewReader([]byte{1, 2}))
	require.Equal(t, int64(-1), in.Size())
	_, err := in.ReadUint32()
	require.Equal(t, io.ErrUnexpectedEOF, err)
	require.Equal(t, io.ErrUnexpectedEOF, in.Err())
	require.Error(t, in.Reset())
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestOutputLatchesError(t *testing.T) {
	boom := errors.New("disk full")
	out := NewOutput(failWriter{boom})
	require.NoError(t, out.WriteByte(1))
	err := out.Close()
	require.True(t, errors.Is(err, boom))
	require.False(t, out.Good())
	require.True(t, errors.Is(out.WriteBool(true), boom))
}
