// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewTo(&buf, "x: ", false)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Errorf("failed %s", "here")
	require.Equal(t, "x: [INFO] shown 2\nx: [ERROR] failed here\n", buf.String())

	buf.Reset()
	NewTo(&buf, "", true).Debugf("visible")
	require.Equal(t, "[DEBUG] visible\n", buf.String())
}
