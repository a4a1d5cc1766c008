// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Command compress writes a Huffman-compressed copy of a file.
//
//	compress <original_file> <compressed_file>
package main

import (
	"context"
	"os"

	"github.com/intel/fasthuff"
	"github.com/intel/fasthuff/internal/cli"
)

func main() {
	p := cli.Program{
		Name: "compress",
		In:   "original_file",
		Out:  "compressed_file",
		Run:  fasthuff.CompressFile,
	}
	os.Exit(p.Main(context.Background(), os.Args[1:], os.Stderr))
}
