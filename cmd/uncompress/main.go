// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Command uncompress restores a file written by compress.
//
//	uncompress <compressed_file> <uncompressed_file>
package main

import (
	"context"
	"os"

	"github.com/intel/fasthuff"
	"github.com/intel/fasthuff/internal/cli"
)

func main() {
	p := cli.Program{
		Name: "uncompress",
		In:   "compressed_file",
		Out:  "uncompressed_file",
		Run:  fasthuff.DecompressFile,
	}
	os.Exit(p.Main(context.Background(), os.Args[1:], os.Stderr))
}
