// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package cli runs the compress and uncompress programs.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/intel/fasthuff/compress/hc"
	"github.com/intel/fasthuff/internal/config"
	"github.com/intel/fasthuff/pkg/logger"
	"github.com/pkg/errors"
)

var ErrUsage = errors.New("incorrect parameters")

// Program describes one of the two file converters.
type Program struct {
	Name string // used in messages
	In   string // role of the first argument, for the usage line
	Out  string // role of the second argument
	Run  func(ctx context.Context, in, out string) (hc.Stats, error)
}

// Args checks that exactly an input and an output path were given.
func Args(args []string) (in, out string, err error) {
	if len(args) != 2 {
		return "", "", errors.Wrapf(ErrUsage, "got %d arguments, want 2", len(args))
	}
	return args[0], args[1], nil
}

// Main runs p with the command line arguments args (without the program
// name) and returns the process exit status.
func (p Program) Main(ctx context.Context, args []string, stderr io.Writer) int {
	log := logger.NewTo(stderr, p.Name+": ", config.Debug())
	in, out, err := Args(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", ErrUsage)
		fmt.Fprintf(stderr, "Correct form: %s <%s> <%s>\n", p.Name, p.In, p.Out)
		return 1
	}
	s, err := p.Run(ctx, in, out)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	log.Debugf("%s -> %s: original %d bytes, compressed %d bytes, ratio %.2f%%, %d symbols",
		in, out, s.OriginalSize, s.CompressedSize, s.Ratio()*100, s.Symbols)
	return 0
}
