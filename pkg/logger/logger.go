// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package logger provides the leveled logger used by every program.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes messages at debug, info and error level. Debug messages
// are dropped unless debugging was enabled.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New returns a Logger writing to stderr with timestamps.
func New(debug bool) Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags), debug: debug}
}

// NewTo returns a Logger writing bare lines to w, each starting with prefix.
func NewTo(w io.Writer, prefix string, debug bool) Logger {
	return &stdLogger{l: log.New(w, prefix, 0), debug: debug}
}

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.debug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
