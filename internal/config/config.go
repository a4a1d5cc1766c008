// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package config reads settings from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config holds the settings of hcserver and the debug switch shared by
// every program.
type Config struct {
	Addr         string // HC_ADDR, listen address of hcserver
	CacheEntries int    // HC_CACHE_ENTRIES, results kept by hcserver
	MaxBody      int64  // HC_MAX_BODY, largest accepted request body in bytes
	MaxOutput    int64  // HC_MAX_OUTPUT, largest decompressed response in bytes
	Debug        bool   // FASTHUFF_DEBUG
}

const (
	DefaultAddr         = ":8000"
	DefaultCacheEntries = 256
	DefaultMaxBody      = 32 << 20
	DefaultMaxOutput    = 256 << 20
)

// Debug reports whether FASTHUFF_DEBUG asks for debug logging.
func Debug() bool {
	v, _ := strconv.ParseBool(os.Getenv("FASTHUFF_DEBUG"))
	return v
}

// Load reads the configuration, using defaults for unset variables.
func Load() (Config, error) {
	cfg := Config{
		Addr:         DefaultAddr,
		CacheEntries: DefaultCacheEntries,
		MaxBody:      DefaultMaxBody,
		MaxOutput:    DefaultMaxOutput,
		Debug:        Debug(),
	}
	if v := os.Getenv("HC_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HC_CACHE_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, errors.Errorf("config: HC_CACHE_ENTRIES=%q: want a non-negative integer", v)
		}
		cfg.CacheEntries = n
	}
	if v := os.Getenv("HC_MAX_BODY"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return cfg, errors.Errorf("config: HC_MAX_BODY=%q: want a positive integer", v)
		}
		cfg.MaxBody = n
	}
	if v := os.Getenv("HC_MAX_OUTPUT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return cfg, errors.Errorf("config: HC_MAX_OUTPUT=%q: want a positive integer", v)
		}
		cfg.MaxOutput = n
	}
	return cfg, nil
}
