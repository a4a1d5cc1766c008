// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package service runs the codec for the HTTP front end.
package service

import (
	"bytes"

	"github.com/intel/fasthuff/compress/hc"
	"github.com/intel/fasthuff/pkg/logger"
	"github.com/pkg/errors"
)

// ErrOutputTooLarge is returned when a container announces more data than
// the service is allowed to produce.
var ErrOutputTooLarge = errors.New("service: decompressed size over limit")

// Result is the output of one compression or decompression. It is shared
// through the cache and must not be modified.
type Result struct {
	Data  []byte
	Stats hc.Stats
}

// Service compresses and decompresses request bodies in memory.
type Service struct {
	cache     *resultCache // nil when caching is off
	maxOutput int64
	log       logger.Logger
}

// New returns a Service caching up to entries results and refusing to
// decompress more than maxOutput bytes per request.
func New(entries int, maxOutput int64, log logger.Logger) *Service {
	s := &Service{maxOutput: maxOutput, log: log}
	if entries > 0 {
		s.cache = newResultCache(entries)
	}
	return s
}

func (s *Service) run(o op, body []byte, fn func(dst *bytes.Buffer) (hc.Stats, error)) (*Result, error) {
	var k cacheKey
	if s.cache != nil {
		k = keyOf(o, body)
		if r, ok := s.cache.get(k, body); ok {
			s.log.Debugf("cache hit: %d bytes", len(body))
			return r, nil
		}
	}
	var buf bytes.Buffer
	st, err := fn(&buf)
	if err != nil {
		return nil, err
	}
	r := &Result{Data: buf.Bytes(), Stats: st}
	if s.cache != nil {
		s.cache.add(k, body, r)
	}
	return r, nil
}

// Compress returns body in container form.
func (s *Service) Compress(body []byte) (*Result, error) {
	return s.run(opCompress, body, func(dst *bytes.Buffer) (hc.Stats, error) {
		dst.Grow(len(body) / 2)
		return hc.Encode(dst, bytes.NewReader(body))
	})
}

// Decompress returns the plain data of the container in body. The header
// is checked against the output limit before anything is decoded.
func (s *Service) Decompress(body []byte) (*Result, error) {
	h, err := hc.NewReader(bytes.NewReader(body)).Header()
	if err != nil {
		return nil, err
	}
	if int64(h.Total) > s.maxOutput {
		return nil, errors.Wrapf(ErrOutputTooLarge, "%d bytes announced, limit %d", h.Total, s.maxOutput)
	}
	return s.run(opDecompress, body, func(dst *bytes.Buffer) (hc.Stats, error) {
		dst.Grow(int(h.Total))
		return hc.Decode(dst, bytes.NewReader(body))
	})
}

// Analyze reports what compressing body would produce.
func (s *Service) Analyze(body []byte) (*hc.Report, error) {
	return hc.Analyze(bytes.NewReader(body))
}
