// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package service

import (
	"bytes"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
)

type op uint8

const (
	opCompress op = iota + 1
	opDecompress
)

// cacheKey identifies a request body by content.
type cacheKey struct {
	sum  uint64
	size int
	op   op
}

func keyOf(o op, body []byte) cacheKey {
	return cacheKey{sum: xxhash.Sum64(body), size: len(body), op: o}
}

func hashKey(k cacheKey) uint64 {
	return k.sum ^ uint64(k.size)<<8 ^ uint64(k.op)
}

// cacheEntry keeps the request body so a hash collision is a miss.
type cacheEntry struct {
	in  []byte
	res *Result
}

// resultCache keeps recent results. tinylfu is not safe for concurrent use.
type resultCache struct {
	mu  sync.Mutex
	lfu *tinylfu.T[cacheKey, cacheEntry]
}

func newResultCache(entries int) *resultCache {
	return &resultCache{lfu: tinylfu.New[cacheKey, cacheEntry](entries, entries*10, hashKey)}
}

func (c *resultCache) get(k cacheKey, body []byte) (*Result, bool) {
	c.mu.Lock()
	e, ok := c.lfu.Get(k)
	c.mu.Unlock()
	if !ok || !bytes.Equal(e.in, body) {
		return nil, false
	}
	return e.res, true
}

// add stores r for body. body is copied, the caller may reuse it.
func (c *resultCache) add(k cacheKey, body []byte, r *Result) {
	e := cacheEntry{in: bytes.Clone(body), res: r}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lfu.Add(k, e)
}
