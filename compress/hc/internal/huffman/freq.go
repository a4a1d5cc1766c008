// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Frequencies counts occurrences of every byte value.
type Frequencies [256]uint32

// Add counts the bytes of p.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		f[b]++
	}
}

// Distinct returns the number of symbols with a non-zero count.
func (f *Frequencies) Distinct() int {
	n := 0
	for _, v := range f {
		if v != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() uint64 {
	var t uint64
	for _, v := range f {
		t += uint64(v)
	}
	return t
}
