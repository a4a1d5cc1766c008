// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "slices"

type symCount struct {
	sym   byte
	count uint32
}

// CodeLengths returns optimal code lengths for freqs without building a
// tree, using In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
// Absent symbols get length 0, and so does the only symbol of a one-symbol
// table, matching the codes a Tree produces.
func CodeLengths(freqs *Frequencies) (lens [256]uint8) {
	counts := make([]symCount, 0, 256)
	for i, v := range freqs {
		if v != 0 {
			counts = append(counts, symCount{sym: byte(i), count: v})
		}
	}
	// phase 1 consumes weights from the back, smallest last
	slices.SortFunc(counts, func(a, b symCount) int {
		if a.count != b.count {
			if a.count > b.count {
				return -1
			}
			return 1
		}
		return int(a.sym) - int(b.sym)
	})
	w := make([]uint64, len(counts))
	for i, v := range counts {
		w[i] = uint64(v.count)
	}
	minRedundancy(w)
	for i, v := range w {
		lens[counts[i].sym] = uint8(v)
	}
	return lens
}

// Cost returns the payload size in bits of coding freqs with lens.
func Cost(freqs *Frequencies, lens *[256]uint8) uint64 {
	var bits uint64
	for i, v := range freqs {
		bits += uint64(v) * uint64(lens[i])
	}
	return bits
}

// minRedundancy replaces the non-increasing weights in w with their code
// lengths and returns the longest.
func minRedundancy(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 0
		return 0
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal node
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := 0
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth
		for ; root < n && w[root] == uint64(depth); root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = uint64(depth)
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[n-1]
}
