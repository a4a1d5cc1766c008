// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman builds a Huffman coding tree from a byte frequency table
// and uses it to encode single symbols to bits and decode bits back to
// symbols.
//
// All nodes of a tree live in one arena slice and refer to each other by
// index, so a tree needs no teardown and is safe for concurrent readers
// once built.
package huffman

import (
	"container/heap"
	"io"

	"github.com/pkg/errors"
)

var (
	ErrUnknownSymbol = errors.New("huffman: symbol not in tree")
	ErrTruncated     = errors.New("huffman: bit stream ended inside a code")
	ErrEmptyTree     = errors.New("huffman: empty tree")
)

// A tree over 256 leaves is at most 255 edges deep.
const maxDepth = 255

const none = -1

// BitReader is the bit source consumed by Decode.
type BitReader interface {
	ReadBool() (bool, error)
}

// BitWriter is the bit sink fed by Encode.
type BitWriter interface {
	WriteBool(b bool) error
}

type node struct {
	weight uint64   // sum of the leaf counts below
	parent int32    // none at the root
	child  [2]int32 // none, none for a leaf
	symbol byte     // leaf symbol, or the symbol of child[0] for internal nodes
}

func (n *node) leaf() bool { return n.child[0] == none }

// Tree is an immutable Huffman coding tree.
type Tree struct {
	nodes  []node
	root   int32
	leaves [256]int32
}

// queue is a min-heap of node indices ordered by weight, then symbol.
// Live entries never share a symbol: a merge removes both children and
// inserts one node that carries the symbol of the lighter one.
type queue struct {
	t   *Tree
	idx []int32
}

func (q *queue) Len() int { return len(q.idx) }

func (q *queue) Less(i, j int) bool {
	a, b := &q.t.nodes[q.idx[i]], &q.t.nodes[q.idx[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.symbol < b.symbol
}

func (q *queue) Swap(i, j int) { q.idx[i], q.idx[j] = q.idx[j], q.idx[i] }

func (q *queue) Push(x any) { q.idx = append(q.idx, x.(int32)) }

func (q *queue) Pop() any {
	old := q.idx
	n := len(old)
	id := old[n-1]
	q.idx = old[:n-1]
	return id
}

// Build constructs the tree for freqs. Symbols with a zero count get no leaf.
// With no symbols at all the tree is empty; with exactly one symbol its leaf
// is the root and every code is zero bits long.
func Build(freqs *Frequencies) *Tree {
	t := &Tree{root: none}
	for i := range t.leaves {
		t.leaves[i] = none
	}
	n := freqs.Distinct()
	if n == 0 {
		return t
	}

	t.nodes = make([]node, 0, 2*n-1)
	q := &queue{t: t, idx: make([]int32, 0, n)}
	for sym, f := range freqs {
		if f == 0 {
			continue
		}
		id := t.add(uint64(f), byte(sym), none, none)
		t.leaves[sym] = id
		q.idx = append(q.idx, id)
	}
	heap.Init(q)

	for q.Len() > 1 {
		a := heap.Pop(q).(int32)
		b := heap.Pop(q).(int32)
		id := t.add(t.nodes[a].weight+t.nodes[b].weight, t.nodes[a].symbol, a, b)
		t.nodes[a].parent = id
		t.nodes[b].parent = id
		heap.Push(q, id)
	}
	t.root = q.idx[0]
	return t
}

func (t *Tree) add(weight uint64, sym byte, c0, c1 int32) int32 {
	t.nodes = append(t.nodes, node{
		weight: weight,
		parent: none,
		child:  [2]int32{c0, c1},
		symbol: sym,
	})
	return int32(len(t.nodes) - 1)
}

// Empty reports whether the tree was built from an all-zero table.
func (t *Tree) Empty() bool { return t.root == none }

// Len returns the number of leaves.
func (t *Tree) Len() int { return (len(t.nodes) + 1) / 2 }

// Weight returns the weight of the root, the total of all counts.
func (t *Tree) Weight() uint64 {
	if t.root == none {
		return 0
	}
	return t.nodes[t.root].weight
}

// walk appends the edges from the leaf of sym up to the root to dst,
// true for a child[1] edge.
func (t *Tree) walk(sym byte, dst []bool) ([]bool, error) {
	id := t.leaves[sym]
	if id == none {
		return dst, errors.Wrapf(ErrUnknownSymbol, "symbol %#02x", sym)
	}
	for id != t.root {
		p := t.nodes[id].parent
		dst = append(dst, t.nodes[p].child[1] == id)
		id = p
	}
	return dst, nil
}

// Encode writes the code of sym to w, root edge first.
// The single leaf of a one-symbol tree has an empty code and writes nothing.
func (t *Tree) Encode(sym byte, w BitWriter) error {
	var buf [maxDepth]bool
	path, err := t.walk(sym, buf[:0])
	if err != nil {
		return err
	}
	for i := len(path) - 1; i >= 0; i-- {
		if err := w.WriteBool(path[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one code from r and returns its symbol. A one-symbol tree
// consumes no bits. Running out of bits before reaching a leaf yields
// ErrTruncated.
func (t *Tree) Decode(r BitReader) (byte, error) {
	if t.root == none {
		return 0, errors.WithStack(ErrEmptyTree)
	}
	n := &t.nodes[t.root]
	for !n.leaf() {
		bit, err := r.ReadBool()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, errors.WithStack(ErrTruncated)
		} else if err != nil {
			return 0, err
		}
		if bit {
			n = &t.nodes[n.child[1]]
		} else {
			n = &t.nodes[n.child[0]]
		}
	}
	return n.symbol, nil
}

// Code returns the code of sym as a sequence of 0 and 1, root edge first.
func (t *Tree) Code(sym byte) ([]uint8, error) {
	path, err := t.walk(sym, nil)
	if err != nil {
		return nil, err
	}
	code := make([]uint8, len(path))
	for i, bit := range path {
		if bit {
			code[len(path)-1-i] = 1
		}
	}
	return code, nil
}

// CodeLen returns the length in bits of the code of sym, and 0 for
// symbols that are not in the tree.
func (t *Tree) CodeLen(sym byte) int {
	id := t.leaves[sym]
	if id == none {
		return 0
	}
	depth := 0
	for id != t.root {
		id = t.nodes[id].parent
		depth++
	}
	return depth
}
