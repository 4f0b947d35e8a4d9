// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"strings"
)

// Valid walks n and checks every structural invariant:
// no Empty children anywhere, every node's shape is the minimal one for
// its child count, bitmap/items length agreement, and strictly
// increasing keys across siblings (segment order is key order, so this
// also catches a misrouted subtree). It returns the first violation
// found, or nil if n is well-formed.
func Valid[V any](n *Node[V]) error {
	_, _, err := validAt(n)
	return err
}

// validAt returns n's minimum and maximum key (meaningless if n is
// Empty) alongside the first structural violation found beneath it.
func validAt[V any](n *Node[V]) (lo, hi Key, err error) {
	if n == nil {
		return
	}

	switch n.kind {
	case KindLeaf:
		return n.key, n.key, nil

	case KindOne:
		if n.one == nil {
			return lo, hi, fmt.Errorf("hamt256: One node has an Empty child")
		}
		if n.one.kind == KindLeaf {
			return lo, hi, fmt.Errorf("hamt256: One node wraps a bare Leaf, violating the minimal-shape invariant")
		}
		return validAt(n.one)

	default: // KindInterior
		if n.arr.Bits.Count() != n.arr.Len() {
			return lo, hi, fmt.Errorf("hamt256: bitmap/items length mismatch: popcount=%d len=%d", n.arr.Bits.Count(), n.arr.Len())
		}
		if n.arr.Len() < 2 {
			return lo, hi, fmt.Errorf("hamt256: Interior node has %d children, below the minimum of 2", n.arr.Len())
		}

		var prevMax Key
		havePrev := false
		for i, c := range n.arr.Items {
			if c == nil {
				return lo, hi, fmt.Errorf("hamt256: Interior node has an Empty child")
			}
			cLo, cHi, cErr := validAt(c)
			if cErr != nil {
				return lo, hi, cErr
			}
			if havePrev && !prevMax.Less(cLo) {
				return lo, hi, fmt.Errorf("hamt256: sibling %d's keys are not strictly greater than the preceding sibling's", i)
			}
			if i == 0 {
				lo = cLo
			}
			prevMax, havePrev = cHi, true
		}
		return lo, prevMax, nil
	}
}

// Histogram reports, for every node in n, how many nodes hold each
// child count: the result's index c holds the number of nodes with
// exactly c children, for c in 1..64. A One node counts as 1 child;
// index 0 is always zero, since no well-formed node has zero children.
func Histogram[V any](n *Node[V]) [65]int {
	var h [65]int
	histogramAt(n, &h)
	return h
}

func histogramAt[V any](n *Node[V], h *[65]int) {
	if n == nil {
		return
	}
	switch n.kind {
	case KindLeaf:
		return
	case KindOne:
		h[1]++
		histogramAt(n.one, h)
	default:
		h[n.arr.Len()]++
		for _, c := range n.arr.Items {
			histogramAt(c, h)
		}
	}
}

// DebugString renders n as an indented recursive-descent tree, one
// binding or node shape per line.
func DebugString[V any](n *Node[V]) string {
	var b strings.Builder
	debugWrite(&b, n, 0)
	return b.String()
}

func debugWrite[V any](b *strings.Builder, n *Node[V], depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Fprintf(b, "%sEmpty\n", indent)
		return
	}

	switch n.kind {
	case KindLeaf:
		fmt.Fprintf(b, "%sLeaf(%v) = %v\n", indent, n.key, n.val)
	case KindOne:
		fmt.Fprintf(b, "%sOne(seg=%d)\n", indent, n.seg)
		debugWrite(b, n.one, depth+1)
	default:
		fmt.Fprintf(b, "%s%s(children=%d)\n", indent, n.Shape(), n.arr.Len())
		slots := n.arr.Bits.AsSlice(make([]uint, 0, n.arr.Len()))
		for i, c := range n.arr.Items {
			fmt.Fprintf(b, "%s seg=%d:\n", indent, slots[i])
			debugWrite(b, c, depth+1)
		}
	}
}
