// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// RestrictKeys returns the subtrie of n holding only keys for which
// keep returns true. Shares every untouched subtrie
// (an Interior/One node whose keep-result is uniformly true is
// returned unchanged).
func RestrictKeys[V any](n *Node[V], keep func(Key) bool) *Node[V] {
	return filterKeys(n, keep, true)
}

// WithoutKeys is RestrictKeys' complement: it keeps every key for
// which remove returns false.
func WithoutKeys[V any](n *Node[V], remove func(Key) bool) *Node[V] {
	return filterKeys(n, remove, false)
}

func filterKeys[V any](n *Node[V], pred func(Key) bool, wantTrue bool) *Node[V] {
	if n == nil {
		return nil
	}

	if n.kind == KindLeaf {
		if pred(n.key) == wantTrue {
			return n
		}
		return nil
	}

	if n.kind == KindOne {
		child := filterKeys(n.one, pred, wantTrue)
		if child == n.one {
			return n
		}
		if child == nil {
			return nil
		}
		return BuildNode((&sparse.Array[*Node[V]]{}).InsertAt(n.seg, child))
	}

	slots := n.arr.Bits.AsSlice(make([]uint, 0, n.arr.Len()))
	arr := &sparse.Array[*Node[V]]{}
	changed := false
	for i, c := range n.arr.Items {
		newC := filterKeys(c, pred, wantTrue)
		if newC != c {
			changed = true
		}
		if newC != nil {
			arr = arr.InsertAt(slots[i], newC)
		}
	}
	if !changed {
		return n
	}
	return DropEmpty(arr)
}
