// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// FoldAsc folds f over every binding in n in ascending key order.
func FoldAsc[V, R any](n *Node[V], acc R, f func(acc R, key Key, val V) R) R {
	if n == nil {
		return acc
	}
	if n.kind == KindLeaf {
		return f(acc, n.key, n.val)
	}
	if n.kind == KindOne {
		return FoldAsc(n.one, acc, f)
	}
	for _, c := range n.arr.Items {
		acc = FoldAsc(c, acc, f)
	}
	return acc
}

// FoldDesc is FoldAsc's mirror, folding in descending key order.
func FoldDesc[V, R any](n *Node[V], acc R, f func(acc R, key Key, val V) R) R {
	if n == nil {
		return acc
	}
	if n.kind == KindLeaf {
		return f(acc, n.key, n.val)
	}
	if n.kind == KindOne {
		return FoldDesc(n.one, acc, f)
	}
	for i := len(n.arr.Items) - 1; i >= 0; i-- {
		acc = FoldDesc(n.arr.Items[i], acc, f)
	}
	return acc
}

// TraverseWithKey calls f for every binding in n in ascending key
// order, for side effects only.
func TraverseWithKey[V any](n *Node[V], f func(key Key, val V)) {
	FoldAsc[V, struct{}](n, struct{}{}, func(_ struct{}, key Key, val V) struct{} {
		f(key, val)
		return struct{}{}
	})
}

// MapWithKey returns a new trie with f applied to every value, keys
// unchanged. The trie shape (every node) is rebuilt since V may differ
// from R: no substructure can be shared across the type change.
func MapWithKey[V, R any](n *Node[V], f func(key Key, val V) R) *Node[R] {
	if n == nil {
		return nil
	}
	if n.kind == KindLeaf {
		return leaf(n.key, f(n.key, n.val))
	}
	if n.kind == KindOne {
		child := MapWithKey(n.one, f)
		return BuildNode((&sparse.Array[*Node[R]]{}).InsertAt(n.seg, child))
	}

	slots := n.arr.Bits.AsSlice(make([]uint, 0, n.arr.Len()))
	arr := &sparse.Array[*Node[R]]{}
	for i, c := range n.arr.Items {
		arr = arr.InsertAt(slots[i], MapWithKey(c, f))
	}
	return BuildNode(arr)
}
