// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// Lookup returns the value stored at key in n, if any. n may be nil
// (Empty).
func Lookup[V any](n *Node[V], key Key) (val V, ok bool) {
	path := PathOf(key)
	depth := 0

	for {
		if n == nil {
			return
		}
		if n.kind == KindLeaf {
			if n.key == key {
				return n.val, true
			}
			return
		}

		seg := uint(path[depth])
		child, ok2 := childAt(n, seg)
		if !ok2 {
			return
		}
		n = child
		depth++
	}
}

// Insert returns a new trie with key bound to val, replacing any prior
// binding. Equivalent to InsertWith(n, key, val, func(_, new V) V {
// return new }).
func Insert[V any](n *Node[V], key Key, val V) *Node[V] {
	return InsertWith(n, key, val, func(_, newVal V) V { return newVal })
}

// InsertWith returns a new trie with key bound to val. If key is
// already present, the new value is combine(oldVal, val) instead of
// val outright. If combine returns a value indistinguishable
// from the old one (per valueUnchanged), n's original Leaf is reused
// (the leaf-sharing invariant).
func InsertWith[V any](n *Node[V], key Key, val V, combine func(old, new V) V) *Node[V] {
	path := PathOf(key)
	return insertWith(n, key, val, combine, path, 0)
}

func insertWith[V any](n *Node[V], key Key, val V, combine func(old, new V) V, path Path, depth int) *Node[V] {
	if n == nil {
		return leaf(key, val)
	}

	if n.kind == KindLeaf {
		if n.key == key {
			merged := combine(n.val, val)
			if valueUnchanged(n.val, merged) {
				return n
			}
			return leaf(key, merged)
		}
		return mergeTwoLeaves(n, leaf(key, val), depth)
	}

	seg := uint(path[depth])
	child, ok := childAt(n, seg)
	if !ok {
		return insertChild(n, seg, leaf(key, val))
	}

	newChild := insertWith(child, key, val, combine, path, depth+1)
	if newChild == child {
		return n
	}
	return insertChild(n, seg, newChild)
}

// mergeTwoLeaves builds the minimal subtrie holding both a and b, two
// distinct leaves, rooted at depth: one One node per path segment the
// two keys share, ending in a Two that holds both leaves at the first
// segment where their paths diverge. Panics if they never diverge
// (duplicate keys reaching here is a bug: Insert/InsertWith handle the
// equal-key case before calling this).
func mergeTwoLeaves[V any](a, b *Node[V], depth int) *Node[V] {
	pathA := PathOf(a.key)
	pathB := PathOf(b.key)
	start := depth
	for {
		if depth >= SegmentCount {
			panic("hamt256: internal invariant violated: distinct keys exhausted all path segments without diverging")
		}
		segA := uint(pathA[depth])
		segB := uint(pathB[depth])
		if segA != segB {
			n := BuildNode((&sparse.Array[*Node[V]]{}).InsertAt(segA, a).InsertAt(segB, b))
			for d := depth - 1; d >= start; d-- {
				n = one(uint(pathA[d]), n)
			}
			return n
		}
		depth++
	}
}

// insertChild returns n with its child at seg set to child (which must
// be non-nil), reusing n's existing shape plumbing.
func insertChild[V any](n *Node[V], seg uint, child *Node[V]) *Node[V] {
	switch n.kind {
	case KindOne:
		if seg == n.seg {
			return BuildNode((&sparse.Array[*Node[V]]{}).InsertAt(seg, child))
		}
		arr := (&sparse.Array[*Node[V]]{}).InsertAt(n.seg, n.one).InsertAt(seg, child)
		return BuildNode(arr)
	case KindInterior:
		if _, ok := n.arr.Get(seg); ok {
			return BuildNode(n.arr.UpdateAt(seg, child))
		}
		return BuildNode(n.arr.InsertAt(seg, child))
	default:
		panic("hamt256: insertChild called on a Leaf")
	}
}

// Delete returns a new trie with key removed, or n unchanged (same
// pointer) if key was absent.
func Delete[V any](n *Node[V], key Key) *Node[V] {
	path := PathOf(key)
	return deleteAt(n, key, path, 0)
}

func deleteAt[V any](n *Node[V], key Key, path Path, depth int) *Node[V] {
	if n == nil {
		return nil
	}

	if n.kind == KindLeaf {
		if n.key == key {
			return nil
		}
		return n
	}

	seg := uint(path[depth])
	child, ok := childAt(n, seg)
	if !ok {
		return n
	}

	newChild := deleteAt(child, key, path, depth+1)
	if newChild == child {
		return n
	}

	switch n.kind {
	case KindOne:
		if newChild == nil {
			return nil
		}
		if newChild.kind == KindLeaf {
			return newChild // unwrap, mirroring BuildNode's length-1-Leaf collapse
		}
		return one(seg, newChild)
	case KindInterior:
		if newChild == nil {
			return DropEmpty(n.arr.RemoveAt(seg))
		}
		return BuildNode(n.arr.UpdateAt(seg, newChild))
	default:
		panic("hamt256: deleteAt: unreachable node kind")
	}
}

// Size returns the number of key/value bindings in n.
func Size[V any](n *Node[V]) int {
	if n == nil {
		return 0
	}
	if n.kind == KindLeaf {
		return 1
	}
	count := 0
	forEachChild(n, func(_ uint, c *Node[V]) {
		count += Size(c)
	})
	return count
}

// forEachChild calls f for every populated child of n, in ascending
// segment order. n must not be a Leaf.
func forEachChild[V any](n *Node[V], f func(seg uint, child *Node[V])) {
	switch n.kind {
	case KindOne:
		f(n.seg, n.one)
	case KindInterior:
		slots := n.arr.Bits.AsSlice(make([]uint, 0, n.arr.Len()))
		for i, c := range n.arr.Items {
			f(slots[i], c)
		}
	default:
		panic("hamt256: forEachChild called on a Leaf")
	}
}
