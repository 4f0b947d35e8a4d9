// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// LookupMin returns the leaf with the smallest key in n, if n is
// non-empty. Segments are visited in ascending order and the path
// always descends via the lowest populated child, so the first Leaf
// reached holds the minimum key.
func LookupMin[V any](n *Node[V]) (key Key, val V, ok bool) {
	for {
		if n == nil {
			return
		}
		if n.kind == KindLeaf {
			return n.key, n.val, true
		}
		seg, has := firstSeg(n)
		if !has {
			return
		}
		n, _ = childAt(n, seg)
	}
}

// LookupMax is LookupMin's mirror: descends via the highest populated
// child at each level.
func LookupMax[V any](n *Node[V]) (key Key, val V, ok bool) {
	for {
		if n == nil {
			return
		}
		if n.kind == KindLeaf {
			return n.key, n.val, true
		}
		seg, has := lastSeg(n)
		if !has {
			return
		}
		n, _ = childAt(n, seg)
	}
}

func firstSeg[V any](n *Node[V]) (uint, bool) {
	if n.kind == KindOne {
		return n.seg, true
	}
	return bitsOf(n).FirstSet()
}

func lastSeg[V any](n *Node[V]) (uint, bool) {
	if n.kind == KindOne {
		return n.seg, true
	}
	return bitsOf(n).LastSet()
}

// MinView removes and returns the smallest-key binding in n, along with
// the trie that remains. ok is false if n is Empty.
func MinView[V any](n *Node[V]) (key Key, val V, rest *Node[V], ok bool) {
	if n == nil {
		return
	}
	if n.kind == KindLeaf {
		return n.key, n.val, nil, true
	}

	seg, has := firstSeg(n)
	if !has {
		return
	}
	child, _ := childAt(n, seg)
	k, v, restChild, _ := MinView(child)

	return k, v, replaceOrDrop(n, seg, restChild), true
}

// MaxView is MinView's mirror, removing the largest-key binding.
func MaxView[V any](n *Node[V]) (key Key, val V, rest *Node[V], ok bool) {
	if n == nil {
		return
	}
	if n.kind == KindLeaf {
		return n.key, n.val, nil, true
	}

	seg, has := lastSeg(n)
	if !has {
		return
	}
	child, _ := childAt(n, seg)
	k, v, restChild, _ := MaxView(child)

	return k, v, replaceOrDrop(n, seg, restChild), true
}

// replaceOrDrop rebuilds n with its child at seg set to restChild,
// dropping the slot entirely when restChild is nil.
func replaceOrDrop[V any](n *Node[V], seg uint, restChild *Node[V]) *Node[V] {
	switch n.kind {
	case KindOne:
		if restChild == nil {
			return nil
		}
		return BuildNode((&sparse.Array[*Node[V]]{}).InsertAt(seg, restChild))
	case KindInterior:
		if restChild == nil {
			return DropEmpty(n.arr.RemoveAt(seg))
		}
		return BuildNode(n.arr.UpdateAt(seg, restChild))
	default:
		panic("hamt256: replaceOrDrop: unreachable node kind")
	}
}
