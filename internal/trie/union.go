// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// Union returns the union of a and b, preferring b's value on key
// collisions. Equivalent to UnionWithKey(a, b, func(_ Key, _, r V) V {
// return r }).
func Union[V any](a, b *Node[V]) *Node[V] {
	return UnionWithKey(a, b, func(_ Key, _, right V) V { return right })
}

// UnionWithKey returns the union of a and b. On a key collision the
// merged value is combine(key, leftVal, rightVal). Shares
// substructure from a or b wherever a subtrie is untouched by the
// merge, including returning a or b outright when the other is Empty.
func UnionWithKey[V any](a, b *Node[V], combine func(key Key, left, right V) V) *Node[V] {
	return unionWithKey(a, b, combine, 0)
}

func unionWithKey[V any](a, b *Node[V], combine func(key Key, left, right V) V, depth int) *Node[V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	if a.kind == KindLeaf && b.kind == KindLeaf {
		if a.key == b.key {
			merged := combine(a.key, a.val, b.val)
			if valueUnchanged(a.val, merged) {
				return a
			}
			return leaf(a.key, merged)
		}
		return mergeTwoLeaves(a, b, depth)
	}

	if a.kind == KindLeaf {
		return insertIntoWith(b, a, combine, true, depth)
	}
	if b.kind == KindLeaf {
		return insertIntoWith(a, b, combine, false, depth)
	}

	// both interior (One or Interior): merge child-by-child over the
	// union of populated segments.
	bitsA, bitsB := bitsOf(a), bitsOf(b)
	segs := (bitsA | bitsB).AsSlice(make([]uint, 0, 64))

	arr := &sparse.Array[*Node[V]]{}
	changed := false
	for _, seg := range segs {
		ca, hasA := childAt(a, seg)
		cb, hasB := childAt(b, seg)

		var merged *Node[V]
		switch {
		case hasA && hasB:
			merged = unionWithKey(ca, cb, combine, depth+1)
			if merged != ca {
				changed = true
			}
		case hasA:
			merged = ca
		default:
			merged = cb
			changed = true
		}
		arr = arr.InsertAt(seg, merged)
	}

	if !changed {
		return a
	}
	return BuildNode(arr)
}

// insertIntoWith merges a single leaf into an interior-shaped node
// (tree), at position depth. leafFirst indicates whether, on a
// collision, leaf is the left or right operand of combine.
func insertIntoWith[V any](tree, lf *Node[V], combine func(key Key, left, right V) V, leafFirst bool, depth int) *Node[V] {
	path := PathOf(lf.key)
	seg := uint(path[depth])

	child, ok := childAt(tree, seg)
	if !ok {
		return insertChild(tree, seg, lf)
	}

	var merged *Node[V]
	if leafFirst {
		merged = unionWithKey(lf, child, combine, depth+1)
	} else {
		merged = unionWithKey(child, lf, combine, depth+1)
	}
	if merged == child {
		return tree
	}
	return insertChild(tree, seg, merged)
}
