// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// Intersection returns the keys present in both a and b, keeping a's
// values. Equivalent to IntersectionWithKey(a, b, func(_ Key, l, _ V) V
// { return l }).
func Intersection[V any](a, b *Node[V]) *Node[V] {
	return IntersectionWithKey(a, b, func(_ Key, left, _ V) V { return left })
}

// IntersectionWith returns the intersection of a and b, combining
// colliding values with combine(leftVal, rightVal).
func IntersectionWith[V any](a, b *Node[V], combine func(left, right V) V) *Node[V] {
	return IntersectionWithKey(a, b, func(_ Key, left, right V) V { return combine(left, right) })
}

// IntersectionWithKey returns the intersection of a and b: a node for
// key k survives iff k is present in both a and b,
// with combine(k, leftVal, rightVal) as its value.
func IntersectionWithKey[V any](a, b *Node[V], combine func(key Key, left, right V) V) *Node[V] {
	return IntersectionWhen(a, b, func(key Key, left, right V) (V, bool) {
		return combine(key, left, right), true
	})
}

// IntersectionWhen is the general cross-type intersection primitive:
// keep is called for every key present in both a and b;
// when it returns ok==false the key is dropped from the result instead
// of merged, letting callers filter as well as combine. R may differ
// from V and W, so this cannot share a's or b's substructure the way
// the same-type operations do.
func IntersectionWhen[V, W, R any](a *Node[V], b *Node[W], keep func(key Key, left V, right W) (R, bool)) *Node[R] {
	if a == nil || b == nil {
		return nil
	}

	if a.kind == KindLeaf {
		if bv, ok := Lookup(b, a.key); ok {
			if r, ok2 := keep(a.key, a.val, bv); ok2 {
				return leaf(a.key, r)
			}
		}
		return nil
	}
	if b.kind == KindLeaf {
		if av, ok := Lookup(a, b.key); ok {
			if r, ok2 := keep(b.key, av, b.val); ok2 {
				return leaf(b.key, r)
			}
		}
		return nil
	}

	bitsA, bitsB := bitsOf(a), bitsOf(b)
	common := (bitsA & bitsB).AsSlice(make([]uint, 0, 64))

	arr := &sparse.Array[*Node[R]]{}
	for _, seg := range common {
		ca, _ := childAt(a, seg)
		cb, _ := childAt(b, seg)
		merged := IntersectionWhen(ca, cb, keep)
		if merged != nil {
			arr = arr.InsertAt(seg, merged)
		}
	}
	return BuildNode(arr)
}

// FoldOverIntersection folds f over every key present in both a and b,
// in ascending key order, without materializing the intersection trie.
func FoldOverIntersection[V, W, R any](a *Node[V], b *Node[W], acc R, f func(acc R, key Key, left V, right W) R) R {
	if a == nil || b == nil {
		return acc
	}

	if a.kind == KindLeaf {
		if bv, ok := Lookup(b, a.key); ok {
			acc = f(acc, a.key, a.val, bv)
		}
		return acc
	}
	if b.kind == KindLeaf {
		if av, ok := Lookup(a, b.key); ok {
			acc = f(acc, b.key, av, b.val)
		}
		return acc
	}

	bitsA, bitsB := bitsOf(a), bitsOf(b)
	common := (bitsA & bitsB).AsSlice(make([]uint, 0, 64))

	for _, seg := range common {
		ca, _ := childAt(a, seg)
		cb, _ := childAt(b, seg)
		acc = FoldOverIntersection(ca, cb, acc, f)
	}
	return acc
}
