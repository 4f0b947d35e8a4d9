// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"

	"github.com/gaissmai/hamt256/internal/bitmap"
	"github.com/gaissmai/hamt256/internal/sparse"
)

// Kind tags a Node's Go representation. Two, Sparse, and Full all
// share the KindInterior representation: their dispatch is identical
// (a bitmap test followed by a rank-indexed array lookup), an
// "(popcount(bitmap), is_full)" unification that collapses what would
// otherwise be a five-way tag down to three. Shape (below) recovers the
// conceptual five-way split for diagnostics.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindOne
	KindInterior
)

// Shape is the conceptual node shape: Empty is the nil *Node[V] and
// has no Shape value of its own (callers check for nil first).
type Shape uint8

const (
	ShapeLeaf Shape = iota
	ShapeOne
	ShapeTwo
	ShapeSparse
	ShapeFull
)

func (s Shape) String() string {
	switch s {
	case ShapeLeaf:
		return "Leaf"
	case ShapeOne:
		return "One"
	case ShapeTwo:
		return "Two"
	case ShapeSparse:
		return "Sparse"
	case ShapeFull:
		return "Full"
	default:
		return "invalid"
	}
}

// Node is the tagged trie node. The zero value is not a valid Node; use
// nil *Node[V] for Empty.
type Node[V any] struct {
	kind Kind

	// valid when kind == KindLeaf
	key Key
	val V

	// valid when kind == KindOne
	seg uint
	one *Node[V]

	// valid when kind == KindInterior (Two, Sparse, or Full)
	arr *sparse.Array[*Node[V]]
}

// Shape classifies n for diagnostics. Callers must check n != nil first
// (Empty has no Shape).
func (n *Node[V]) Shape() Shape {
	switch n.kind {
	case KindLeaf:
		return ShapeLeaf
	case KindOne:
		return ShapeOne
	default:
		switch n.arr.Len() {
		case 2:
			return ShapeTwo
		case 64:
			return ShapeFull
		default:
			return ShapeSparse
		}
	}
}

// Key and Val expose a Leaf's payload; callers must know n is a Leaf
// (Shape() == ShapeLeaf).
func (n *Node[V]) Key() Key { return n.key }
func (n *Node[V]) Val() V   { return n.val }

// leaf, one, and interior are the only node constructors; every other
// file in this package builds nodes exclusively through these three (or
// through BuildNode/DropEmpty), so the no-empty-child invariant is
// enforced at a single choke point.
func leaf[V any](key Key, val V) *Node[V] {
	return &Node[V]{kind: KindLeaf, key: key, val: val}
}

func one[V any](seg uint, child *Node[V]) *Node[V] {
	if child == nil {
		panic("hamt256: internal invariant violated: One node built with an Empty child")
	}
	return &Node[V]{kind: KindOne, seg: seg, one: child}
}

func interior[V any](arr *sparse.Array[*Node[V]]) *Node[V] {
	return &Node[V]{kind: KindInterior, arr: arr}
}

// BuildNode returns the minimal node variant holding exactly the
// children in arr:
//
//   - 0 children  -> Empty (nil)
//   - 1 child that is itself a Leaf -> that Leaf, unwrapped
//   - 1 other child -> One, segment inlined from the single set bit
//   - otherwise -> Interior (Two / Sparse / Full by population count)
//
// Panics if arr's bitmap-size invariant does not hold (popcount(bitmap)
// != len(items)): that is a bug in the caller, never a runtime data
// condition.
func BuildNode[V any](arr *sparse.Array[*Node[V]]) *Node[V] {
	if arr.Bits.Count() != arr.Len() {
		panic(fmt.Sprintf("hamt256: BuildNode: bitmap/array length mismatch: popcount=%d len=%d", arr.Bits.Count(), arr.Len()))
	}

	switch arr.Len() {
	case 0:
		return nil
	case 1:
		child := arr.Items[0]
		if child == nil {
			panic("hamt256: BuildNode: Empty child in length-1 array")
		}
		if child.kind == KindLeaf {
			return child
		}
		seg, ok := arr.Bits.FirstSet()
		if !ok {
			panic("hamt256: BuildNode: length-1 array with empty bitmap")
		}
		return one(seg, child)
	default:
		return interior(arr)
	}
}

// DropEmpty is BuildNode's delete-and-intersection counterpart: any
// Empty (nil) entries in arr are filtered out, clearing their bitmap
// bits, before delegating to BuildNode. A length-2 array with one
// Empty side degrades to One or Empty automatically through BuildNode.
func DropEmpty[V any](arr *sparse.Array[*Node[V]]) *Node[V] {
	hasEmpty := false
	for _, c := range arr.Items {
		if c == nil {
			hasEmpty = true
			break
		}
	}
	if !hasEmpty {
		return BuildNode(arr)
	}

	slots := arr.Bits.AsSlice(make([]uint, 0, arr.Len()))
	items := make([]*Node[V], 0, len(arr.Items))
	var bits bitmap.Bitmap

	for i, c := range arr.Items {
		if c == nil {
			continue
		}
		bits = bits.Set(slots[i])
		items = append(items, c)
	}

	return BuildNode(&sparse.Array[*Node[V]]{Bits: bits, Items: items})
}

// childAt returns n's child at trie segment seg, for One and Interior
// nodes. n must not be a Leaf (callers dispatch on Shape/Kind first).
func childAt[V any](n *Node[V], seg uint) (*Node[V], bool) {
	switch n.kind {
	case KindOne:
		if seg == n.seg {
			return n.one, true
		}
		return nil, false
	case KindInterior:
		return n.arr.Get(seg)
	default:
		panic("hamt256: childAt called on a Leaf")
	}
}

// bitsOf returns the populated-segment bitmap of n, for One and
// Interior nodes.
func bitsOf[V any](n *Node[V]) bitmap.Bitmap {
	switch n.kind {
	case KindOne:
		return bitmap.Bitmap(0).Set(n.seg)
	case KindInterior:
		return n.arr.Bits
	default:
		panic("hamt256: bitsOf called on a Leaf")
	}
}

// valueUnchanged reports whether old and updated are the same value,
// used to preserve the leaf-sharing invariant: an update that doesn't
// change the stored value must return the
// original node unchanged so callers keep pointer-sharing unaffected
// subtries.
//
// V is unconstrained (any), so the comparison boxes both sides as
// `any` and recovers from the panic Go raises when comparing two
// interface values whose shared dynamic type is itself non-comparable
// (slice, map, func). That can only produce a false negative (treating
// equal-but-uncomparable values as different, which just forgoes the
// sharing optimization) and never a false positive: a false positive
// would merge two distinct values that merely look equal once boxed.
func valueUnchanged[V any](old, updated V) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return any(old) == any(updated)
}
