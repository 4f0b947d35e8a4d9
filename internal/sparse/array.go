// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

// Package sparse implements a generic, persistent sparse array with
// popcount compression: every operation returns a new array, the input
// is left untouched, and unaffected elements are shared (same backing
// slice) whenever an operation can avoid a copy.
package sparse

import (
	"fmt"
	"slices"

	"github.com/gaissmai/hamt256/internal/bitmap"
)

// Array is an immutable sparse array over up to 64 slots with payload T.
//
// Bits and Items are coupled: len(Items) always equals Bits.Count().
// There is no exported way to desynchronize them; every mutator
// returns a new, internally consistent Array.
type Array[T any] struct {
	Bits  bitmap.Bitmap
	Items []T
}

// Get returns the value at slot i, if populated.
func (a *Array[T]) Get(i uint) (value T, ok bool) {
	if a.Bits.Test(i) {
		return a.Items[a.Bits.Rank0(i)], true
	}
	return
}

// MustGet returns the value at slot i. The caller must have already
// established a.Bits.Test(i); behavior is undefined (it may panic via
// an out-of-range index, it will never silently misbehave) otherwise.
func (a *Array[T]) MustGet(i uint) T {
	return a.Items[a.Bits.Rank0(i)]
}

// Len is the number of populated slots.
func (a *Array[T]) Len() int {
	return len(a.Items)
}

// Copy returns a shallow clone of a: a new Array with its own backing
// slice, but with elements copied by assignment (no deep clone of T).
func (a *Array[T]) Copy() *Array[T] {
	if a == nil {
		return nil
	}
	return &Array[T]{
		Bits:  a.Bits,
		Items: append(a.Items[:0:0], a.Items...),
	}
}

// InsertAt returns a new array with value inserted at slot i. i must not
// already be populated; use UpdateAt to overwrite an existing slot.
//
// Panics naming the operation and the offending slot if i is already
// populated or out of the [0,64) slot range: a malformed call here
// indicates a bug in the caller (a missing Bits.Test check), not a
// runtime data condition.
func (a *Array[T]) InsertAt(i uint, value T) *Array[T] {
	if i >= 64 {
		panic(fmt.Sprintf("sparse.Array.InsertAt: slot %d out of range [0,64)", i))
	}
	if a.Bits.Test(i) {
		panic(fmt.Sprintf("sparse.Array.InsertAt: slot %d already populated", i))
	}

	rank := a.Bits.Rank0(i)
	items := make([]T, len(a.Items)+1)
	copy(items, a.Items[:rank])
	items[rank] = value
	copy(items[rank+1:], a.Items[rank:])

	return &Array[T]{Bits: a.Bits.Set(i), Items: items}
}

// RemoveAt returns a new array with slot i removed. i must be populated.
//
// Panics naming the operation, the slot and the populated slots if i is
// not populated.
func (a *Array[T]) RemoveAt(i uint) *Array[T] {
	if !a.Bits.Test(i) {
		panic(fmt.Sprintf("sparse.Array.RemoveAt: slot %d not populated, populated slots %v", i, a.Bits.AsSlice(nil)))
	}

	rank := a.Bits.Rank0(i)
	items := make([]T, len(a.Items)-1)
	copy(items, a.Items[:rank])
	copy(items[rank:], a.Items[rank+1:])

	return &Array[T]{Bits: a.Bits.Clear(i), Items: items}
}

// UpdateAt returns a new array with the value at slot i replaced. i must
// already be populated; length is unchanged.
//
// Panics naming the operation, the slot and the populated slots if i is
// not populated.
func (a *Array[T]) UpdateAt(i uint, value T) *Array[T] {
	if !a.Bits.Test(i) {
		panic(fmt.Sprintf("sparse.Array.UpdateAt: slot %d not populated, populated slots %v", i, a.Bits.AsSlice(nil)))
	}

	items := slices.Clone(a.Items)
	items[a.Bits.Rank0(i)] = value

	return &Array[T]{Bits: a.Bits, Items: items}
}

// Slice returns the inclusive sub-array of dense positions [lo,hi],
// restricted to the bitmap slots that fall in that dense range. Returns
// an empty array when hi < lo.
//
// When lo==0 and hi==len(a.Items)-1 the same Array is returned
// (pointer-shared).
func (a *Array[T]) Slice(lo, hi int) *Array[T] {
	if hi < lo {
		return &Array[T]{}
	}
	if lo == 0 && hi == len(a.Items)-1 {
		return a
	}
	items := make([]T, hi-lo+1)
	copy(items, a.Items[lo:hi+1])
	return &Array[T]{Bits: bitmapRange(a.Bits, lo, hi), Items: items}
}

// bitmapRange isolates exactly the set bits of bits whose dense rank
// falls in [lo,hi]; used to recompute the bitmap word for a dense
// sub-range without re-deriving it from raw slot numbers.
func bitmapRange(bits bitmap.Bitmap, lo, hi int) bitmap.Bitmap {
	var out bitmap.Bitmap
	rank := 0
	for b := bits; b != 0; {
		slot, _ := b.FirstSet()
		if rank >= lo && rank <= hi {
			out = out.Set(slot)
		}
		rank++
		b = b.Clear(slot)
	}
	return out
}

// LowSlice copies dense positions [0,p) from a and appends x at dense
// position p, yielding a new array of length p+1. p is clamped to
// [0,len(a.Items)]. slot is the bitmap slot that x occupies.
func (a *Array[T]) LowSlice(p int, slot uint, x T) *Array[T] {
	if p < 0 {
		p = 0
	}
	if p > len(a.Items) {
		p = len(a.Items)
	}

	items := make([]T, p+1)
	copy(items, a.Items[:p])
	items[p] = x

	bits := bitmapRange(a.Bits, 0, p-1).Set(slot)
	return &Array[T]{Bits: bits, Items: items}
}

// HighSlice writes x at dense position 0, then copies dense positions
// [p+1,len(a.Items)) from a, yielding a new array. p is clamped to
// [-1,len(a.Items)-1]. slot is the bitmap slot that x occupies.
func (a *Array[T]) HighSlice(p int, slot uint, x T) *Array[T] {
	if p < -1 {
		p = -1
	}
	if p > len(a.Items)-1 {
		p = len(a.Items) - 1
	}

	n := len(a.Items) - p - 1
	items := make([]T, n+1)
	items[0] = x
	copy(items[1:], a.Items[p+1:])

	bits := bitmapRange(a.Bits, p+1, len(a.Items)-1).Set(slot)
	return &Array[T]{Bits: bits, Items: items}
}
