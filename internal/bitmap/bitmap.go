// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

// Package bitmap implements a single-word presence bitmap over 64
// slots, the index space of one 6-bit trie segment.
//
// Studied [github.com/gaissmai/bart]'s internal/bitset package (which
// in turn studied [github.com/bits-and-blooms/bitset]) and narrowed it
// down from a multi-word, growable set to the single uint64 this
// package's 64-wide segment space always fits in.
package bitmap

import "math/bits"

// Bitmap is a set of up to 64 slots, bit i set means slot i is populated.
type Bitmap uint64

// FullMask has all 64 slots set, the bitmap of a Full node.
const FullMask Bitmap = ^Bitmap(0)

// lessMask[i] has bits 0..i-1 set.
// greaterMask[i] has bits i+1..63 set.
//
// Precomputed once, so Split needs no shifts per call.
var (
	lessMask    [64]Bitmap
	greaterMask [64]Bitmap
)

func init() {
	for i := range 64 {
		lessMask[i] = Bitmap(1)<<uint(i) - 1
		if i == 63 {
			greaterMask[i] = 0
		} else {
			greaterMask[i] = ^Bitmap(0) << uint(i+1)
		}
	}
}

// Test reports whether slot i is populated.
func (b Bitmap) Test(i uint) bool {
	return b&(Bitmap(1)<<i) != 0
}

// Set returns b with slot i populated.
func (b Bitmap) Set(i uint) Bitmap {
	return b | Bitmap(1)<<i
}

// Clear returns b with slot i cleared.
func (b Bitmap) Clear(i uint) Bitmap {
	return b &^ (Bitmap(1) << i)
}

// Count is the population count (number of populated slots).
func (b Bitmap) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Rank0 is the sparse (dense-array) index of slot i within the items
// backing this bitmap: popcount(b & (1<<i - 1)).
//
// It is only meaningful when Test(i) is true; callers that want the
// position at which i *would* be inserted can call Rank0 regardless of
// Test, the result is the same "how many populated slots precede i".
func (b Bitmap) Rank0(i uint) int {
	return bits.OnesCount64(uint64(b) & (uint64(1)<<i - 1))
}

// IndexFromSegment is Rank0 under another name, used at call sites that
// think in terms of "the dense array index for trie segment seg".
func (b Bitmap) IndexFromSegment(seg uint) int {
	return b.Rank0(seg)
}

// Split partitions b around slot i into (less, bit set at i, greater).
func (b Bitmap) Split(i uint) (less Bitmap, isSet bool, greater Bitmap) {
	return b & lessMask[i], b.Test(i), b & greaterMask[i]
}

// FirstSet returns the lowest populated slot, if any.
func (b Bitmap) FirstSet() (slot uint, ok bool) {
	if b == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(uint64(b))), true
}

// LastSet returns the highest populated slot, if any.
func (b Bitmap) LastSet() (slot uint, ok bool) {
	if b == 0 {
		return 0, false
	}
	return 63 - uint(bits.LeadingZeros64(uint64(b))), true
}

// AsSlice appends every populated slot, ascending, into buf and returns it.
func (b Bitmap) AsSlice(buf []uint) []uint {
	for b != 0 {
		slot := uint(bits.TrailingZeros64(uint64(b)))
		buf = append(buf, slot)
		b &= b - 1 // clear lowest set bit
	}
	return buf
}
