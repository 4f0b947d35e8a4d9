// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

// Package keyset supplies the concrete key-set type used by
// [hamt256.Map.RestrictKeys] and [hamt256.Map.WithoutKeys]: a
// [set3.Set3] of [hamt256.Key], the same container TomTonic-multimap's
// MultiMap uses for its value sets.
package keyset

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/gaissmai/hamt256"
)

// KeySet is a mutable set of [hamt256.Key]. Build one with [New] or
// [FromSlice], then pass it to [Restrict] or [Without].
type KeySet = *set3.Set3[hamt256.Key]

// New returns an empty KeySet.
func New() KeySet {
	return set3.Empty[hamt256.Key]()
}

// FromSlice returns a KeySet holding exactly the keys in ks.
func FromSlice(ks []hamt256.Key) KeySet {
	s := set3.EmptyWithCapacity[hamt256.Key](uint32(len(ks)))
	for _, k := range ks {
		s.Add(k)
	}
	return s
}

// FromMap returns a KeySet holding every key bound in m, the way
// [TomTonic-multimap]'s GetAllValues collects every value across all
// keys into one [set3.Set3].
func FromMap[V any](m hamt256.Map[V]) KeySet {
	s := set3.EmptyWithCapacity[hamt256.Key](uint32(m.Size()))
	m.TraverseWithKey(func(k hamt256.Key, _ V) {
		s.Add(k)
	})
	return s
}

// Restrict returns the subset of m holding only keys present in set.
func Restrict[V any](m hamt256.Map[V], set KeySet) hamt256.Map[V] {
	return m.RestrictKeys(set.Contains)
}

// Without returns the subset of m holding only keys absent from set.
func Without[V any](m hamt256.Map[V], set KeySet) hamt256.Map[V] {
	return m.WithoutKeys(set.Contains)
}

// Union returns a new KeySet holding every key in a or b, without
// mutating either, mirroring [set3.Set3.Clone] followed by
// [set3.Set3.AddAll] as TomTonic-multimap's GetAllValues composes sets.
func Union(a, b KeySet) KeySet {
	out := a.Clone()
	out.AddAll(b)
	return out
}
