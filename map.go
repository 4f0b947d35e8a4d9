// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package hamt256

import (
	"github.com/gaissmai/hamt256/internal/trie"
)

// Map is a persistent, ordered map from [Key] to V. The zero value is
// the empty map.
type Map[V any] struct {
	root *trie.Node[V]
}

// Empty returns the empty map. Equivalent to the zero value; provided
// for readability at call sites that build a map incrementally.
func Empty[V any]() Map[V] {
	return Map[V]{}
}

// Singleton returns a map with exactly one binding, key -> val.
func Singleton[V any](key Key, val V) Map[V] {
	return Map[V]{root: trie.Insert[V](nil, key, val)}
}

// IsEmpty reports whether m has no bindings.
func (m Map[V]) IsEmpty() bool {
	return m.root == nil
}

// Size returns the number of bindings in m.
func (m Map[V]) Size() int {
	return trie.Size(m.root)
}

// Lookup returns the value bound to key, if any.
func (m Map[V]) Lookup(key Key) (val V, ok bool) {
	return trie.Lookup(m.root, key)
}

// LookupMin returns the binding with the smallest key in m, if m is
// non-empty.
func (m Map[V]) LookupMin() (key Key, val V, ok bool) {
	return trie.LookupMin(m.root)
}

// LookupMax returns the binding with the largest key in m, if m is
// non-empty.
func (m Map[V]) LookupMax() (key Key, val V, ok bool) {
	return trie.LookupMax(m.root)
}

// MinView removes and returns the smallest-key binding in m, along with
// the map that remains.
func (m Map[V]) MinView() (key Key, val V, rest Map[V], ok bool) {
	k, v, r, ok := trie.MinView(m.root)
	return k, v, Map[V]{root: r}, ok
}

// MaxView removes and returns the largest-key binding in m, along with
// the map that remains.
func (m Map[V]) MaxView() (key Key, val V, rest Map[V], ok bool) {
	k, v, r, ok := trie.MaxView(m.root)
	return k, v, Map[V]{root: r}, ok
}

// Insert returns a new map with key bound to val, replacing any prior
// binding for key.
func (m Map[V]) Insert(key Key, val V) Map[V] {
	return Map[V]{root: trie.Insert(m.root, key, val)}
}

// InsertWith returns a new map with key bound to val, or to
// combine(old, val) if key was already bound.
func (m Map[V]) InsertWith(combine func(old, new V) V, key Key, val V) Map[V] {
	return Map[V]{root: trie.InsertWith(m.root, key, val, combine)}
}

// InsertWithKey is InsertWith with the colliding key also passed to
// combine.
func (m Map[V]) InsertWithKey(combine func(key Key, old, new V) V, key Key, val V) Map[V] {
	return Map[V]{root: trie.InsertWith(m.root, key, val, func(old, new V) V {
		return combine(key, old, new)
	})}
}

// Delete returns a new map with key removed, or m unchanged if key was
// absent.
func (m Map[V]) Delete(key Key) Map[V] {
	return Map[V]{root: trie.Delete(m.root, key)}
}

// Union returns the union of m and other, preferring other's value on
// collisions.
func (m Map[V]) Union(other Map[V]) Map[V] {
	return Map[V]{root: trie.Union(m.root, other.root)}
}

// UnionWith returns the union of m and other, combining colliding
// values with combine(mVal, otherVal).
func (m Map[V]) UnionWith(combine func(left, right V) V, other Map[V]) Map[V] {
	return Map[V]{root: trie.UnionWithKey(m.root, other.root, func(_ Key, l, r V) V {
		return combine(l, r)
	})}
}

// UnionWithKey is UnionWith with the colliding key also passed to
// combine.
func (m Map[V]) UnionWithKey(combine func(key Key, left, right V) V, other Map[V]) Map[V] {
	return Map[V]{root: trie.UnionWithKey(m.root, other.root, combine)}
}

// Intersection returns the bindings present in both m and other,
// keeping m's values.
func (m Map[V]) Intersection(other Map[V]) Map[V] {
	return Map[V]{root: trie.Intersection(m.root, other.root)}
}

// IntersectionWith returns the intersection of m and other, combining
// colliding values with combine(mVal, otherVal).
func (m Map[V]) IntersectionWith(combine func(left, right V) V, other Map[V]) Map[V] {
	return Map[V]{root: trie.IntersectionWith(m.root, other.root, combine)}
}

// IntersectionWithKey is IntersectionWith with the colliding key also
// passed to combine.
func (m Map[V]) IntersectionWithKey(combine func(key Key, left, right V) V, other Map[V]) Map[V] {
	return Map[V]{root: trie.IntersectionWithKey(m.root, other.root, combine)}
}

// FoldOverIntersection folds f over every key present in both m and
// other, in ascending key order, without materializing the
// intersection.
func FoldOverIntersection[V, W, R any](m Map[V], other Map[W], acc R, f func(acc R, key Key, left V, right W) R) R {
	return trie.FoldOverIntersection(m.root, other.root, acc, f)
}

// IntersectionWhen is the general cross-type intersection: keep is
// called for every key present in both m and other; a false second
// return value drops the key from the result.
func IntersectionWhen[V, W, R any](m Map[V], other Map[W], keep func(key Key, left V, right W) (R, bool)) Map[R] {
	return Map[R]{root: trie.IntersectionWhen(m.root, other.root, keep)}
}

// RestrictKeys returns the subset of m holding only keys for which keep
// returns true.
func (m Map[V]) RestrictKeys(keep func(Key) bool) Map[V] {
	return Map[V]{root: trie.RestrictKeys(m.root, keep)}
}

// WithoutKeys returns the subset of m holding only keys for which
// remove returns false.
func (m Map[V]) WithoutKeys(remove func(Key) bool) Map[V] {
	return Map[V]{root: trie.WithoutKeys(m.root, remove)}
}

// SplitLookup partitions m around key: less holds every binding with a
// key strictly below key, greater holds every binding with a key
// strictly above key, and found/val report key's own binding if
// present.
func (m Map[V]) SplitLookup(key Key) (less Map[V], val V, found bool, greater Map[V]) {
	l, v, ok, g := trie.SplitLookup(m.root, key)
	return Map[V]{root: l}, v, ok, Map[V]{root: g}
}

// Lub (least upper bound) returns the smallest binding in m whose key
// is >= key, together with rest: everything in m strictly greater than
// the returned key.
func (m Map[V]) Lub(key Key) (found Key, val V, rest Map[V], ok bool) {
	k, v, r, ok := trie.Lub(m.root, key)
	return k, v, Map[V]{root: r}, ok
}

// Leapfrog calls f for every key present in both m and other, in
// ascending key order, via the leapfrog-join scan rather than a
// recursive structural intersection.
func Leapfrog[V, W any](m Map[V], other Map[W], f func(key Key, left V, right W)) {
	trie.Leapfrog(m.root, other.root, f)
}

// Intersect reports whether m and other share at least one key.
func Intersect[V, W any](m Map[V], other Map[W]) bool {
	return trie.Intersect(m.root, other.root)
}

// MaxMinOf returns max(min_key(m), min_key(other)), or ok==false if
// either map is empty.
func MaxMinOf[V, W any](m Map[V], other Map[W]) (Key, bool) {
	return trie.MaxMinOf(m.root, other.root)
}

// FoldAsc folds f over every binding in m in ascending key order.
func FoldAsc[V, R any](m Map[V], acc R, f func(acc R, key Key, val V) R) R {
	return trie.FoldAsc(m.root, acc, f)
}

// FoldDesc folds f over every binding in m in descending key order.
func FoldDesc[V, R any](m Map[V], acc R, f func(acc R, key Key, val V) R) R {
	return trie.FoldDesc(m.root, acc, f)
}

// TraverseWithKey calls f for every binding in m in ascending key
// order, for side effects only.
func (m Map[V]) TraverseWithKey(f func(key Key, val V)) {
	trie.TraverseWithKey(m.root, f)
}

// MapWithKey returns a new map with f applied to every value, keys
// unchanged.
func MapWithKey[V, R any](m Map[V], f func(key Key, val V) R) Map[R] {
	return Map[R]{root: trie.MapWithKey(m.root, f)}
}

// Entry is a single key/value pair, the element type of [Map.ToList]
// and [FromList].
type Entry[V any] struct {
	Key Key
	Val V
}

// ToList returns every binding in m, ascending by key.
func (m Map[V]) ToList() []Entry[V] {
	out := make([]Entry[V], 0, m.Size())
	trie.TraverseWithKey(m.root, func(k Key, v V) {
		out = append(out, Entry[V]{Key: k, Val: v})
	})
	return out
}

// FromList builds a map from entries, last-write-wins on duplicate
// keys, in slice order.
func FromList[V any](entries []Entry[V]) Map[V] {
	var root *trie.Node[V]
	for _, e := range entries {
		root = trie.Insert(root, e.Key, e.Val)
	}
	return Map[V]{root: root}
}

// Equal reports whether m and other hold the same bindings, comparing
// values with valEqual.
func Equal[V any](m, other Map[V], valEqual func(a, b V) bool) bool {
	if m.Size() != other.Size() {
		return false
	}
	a, b := m.ToList(), other.ToList()
	for i := range a {
		if a[i].Key != b[i].Key || !valEqual(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}

// Valid checks every structural invariant of m's trie (no Empty
// children, minimal node shapes, bitmap/items length agreement,
// strictly increasing keys), returning the first violation found, or
// nil if m is well-formed. Intended for tests and debugging, not for
// validating untrusted input: a [Map] built exclusively through this
// package's operations is always valid.
func (m Map[V]) Valid() error {
	return trie.Valid(m.root)
}

// Histogram reports, for every node in m's trie, how many nodes hold
// each child count: the result's index c holds the number of nodes
// with exactly c children, for c in 1..64.
func (m Map[V]) Histogram() [65]int {
	return trie.Histogram(m.root)
}

// DebugString renders m's trie structure as an indented tree, for
// interactive debugging.
func (m Map[V]) DebugString() string {
	return trie.DebugString(m.root)
}
