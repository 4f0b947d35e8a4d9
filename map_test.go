// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package hamt256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lane(w0, w1, w2, w3 uint64) Key { return Key{w0, w1, w2, w3} }

func TestScenario1InsertLookup(t *testing.T) {
	var m Map[string]
	m = m.Insert(lane(0, 0, 0, 0), "a")

	v, ok := m.Lookup(lane(0, 0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestScenario2InsertToList(t *testing.T) {
	var m Map[string]
	m = m.Insert(lane(0, 0, 0, 0), "a")
	m = m.Insert(lane(0, 0, 0, 1), "b")

	got := m.ToList()
	want := []Entry[string]{
		{Key: lane(0, 0, 0, 0), Val: "a"},
		{Key: lane(0, 0, 0, 1), Val: "b"},
	}
	assert.Equal(t, want, got)
}

func TestScenario3Delete(t *testing.T) {
	var m Map[string]
	m = m.Insert(lane(0, 0, 0, 0), "a")
	m = m.Insert(lane(0, 0, 0, 1), "b")
	m = m.Delete(lane(0, 0, 0, 0))

	require.NoError(t, m.Valid())
	assert.Equal(t, []Entry[string]{{Key: lane(0, 0, 0, 1), Val: "b"}}, m.ToList())
}

func TestScenario4UnionWith(t *testing.T) {
	var a, b Map[int]
	a = a.Insert(lane(0, 0, 0, 0), 1).Insert(lane(0, 0, 0, 2), 2)
	b = b.Insert(lane(0, 0, 0, 2), 20).Insert(lane(0, 0, 0, 3), 30)

	u := a.UnionWith(func(l, r int) int { return l + r }, b)

	want := []Entry[int]{
		{Key: lane(0, 0, 0, 0), Val: 1},
		{Key: lane(0, 0, 0, 2), Val: 22},
		{Key: lane(0, 0, 0, 3), Val: 30},
	}
	assert.Equal(t, want, u.ToList())
}

func TestScenario5IntersectionWith(t *testing.T) {
	var a, b Map[int]
	a = a.Insert(lane(0, 0, 0, 0), 1).Insert(lane(0, 0, 0, 2), 2)
	b = b.Insert(lane(0, 0, 0, 2), 20).Insert(lane(0, 0, 0, 3), 30)

	x := a.IntersectionWith(func(l, r int) int { return l * r }, b)

	assert.Equal(t, []Entry[int]{{Key: lane(0, 0, 0, 2), Val: 40}}, x.ToList())
}

func TestScenario6SplitLookup(t *testing.T) {
	var entries []Entry[int]
	for i := uint64(0); i < 128; i++ {
		entries = append(entries, Entry[int]{Key: lane(i, 0, 0, 0), Val: int(i)})
	}
	m := FromList(entries)

	lo, v, found, hi := m.SplitLookup(lane(64, 0, 0, 0))
	require.True(t, found)
	assert.Equal(t, 64, v)
	assert.Equal(t, 64, lo.Size())
	assert.Equal(t, 63, hi.Size())

	for _, e := range lo.ToList() {
		assert.True(t, e.Key.Less(lane(64, 0, 0, 0)))
	}
	for _, e := range hi.ToList() {
		assert.True(t, lane(64, 0, 0, 0).Less(e.Key))
	}
}

// Law 1: lookup(k, insert(k, v, m)) == Some v.
func TestLawInsertThenLookup(t *testing.T) {
	var m Map[int]
	m = m.Insert(lane(0, 0, 0, 7), 42)
	v, ok := m.Lookup(lane(0, 0, 0, 7))
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

// Law 2: k != k' => lookup(k, insert(k', v, m)) == lookup(k, m).
func TestLawInsertOtherKeyLeavesLookupUnchanged(t *testing.T) {
	var m Map[int]
	m = m.Insert(lane(0, 0, 0, 1), 1)
	before, ok := m.Lookup(lane(0, 0, 0, 2))
	require.False(t, ok)

	m2 := m.Insert(lane(0, 0, 0, 3), 99)
	after, ok := m2.Lookup(lane(0, 0, 0, 2))
	assert.Equal(t, before, after)
	assert.False(t, ok)
}

// Law 3: delete(k, insert(k, v, empty)) == empty.
func TestLawDeleteAfterSingletonInsert(t *testing.T) {
	m := Singleton(lane(0, 0, 0, 1), "x").Delete(lane(0, 0, 0, 1))
	assert.True(t, m.IsEmpty())
	_, ok := m.Lookup(lane(0, 0, 0, 1))
	assert.False(t, ok)
}

// Law 4: to_list(from_list(xs)) is xs deduplicated, last write wins, sorted.
func TestLawFromListToListDedup(t *testing.T) {
	m := FromList([]Entry[int]{
		{Key: lane(0, 0, 0, 5), Val: 1},
		{Key: lane(0, 0, 0, 1), Val: 2},
		{Key: lane(0, 0, 0, 5), Val: 3}, // overwrites the first
	})
	assert.Equal(t, []Entry[int]{
		{Key: lane(0, 0, 0, 1), Val: 2},
		{Key: lane(0, 0, 0, 5), Val: 3},
	}, m.ToList())
}

// Law 5: from_list(to_list(m)) == m.
func TestLawRoundTripThroughList(t *testing.T) {
	var m Map[int]
	for i := uint64(0); i < 40; i++ {
		m = m.Insert(lane(0, 0, 0, i*7), int(i))
	}
	m2 := FromList(m.ToList())
	assert.True(t, Equal(m, m2, func(a, b int) bool { return a == b }))
}

// Law 6: union(m, empty) == m == union(empty, m); union(m, m) == m.
func TestLawUnionIdentityAndIdempotent(t *testing.T) {
	var m, empty Map[int]
	m = m.Insert(lane(0, 0, 0, 1), 1).Insert(lane(0, 0, 0, 2), 2)

	eq := func(a, b int) bool { return a == b }
	assert.True(t, Equal(m.Union(empty), m, eq))
	assert.True(t, Equal(empty.Union(m), m, eq))
	assert.True(t, Equal(m.Union(m), m, eq))
}

// Law 7: size(union_with(f,a,b)) == size(a) + size(b) - size(intersection(a,b)).
func TestLawUnionSizeInclusionExclusion(t *testing.T) {
	var a, b Map[int]
	a = a.Insert(lane(0, 0, 0, 1), 1).Insert(lane(0, 0, 0, 2), 2).Insert(lane(0, 0, 0, 3), 3)
	b = b.Insert(lane(0, 0, 0, 2), 20).Insert(lane(0, 0, 0, 3), 30).Insert(lane(0, 0, 0, 4), 40)

	u := a.UnionWith(func(l, _ int) int { return l }, b)
	i := a.Intersection(b)

	assert.Equal(t, a.Size()+b.Size()-i.Size(), u.Size())
}

// Law 8: split_lookup partitions correctly and reassembles to m.
func TestLawSplitLookupReassembles(t *testing.T) {
	var m Map[int]
	for i := uint64(0); i < 50; i++ {
		m = m.Insert(lane(0, 0, 0, i), int(i))
	}
	lo, v, found, hi := m.SplitLookup(lane(0, 0, 0, 25))
	require.True(t, found)
	assert.Equal(t, 25, v)

	for _, e := range lo.ToList() {
		assert.True(t, e.Key.Less(lane(0, 0, 0, 25)))
	}
	for _, e := range hi.ToList() {
		assert.True(t, lane(0, 0, 0, 25).Less(e.Key))
	}

	rebuilt := lo.Insert(lane(0, 0, 0, 25), v)
	rebuilt = rebuilt.Union(hi)
	assert.True(t, Equal(m, rebuilt, func(a, b int) bool { return a == b }))
}

// Law 9: leapfrog agrees with recursive intersection.
func TestLawLeapfrogAgreesWithIntersection(t *testing.T) {
	var a, b Map[int]
	for i := uint64(0); i < 60; i += 3 {
		a = a.Insert(lane(0, 0, 0, i), int(i))
	}
	for i := uint64(0); i < 60; i += 5 {
		b = b.Insert(lane(0, 0, 0, i), int(i)*10)
	}

	recursive := a.Intersection(b)

	var viaLeapfrog []Entry[int]
	Leapfrog(a, b, func(k Key, l, _ int) {
		viaLeapfrog = append(viaLeapfrog, Entry[int]{Key: k, Val: l})
	})

	assert.Equal(t, recursive.ToList(), viaLeapfrog)
}

// Law 10: fold_asc / fold_desc visit keys in strict order.
func TestLawFoldOrdering(t *testing.T) {
	var m Map[int]
	for i := uint64(0); i < 30; i++ {
		m = m.Insert(lane(0, 0, 0, i*3+1), int(i))
	}

	var asc []Key
	FoldAsc(m, struct{}{}, func(_ struct{}, k Key, _ int) struct{} {
		asc = append(asc, k)
		return struct{}{}
	})
	for i := 1; i < len(asc); i++ {
		assert.True(t, asc[i-1].Less(asc[i]))
	}

	var desc []Key
	FoldDesc(m, struct{}{}, func(_ struct{}, k Key, _ int) struct{} {
		desc = append(desc, k)
		return struct{}{}
	})
	for i := 1; i < len(desc); i++ {
		assert.True(t, desc[i].Less(desc[i-1]))
	}
}

// Law 11: sharing -- inserting an identical value returns the same root.
func TestLawInsertIdenticalValueShares(t *testing.T) {
	type boxed struct{ n int }
	v := &boxed{n: 1}

	var m Map[*boxed]
	m = m.Insert(lane(0, 0, 0, 1), v)
	m2 := m.InsertWith(func(old, _ *boxed) *boxed { return old }, lane(0, 0, 0, 1), &boxed{n: 99})

	assert.Same(t, m.root, m2.root)
}

// Law 12: validity holds after every operation.
func TestLawValidityAfterOps(t *testing.T) {
	var m Map[int]
	for i := uint64(0); i < 200; i++ {
		m = m.Insert(lane(0, 0, 0, i*97), int(i))
		require.NoError(t, m.Valid())
	}
	for i := uint64(0); i < 200; i += 2 {
		m = m.Delete(lane(0, 0, 0, i*97))
		require.NoError(t, m.Valid())
	}
}

func TestFullBranchingCollapse(t *testing.T) {
	// The first path segment of a lane holds only its top 4 bits, so
	// the root can have at most 16 children. Varying only bits 59..54 of
	// the most significant lane (its second path segment) makes every
	// key share the first segment and diverge at the second, so after
	// 64 inserts the root is a One node over a Full node (all 64
	// segments populated by a direct Leaf child).
	var m Map[int]
	for seg := uint64(0); seg < 64; seg++ {
		m = m.Insert(lane(seg<<54, 0, 0, 0), int(seg))
	}
	require.NoError(t, m.Valid())
	assert.Equal(t, 64, m.Size())

	for seg := uint64(0); seg < 63; seg++ {
		m = m.Delete(lane(seg<<54, 0, 0, 0))
		require.NoError(t, m.Valid())
	}
	assert.Equal(t, 1, m.Size())

	m = m.Delete(lane(63<<54, 0, 0, 0))
	assert.True(t, m.IsEmpty())
}

func TestMinMaxView(t *testing.T) {
	var m Map[string]
	m = m.Insert(lane(0, 0, 0, 5), "five")
	m = m.Insert(lane(0, 0, 0, 1), "one")
	m = m.Insert(lane(0, 0, 0, 9), "nine")

	k, v, rest, ok := m.MinView()
	require.True(t, ok)
	assert.Equal(t, lane(0, 0, 0, 1), k)
	assert.Equal(t, "one", v)
	require.NoError(t, rest.Valid())

	k, v, rest, ok = m.MaxView()
	require.True(t, ok)
	assert.Equal(t, lane(0, 0, 0, 9), k)
	assert.Equal(t, "nine", v)
	require.NoError(t, rest.Valid())
}

func TestEmptyMapBoundaries(t *testing.T) {
	var m Map[int]
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Size())
	_, ok := m.Lookup(lane(0, 0, 0, 0))
	assert.False(t, ok)
	_, _, ok = m.LookupMin()
	assert.False(t, ok)
	assert.Empty(t, m.ToList())
	require.NoError(t, m.Valid())
}

func TestDebugStringAndHistogram(t *testing.T) {
	var m Map[int]
	for i := uint64(0); i < 70; i++ {
		m = m.Insert(lane(0, 0, 0, i), int(i))
	}
	assert.NotEmpty(t, m.DebugString())

	// Build a second map whose shape is fully known: 7 keys with
	// distinct first path segments collapse into a single root
	// Interior node holding exactly 7 leaf children, so bucket 7 must
	// read back exactly 1 and every other bucket exactly 0.
	var shaped Map[int]
	for v := uint64(0); v < 7; v++ {
		shaped = shaped.Insert(lane(v<<60, 0, 0, 0), int(v))
	}

	h := shaped.Histogram()
	assert.Equal(t, 1, h[7])
	for c, count := range h {
		if c != 7 {
			assert.Zero(t, count, "unexpected node at child-count bucket %d", c)
		}
	}
}

func TestRestrictAndWithoutKeys(t *testing.T) {
	var m Map[int]
	for i := uint64(0); i < 10; i++ {
		m = m.Insert(lane(0, 0, 0, i), int(i))
	}

	even := m.RestrictKeys(func(k Key) bool { return k[3]%2 == 0 })
	for _, e := range even.ToList() {
		assert.Equal(t, uint64(0), e.Key[3]%2)
	}

	odd := m.WithoutKeys(func(k Key) bool { return k[3]%2 == 0 })
	assert.Equal(t, m.Size(), even.Size()+odd.Size())
}
