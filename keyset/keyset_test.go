// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package keyset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/hamt256"
)

func key(n uint64) hamt256.Key { return hamt256.Key{0, 0, 0, n} }

func buildMap() hamt256.Map[int] {
	var m hamt256.Map[int]
	for i := uint64(0); i < 5; i++ {
		m = m.Insert(key(i), int(i))
	}
	return m
}

func TestRestrictAndWithout(t *testing.T) {
	m := buildMap()
	keep := FromSlice([]hamt256.Key{key(1), key(3)})

	restricted := Restrict(m, keep)
	require.Equal(t, 2, restricted.Size())
	_, ok := restricted.Lookup(key(1))
	assert.True(t, ok)
	_, ok = restricted.Lookup(key(0))
	assert.False(t, ok)

	without := Without(m, keep)
	require.Equal(t, 3, without.Size())
	_, ok = without.Lookup(key(1))
	assert.False(t, ok)
	_, ok = without.Lookup(key(0))
	assert.True(t, ok)
}

func TestFromMapRoundTrips(t *testing.T) {
	m := buildMap()
	s := FromMap(m)
	assert.True(t, s.Contains(key(0)))
	assert.True(t, s.Contains(key(4)))
	assert.False(t, s.Contains(key(99)))

	full := Restrict(m, s)
	assert.Equal(t, m.Size(), full.Size())
}

func TestUnion(t *testing.T) {
	a := FromSlice([]hamt256.Key{key(1), key(2)})
	b := FromSlice([]hamt256.Key{key(2), key(3)})

	u := Union(a, b)
	assert.True(t, u.Contains(key(1)))
	assert.True(t, u.Contains(key(2)))
	assert.True(t, u.Contains(key(3)))

	// a itself is untouched by Union.
	assert.False(t, a.Contains(key(3)))
}
