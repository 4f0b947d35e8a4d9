// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package trie

import "github.com/gaissmai/hamt256/internal/sparse"

// SplitLookup partitions n around key: less holds every
// binding with a key strictly below key, greater holds every binding
// with a key strictly above key, and found/val report key's own
// binding if present. Reuses substructure untouched by the split via
// sparse.Array.LowSlice/HighSlice/Slice.
func SplitLookup[V any](n *Node[V], key Key) (less *Node[V], val V, found bool, greater *Node[V]) {
	path := PathOf(key)
	return splitLookup(n, key, path, 0)
}

func splitLookup[V any](n *Node[V], key Key, path Path, depth int) (less *Node[V], val V, found bool, greater *Node[V]) {
	if n == nil {
		return nil, val, false, nil
	}

	if n.kind == KindLeaf {
		switch n.key.Compare(key) {
		case 0:
			return nil, n.val, true, nil
		case -1:
			return n, val, false, nil
		default:
			return nil, val, false, n
		}
	}

	seg := uint(path[depth])

	if n.kind == KindOne {
		if n.seg < seg {
			return n, val, false, nil
		}
		if n.seg > seg {
			return nil, val, false, n
		}
		childLess, v, ok, childGreater := splitLookup(n.one, key, path, depth+1)
		return wrapOne(n.seg, childLess), v, ok, wrapOne(n.seg, childGreater)
	}

	// Interior: splice the recursive split of the child at seg (if any)
	// into the dense sub-ranges strictly below and strictly above seg,
	// via the array's own splice primitives so unaffected entries keep
	// their backing storage.
	arr := n.arr
	lowRank := arr.Bits.Rank0(seg)
	child, hasChild := arr.Get(seg)

	var childLess, childGreater *Node[V]
	var v V
	var ok bool
	if hasChild {
		childLess, v, ok, childGreater = splitLookup(child, key, path, depth+1)
	}

	var lowArr, highArr *Node[V]

	if childLess != nil {
		lowArr = BuildNode(arr.LowSlice(lowRank, seg, childLess))
	} else if lowRank > 0 {
		lowArr = BuildNode(arr.Slice(0, lowRank-1))
	}

	highP := lowRank
	if !hasChild {
		highP = lowRank - 1
	}
	if childGreater != nil {
		highArr = BuildNode(arr.HighSlice(highP, seg, childGreater))
	} else {
		lo := highP + 1
		if lo <= arr.Len()-1 {
			highArr = BuildNode(arr.Slice(lo, arr.Len()-1))
		}
	}

	return lowArr, v, ok, highArr
}

// wrapOne rebuilds a One-shaped edge around child, or returns nil if
// child is nil.
func wrapOne[V any](seg uint, child *Node[V]) *Node[V] {
	if child == nil {
		return nil
	}
	return BuildNode((&sparse.Array[*Node[V]]{}).InsertAt(seg, child))
}
