// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

// Package hamt256 implements a persistent, ordered map keyed by a fixed
// 256-bit [Key]. It is a hash-array-mapped trie indexed directly by the
// raw bits of the key rather than by a hash: the key's four 64-bit
// lanes are split into 44 six-bit path segments, one segment consumed
// per trie level.
//
// Every operation is copy-on-write: it returns a new [Map] and never
// mutates the one it was called on, sharing every subtrie the update
// didn't touch. Nodes are collapsed to their minimal shape by smart
// constructors (see internal/trie), so a [Map] with one entry costs one
// allocation and a [Map] that differs from another by a single key
// shares all but the path down to that key.
//
// The zero value of [Map] is the empty map, ready to use.
package hamt256
