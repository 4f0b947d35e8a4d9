// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

package hamt256

import "github.com/gaissmai/hamt256/internal/trie"

// Key is a 256-bit map key: four 64-bit lanes, lane 0 most significant.
// Keys order lexicographically across the lane sequence. Construct one
// directly as a [4]uint64 literal, or use the keyadapter package to
// derive one from a domain-specific key (a string, an integer, an
// arbitrary byte slice).
type Key = trie.Key
