// Copyright (c) 2026 The hamt256 Authors
// SPDX-License-Identifier: MIT

// Package keyadapter converts domain-specific keys into [hamt256.Key],
// the trie's fixed 256-bit key type. It is a thin typed adapter, kept
// outside the core trie package: a consumer with cryptographic hashes,
// strings, or machine integers as its natural key space builds a
// [hamt256.Key] here and hands it to [hamt256.Map] directly.
package keyadapter

import (
	"encoding/binary"
	"strconv"

	"github.com/dolthub/maphash"
	"golang.org/x/text/unicode/norm"

	"github.com/gaissmai/hamt256"
)

// hasher0..hasher3 are four independently seeded string hashers, one
// per lane of the derived Key. Deriving each from the previous via
// [maphash.NewSeed] (rather than four calls to [maphash.NewHasher])
// keeps their seeds uncorrelated without depending on the process's
// entropy source four separate times.
var (
	hasher0 = maphash.NewHasher[string]()
	hasher1 = maphash.NewSeed(hasher0)
	hasher2 = maphash.NewSeed(hasher1)
	hasher3 = maphash.NewSeed(hasher2)
)

// FromBytes folds an arbitrary-length byte slice (a cryptographic
// hash, say) into a [hamt256.Key] by hashing it four times, once per
// lane, with four independently seeded hash functions. Equal byte
// slices always produce equal keys;
// unequal byte slices produce equal keys only in the astronomically
// unlikely case of a 256-bit hash collision, same as using the bytes
// of a cryptographic digest directly.
func FromBytes(b []byte) hamt256.Key {
	s := string(b)
	return hamt256.Key{
		hasher0.Hash(s),
		hasher1.Hash(s),
		hasher2.Hash(s),
		hasher3.Hash(s),
	}
}

// FromString folds s into a [hamt256.Key], after normalizing it to
// Unicode NFC so that canonically equivalent strings (e.g. a
// precomposed accented character vs. the base letter plus a combining
// mark) always produce the same key, exactly as
// TomTonic-multimap's Key.FromString normalizes before encoding.
func FromString(s string) hamt256.Key {
	return FromBytes([]byte(norm.NFC.String(s)))
}

// order-preserving offset: shifts the signed 64-bit range onto
// unsigned 64-bit so that lexicographic (and hence [hamt256.Key].Less)
// comparison of the encoded lane matches numeric order, the same
// trick TomTonic-multimap's FromInt64/FromUint64 use.
const int64Offset = uint64(1) << 63

// FromInt64 packs i into the low lane of a [hamt256.Key], offset so
// that key order matches numeric order: FromInt64(a).Less(FromInt64(b))
// iff a < b. The upper three lanes are zero; callers mixing integer
// keys with [FromBytes] or [FromString] output in one [hamt256.Map]
// are responsible for keeping the two key spaces from colliding, the
// same caveat as mixing key types in an ordinary Go map.
func FromInt64(i int64) hamt256.Key {
	return hamt256.Key{0, 0, 0, uint64(i) + int64Offset}
}

// FromUint64 packs u into the low lane of a [hamt256.Key], offset by
// the same constant as FromInt64 so that FromInt64 and FromUint64
// outputs stay comparable (FromInt64(0) == FromUint64(0)).
func FromUint64(u uint64) hamt256.Key {
	return hamt256.Key{0, 0, 0, u + int64Offset}
}

// FromInt is FromInt64 for the platform int type.
func FromInt(i int) hamt256.Key { return FromInt64(int64(i)) }

// FromUint is FromUint64 for the platform uint type.
func FromUint(u uint) hamt256.Key { return FromUint64(uint64(u)) }

// FromBigEndianHash packs a byte-slice digest (e.g. a sha256.Sum256
// output, or any fixed 32-byte cryptographic hash) into a
// [hamt256.Key] by interpreting it as four big-endian uint64 lanes.
// Unlike FromBytes, which destroys the input's own ordering by
// hashing it, this reproduces the digest's natural lexicographic
// order: useful when the caller already has a uniformly distributed
// fixed-width key and wants Key comparisons to mean "digest
// comparison" rather than "hash-of-hash comparison". Panics if digest
// is not exactly 32 bytes.
func FromBigEndianHash(digest []byte) hamt256.Key {
	if len(digest) != 32 {
		panic("keyadapter: FromBigEndianHash: digest must be exactly 32 bytes, got " + strconv.Itoa(len(digest)))
	}
	var k hamt256.Key
	for i := range k {
		k[i] = binary.BigEndian.Uint64(digest[i*8 : i*8+8])
	}
	return k
}
