// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import (
	"encoding/binary"
	"math/bits"
)

// blockHash hashes a 4-byte little-endian prefix into a value < HashTableSize.
// Grounded on xiaojun207-lz4/block.go's blockHash (Knuth multiplicative hash).
func blockHash(x uint32) uint32 {
	const hasher uint32 = 2654435761
	return x * hasher >> hashShift
}

// blockHashHC is the same hash widened for the HC encoder's larger table.
func blockHashHC(x uint32) uint32 {
	const hasher uint32 = 2654435761
	return x * hasher >> hashShiftHC
}

// matchLength returns the number of bytes a[0:] and b[0:] agree on, up to
// max bytes, scanning 8 bytes at a time via XOR+TrailingZeros64 the way
// xiaojun207-lz4/block.go extends matches, falling back byte-by-byte for
// the final partial word.
func matchLength(a, b []byte, max int) int {
	n := 0
	for n+8 <= max {
		x := binary.LittleEndian.Uint64(a[n:]) ^ binary.LittleEndian.Uint64(b[n:])
		if x != 0 {
			return n + bits.TrailingZeros64(x)>>3
		}
		n += 8
	}
	for n < max && a[n] == b[n] {
		n++
	}
	return n
}
