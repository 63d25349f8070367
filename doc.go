// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

/*
Package lz4 implements the LZ4 block format: a byte-oriented,
dictionary-based compressor and decompressor, independent of any frame
format (magic numbers, checksums, content-size headers — those are a
caller concern).

# Compress

CompressBlock is the fast encoder (level-1-equivalent). hashTable must be
at least FastWorkingMemorySize/4 entries ([]int32). It may be reused
across calls, but it is reset on entry, so no state carries over from one
call to the next (Stream carries state across blocks).

	hashTable := make([]int32, HashTableSize)
	dst := make([]byte, CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, hashTable)

CompressBlockHC runs the high-compression parser (levels 1–12):

	n, err := lz4.CompressBlockHC(src, dst, 9)

# Decompress

UncompressBlock is bounds-checked against adversarial input and returns
ErrInvalidSource on any malformed sequence:

	n, err := lz4.UncompressBlock(compressed, dst)

UncompressBlockUnsafe trusts the caller: it is faster but MUST only be
called on data produced by a conforming encoder, with the exact original
size.

# Streaming

Stream, StreamHC and StreamDecode thread a 64 KiB dictionary window
across successive block calls:

	enc := lz4.NewStream()
	for _, block := range blocks {
		n, _ := enc.CompressBlock(block, dst)
		// ... send dst[:n] ...
	}

None of the types in this package are safe for concurrent use by
multiple goroutines; two distinct Stream values may be driven from two
goroutines with no coordination, since they share no memory.
*/
package lz4
