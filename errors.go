// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrInvalidSource is returned by the safe decoder for any malformed
	// input: truncated token stream, a length-extension overflow, a zero
	// match offset, an offset reaching before the start of output and
	// dictionary, or a match/literal length that would overrun its
	// buffer. The decoder reports no more detail than this; partial
	// output already written to dst is not guaranteed usable.
	ErrInvalidSource = errors.New("lz4: invalid or corrupt source block")

	// ErrShortBuffer is returned by the trusted-input fast decoder when
	// the caller declares a decompressed size larger than the supplied
	// destination buffer.
	ErrShortBuffer = errors.New("lz4: destination buffer too short")

	// ErrShortHashTable is returned when a caller-supplied hash table
	// scratch slice is smaller than HashTableSize.
	ErrShortHashTable = errors.New("lz4: hash table too small")

	// ErrInputTooLarge is returned when src exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("lz4: input exceeds MaxInputSize")
)
