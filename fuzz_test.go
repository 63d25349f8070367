// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import (
	"bytes"
	"testing"
)

// FuzzRoundtripFast checks that any input compresses and decompresses
// back to itself through the fast encoder and safe decoder.
func FuzzRoundtripFast(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte("Hello, World!"))
	f.Add([]byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"))
	f.Add([]byte("ABCDABCDABCDABCDABCDABCDABCDABCDABCDABCD"))
	f.Add(bytes.Repeat([]byte{0xff}, 100))
	f.Add(bytes.Repeat([]byte("The quick brown fox. "), 10))

	seq := make([]byte, 256)
	for i := range seq {
		seq[i] = byte(i)
	}
	f.Add(seq)

	hashTable := make([]int32, HashTableSize)

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 64*1024 {
			return
		}

		dst := make([]byte, CompressBlockBound(len(input)))
		n, err := CompressBlock(input, dst, hashTable)
		if err != nil {
			t.Fatalf("CompressBlock failed: %v", err)
		}
		if n == 0 && len(input) != 0 {
			t.Fatalf("CompressBlock returned 0 despite a CompressBlockBound-sized dst")
		}

		out := make([]byte, len(input))
		m, err := UncompressBlock(dst[:n], out)
		if err != nil {
			t.Fatalf("UncompressBlock failed: %v", err)
		}
		if !bytes.Equal(input, out[:m]) {
			t.Fatalf("roundtrip mismatch: input len=%d, output len=%d", len(input), m)
		}
	})
}

// FuzzRoundtripHC is FuzzRoundtripFast's HC-encoder counterpart.
func FuzzRoundtripHC(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("Hello, World!"))
	f.Add(bytes.Repeat([]byte("repeat me "), 50))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 64*1024 {
			return
		}

		dst := make([]byte, CompressBlockBound(len(input)))
		n, err := CompressBlockHC(input, dst, HCLevelDefault)
		if err != nil {
			t.Fatalf("CompressBlockHC failed: %v", err)
		}
		if n == 0 && len(input) != 0 {
			t.Fatalf("CompressBlockHC returned 0 despite a CompressBlockBound-sized dst")
		}

		out := make([]byte, len(input))
		m, err := UncompressBlock(dst[:n], out)
		if err != nil {
			t.Fatalf("UncompressBlock failed: %v", err)
		}
		if !bytes.Equal(input, out[:m]) {
			t.Fatalf("roundtrip mismatch: input len=%d, output len=%d", len(input), m)
		}
	})
}

// FuzzDecompressNoPanic checks that the safe decoder handles arbitrary
// input without panicking; errors are the expected outcome for garbage.
func FuzzDecompressNoPanic(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x10, 'a'})
	f.Add([]byte{0x35, 'a', 'b', 'c', 0x03, 0x00, 0x00})

	f.Add([]byte{})
	f.Add([]byte{0xff})
	f.Add([]byte{0xff, 0xff, 0xff})
	f.Add([]byte{0x20})
	f.Add([]byte{0x10, 0x00})
	f.Add([]byte{0x40, 0x00})

	f.Fuzz(func(t *testing.T, input []byte) {
		output := make([]byte, 64*1024)
		_, _ = UncompressBlock(input, output)
	})
}
