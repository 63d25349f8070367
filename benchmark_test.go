// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lz4 benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkCompressBlock(b *testing.B) {
	hashTable := make([]int32, HashTableSize)
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			dst := make([]byte, CompressBlockBound(len(inputData)))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := CompressBlock(inputData, dst, hashTable); err != nil {
					b.Fatalf("CompressBlock failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkCompressBlockHC(b *testing.B) {
	levels := []int{1, 6, 9, 12}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				dst := make([]byte, CompressBlockBound(len(inputData)))
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := CompressBlockHC(inputData, dst, level); err != nil {
						b.Fatalf("CompressBlockHC failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkUncompressBlock(b *testing.B) {
	hashTable := make([]int32, HashTableSize)
	for inputName, inputData := range benchmarkInputSets() {
		dst := make([]byte, CompressBlockBound(len(inputData)))
		n, err := CompressBlock(inputData, dst, hashTable)
		if err != nil {
			b.Fatalf("setup CompressBlock failed for %s: %v", inputName, err)
		}
		compressed := dst[:n]

		b.Run(inputName, func(b *testing.B) {
			out := make([]byte, len(inputData))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := UncompressBlock(compressed, out); err != nil {
					b.Fatalf("UncompressBlock failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkUncompressBlockUnsafe(b *testing.B) {
	hashTable := make([]int32, HashTableSize)
	for inputName, inputData := range benchmarkInputSets() {
		dst := make([]byte, CompressBlockBound(len(inputData)))
		n, err := CompressBlock(inputData, dst, hashTable)
		if err != nil {
			b.Fatalf("setup CompressBlock failed for %s: %v", inputName, err)
		}
		compressed := dst[:n]

		b.Run(inputName, func(b *testing.B) {
			out := make([]byte, len(inputData))
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := UncompressBlockUnsafe(compressed, out, len(inputData)); err != nil {
					b.Fatalf("UncompressBlockUnsafe failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	hashTable := make([]int32, HashTableSize)
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	dst := make([]byte, CompressBlockBound(len(inputData)))
	out := make([]byte, len(inputData))

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n, err := CompressBlock(inputData, dst, hashTable)
		if err != nil {
			b.Fatalf("CompressBlock failed: %v", err)
		}
		if _, err := UncompressBlock(dst[:n], out); err != nil {
			b.Fatalf("UncompressBlock failed: %v", err)
		}
	}
}
