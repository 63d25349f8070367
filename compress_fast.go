// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// emptyPos marks a hash-table slot as unoccupied. It is a value no real
// window-relative position can take (positions span [-windowSize, MaxInputSize)).
const emptyPos int32 = math.MinInt32

// CompressBlock compresses src into dst using the fast (single-hash,
// greedy) parser at the default acceleration. hashTable must have length
// >= HashTableSize and is reset on entry (one-shot contract — no prior
// state survives between independent calls; use Stream for continuity
// across blocks). Returns the number of bytes written, or (0, nil) if
// dst is too small to hold the result.
func CompressBlock(src, dst []byte, hashTable []int32) (int, error) {
	return CompressBlockAcceleration(src, dst, hashTable, AccelerationDefault)
}

// CompressBlockAcceleration is CompressBlock with an explicit acceleration
// factor: higher values increase the skip distance on repeated match
// misses, trading compression ratio for speed. Values < 1 behave as 1.
func CompressBlockAcceleration(src, dst []byte, hashTable []int32, acceleration int) (int, error) {
	if len(hashTable) < HashTableSize {
		return 0, ErrShortHashTable
	}
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}
	resetHashTable(hashTable)
	written, _, err := compressFastCore(src, dst, nil, hashTable, acceleration, len(dst), false)
	return written, err
}

// CompressBlockDestSize compresses as much of src as fits within len(dst),
// stopping at the last whole-sequence boundary that still fits. *srcLenIO
// is set to the number of source bytes actually consumed; it is always
// <= its input value. Returns the number of bytes written to dst.
func CompressBlockDestSize(src, dst []byte, hashTable []int32, srcLenIO *int) (int, error) {
	if len(hashTable) < HashTableSize {
		return 0, ErrShortHashTable
	}
	limit := *srcLenIO
	if limit > len(src) {
		limit = len(src)
	}
	resetHashTable(hashTable)
	written, consumed, err := compressFastCore(src[:limit], dst, nil, hashTable, AccelerationDefault, len(dst), true)
	if err != nil {
		return 0, err
	}
	*srcLenIO = consumed
	return written, nil
}

func resetHashTable(hashTable []int32) {
	for i := range hashTable {
		hashTable[i] = emptyPos
	}
}

func floorLog2(n int) int {
	if n < 1 {
		n = 1
	}
	return bits.Len(uint(n)) - 1
}

// compressFastCore is the shared engine behind CompressBlock and
// Stream.CompressBlock. dict, when non-nil, is the up-to-64KiB window
// logically preceding src; hash-table entries may reference either src
// (positions >= 0) or dict (negative positions, counted back from
// len(dict)). When destSizeMode is true, encoding stops at the last
// sequence boundary that still fits within maxDst instead of aborting.
func compressFastCore(src, dst, dict []byte, hashTable []int32, acceleration int, maxDst int, destSizeMode bool) (written, consumed int, err error) {
	srcLen := len(src)
	if acceleration < 1 {
		acceleration = 1
	}
	logAccel := floorLog2(acceleration)

	if srcLen <= mfLimit {
		n, ok := tryEmitLastLiterals(dst, 0, src, maxDst)
		if !ok {
			return 0, 0, nil
		}
		return n, srcLen, nil
	}

	di := 0
	anchor := 0
	ip := 0
	misses := 0
	searchLimit := srcLen - mfLimit
	matchLimit := srcLen - lastLiteralsMin // matches never cover the last lastLiteralsMin bytes

	for ip < searchLimit {
		h := blockHash(binary.LittleEndian.Uint32(src[ip:]))
		candidate := hashTable[h]
		hashTable[h] = int32(ip)

		matched := false
		if candidate != emptyPos {
			offset := ip - int(candidate)
			if offset > 0 && offset <= MaxOffset && equal4(src, dict, ip, int(candidate)) {
				matchLen := MinMatch + extendForward(src, dict, ip+MinMatch, int(candidate)+MinMatch, matchLimit)
				lits := src[anchor:ip]

				size := seqSize(len(lits), matchLen)
				if di+size > maxDst {
					if destSizeMode && di > 0 {
						return di, anchor, nil
					}
					return 0, 0, nil
				}
				di = emitSeq(dst, di, lits, matchLen, offset)

				matchEnd := ip + matchLen
				if insertPos := matchEnd - 2; insertPos >= 0 && insertPos+4 <= srcLen {
					hashTable[blockHash(binary.LittleEndian.Uint32(src[insertPos:]))] = int32(insertPos)
				}

				ip = matchEnd
				anchor = ip
				misses = 0
				matched = true
			}
		}

		if !matched {
			misses++
			ip += 1 + (misses >> (6 + logAccel))
		}
	}

	tail := src[anchor:]
	n, ok := tryEmitLastLiterals(dst, di, tail, maxDst)
	if !ok {
		if destSizeMode && di > 0 {
			return di, anchor, nil
		}
		return 0, 0, nil
	}
	return n, srcLen, nil
}

func tryEmitLastLiterals(dst []byte, di int, lits []byte, maxDst int) (int, bool) {
	size := lastLitSize(len(lits))
	if di+size > maxDst {
		return 0, false
	}
	return emitLastLiterals(dst, di, lits), true
}

// equal4 reports whether the 4 bytes at src/dict position a (>=0, in src)
// and position b (may be negative, in dict) are equal.
func equal4(src, dict []byte, a, b int) bool {
	for k := 0; k < MinMatch; k++ {
		if byteAt(src, dict, a+k) != byteAt(src, dict, b+k) {
			return false
		}
	}
	return true
}

func byteAt(src, dict []byte, pos int) byte {
	if pos >= 0 {
		return src[pos]
	}
	return dict[len(dict)+pos]
}

// extendForward counts additional matching bytes beyond the already-
// verified MinMatch prefix, starting at src position ip and candidate
// position matchPos (matchPos < ip, possibly negative into dict).
func extendForward(src, dict []byte, ip, matchPos, srcLen int) int {
	k := 0
	for matchPos+k < 0 {
		if ip+k >= srcLen {
			return k
		}
		if src[ip+k] != dict[len(dict)+matchPos+k] {
			return k
		}
		k++
	}
	return k + matchLength(src[matchPos+k:], src[ip+k:], srcLen-ip-k)
}
