// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// hcMatchFinder is the HC encoder's hash-chain match finder: a head table
// mapping a 4-byte prefix hash to the most recent position sharing it,
// and a chain table linking each window position back to the previous
// position sharing its hash. Positions are in the same src/dict-relative
// coordinate space used throughout this package (negative = in dict).
//
// A head table plus a chain-next table over a fixed window, generalized
// from a four-offset-class design to a single 64KiB window, following
// GoZ4X's HCMatcher (other_examples) for the head-then-insert-self
// ordering and chain-walk shape.
type hcMatchFinder struct {
	head  [1 << hashLogHC]int32
	chain [windowSize]int32
}

func newHCMatchFinder() *hcMatchFinder {
	mf := &hcMatchFinder{}
	mf.reset()
	return mf
}

func (mf *hcMatchFinder) reset() {
	for i := range mf.head {
		mf.head[i] = emptyPos
	}
	for i := range mf.chain {
		mf.chain[i] = emptyPos
	}
}

func (mf *hcMatchFinder) chainSlot(pos int) int {
	slot := pos & winMask
	if slot < 0 {
		slot += windowSize
	}
	return slot
}

// hashAt hashes the 4-byte prefix at a src-relative position (pos >= 0).
func (mf *hcMatchFinder) hashAt(src []byte, pos int) uint32 {
	return blockHashHC(binary.LittleEndian.Uint32(src[pos:]))
}

// insert records pos (already hashed as key) in the chain, pointing it at
// whatever the head previously held, then makes pos the new head.
func (mf *hcMatchFinder) insert(key uint32, pos int) {
	mf.chain[mf.chainSlot(pos)] = mf.head[key]
	mf.head[key] = int32(pos)
}

// insertDictWindow seeds the match finder with every position of an
// attached dictionary window, addressed as negative positions counting
// back from 0, the way LoadDict populates initial hash-chain coverage.
func (mf *hcMatchFinder) insertDictWindow(dict []byte) {
	n := len(dict)
	for i := 0; i+MinMatch <= n; i++ {
		pos := i - n
		h := blockHashHC(binary.LittleEndian.Uint32(dict[i:]))
		mf.insert(h, pos)
	}
}

// searchAndInsert finds the best match at ip (using the chain as it stood
// before ip was inserted) and then inserts ip, so a later search sees it.
// Ties (equal length) favor the nearer candidate (smaller offset) because
// the chain walk visits nearest positions first.
func (mf *hcMatchFinder) searchAndInsert(src, dict []byte, ip int, maxChainLen int, niceLen uint, srcLen int) (bestLen, bestOffset int) {
	key := mf.hashAt(src, ip)
	candidate := mf.head[key]
	mf.insert(key, ip)

	attempts := maxChainLen
	for candidate != emptyPos && attempts > 0 {
		offset := ip - int(candidate)
		if offset <= 0 || offset > MaxOffset || offset > windowSize {
			break
		}
		if equal4(src, dict, ip, int(candidate)) {
			length := MinMatch + extendForward(src, dict, ip+MinMatch, int(candidate)+MinMatch, srcLen)
			if length > bestLen {
				bestLen = length
				bestOffset = offset
				if uint(length) >= niceLen {
					break
				}
			}
		}
		candidate = mf.chain[mf.chainSlot(int(candidate))]
		attempts--
	}

	if bestLen < MinMatch {
		return 0, 0
	}
	return bestLen, bestOffset
}

// insertOnly inserts ip into the chain without searching, used to give
// positions skipped over by a committed match full history coverage.
func (mf *hcMatchFinder) insertOnly(src []byte, ip int) {
	mf.insert(mf.hashAt(src, ip), ip)
}
