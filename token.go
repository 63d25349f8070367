// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// putToken packs a token byte: high nibble literal-length code, low
// nibble match-length code, each already clamped to [0,15] by the caller.
func putToken(litCode, mlCode int) byte {
	return byte(litCode<<4 | mlCode&rlMask)
}

// extBytesCount returns how many extension bytes encode extra (a length
// field's remainder beyond the 15 folded into its token nibble): extra/255
// full 255-valued bytes plus one terminating byte < 255, even when extra
// is itself 0 (the terminator alone signals "no more").
func extBytesCount(extra int) int {
	return extra/255 + 1
}

// putExtAt writes extra's 255-run extension starting at dst[di], assuming
// the caller has already verified dst has room, and returns the position
// just past what was written.
func putExtAt(dst []byte, di, extra int) int {
	for extra >= 255 {
		dst[di] = 255
		di++
		extra -= 255
	}
	dst[di] = byte(extra)
	di++
	return di
}

// readExtensionBytes accumulates 255-valued bytes starting at src[pos]
// until a terminating byte < 255, returning the summed extra length and
// the position just past the terminator. It rejects a length sum that
// would overflow a 32-bit counter and any extension run that would read
// past len(src).
func readExtensionBytes(src []byte, pos int) (extra, newPos int, err error) {
	for {
		if pos >= len(src) {
			return 0, 0, ErrInvalidSource
		}
		b := src[pos]
		pos++
		// Overflow guard: reject before extra can wrap a 32-bit counter.
		if extra > (1<<31)-1-int(b) {
			return 0, 0, ErrInvalidSource
		}
		extra += int(b)
		if b != 255 {
			return extra, pos, nil
		}
	}
}

// readLE16 reads a little-endian uint16 match offset at src[pos:pos+2].
func readLE16(src []byte, pos int) (uint16, error) {
	if pos+2 > len(src) {
		return 0, ErrInvalidSource
	}
	return binary.LittleEndian.Uint16(src[pos:]), nil
}

// seqSize returns the encoded byte length of a full sequence (literal run
// plus match) with the given literal and match lengths, without writing
// anything — used to verify a sequence fits before committing it.
func seqSize(litLen, matchLen int) int {
	n := 1 + litLen
	if litLen >= 15 {
		n += extBytesCount(litLen - 15)
	}
	n += 2
	mlVal := matchLen - MinMatch
	if mlVal >= 15 {
		n += extBytesCount(mlVal - 15)
	}
	return n
}

// lastLitSize returns the encoded byte length of a terminating all-literal
// sequence (token + optional extension + literal bytes, no offset/match).
func lastLitSize(litLen int) int {
	n := 1 + litLen
	if litLen >= 15 {
		n += extBytesCount(litLen - 15)
	}
	return n
}

// emitSeq writes one full sequence (literal run, token, offset, match
// length) at dst[di:], assuming seqSize(len(lits), matchLen) bytes of
// room were already verified, and returns the position just past it.
func emitSeq(dst []byte, di int, lits []byte, matchLen, offset int) int {
	litLen := len(lits)
	litCode := litLen
	if litCode > 15 {
		litCode = 15
	}
	mlVal := matchLen - MinMatch
	mlCode := mlVal
	if mlCode > 15 {
		mlCode = 15
	}

	dst[di] = putToken(litCode, mlCode)
	di++
	if litLen >= 15 {
		di = putExtAt(dst, di, litLen-15)
	}
	di += copy(dst[di:di+litLen], lits)

	binary.LittleEndian.PutUint16(dst[di:di+2], uint16(offset))
	di += 2

	if mlVal >= 15 {
		di = putExtAt(dst, di, mlVal-15)
	}
	return di
}

// emitLastLiterals writes the terminating all-literal sequence (no offset,
// no match) at dst[di:], assuming lastLitSize(len(lits)) bytes of room
// were already verified, and returns the position just past it.
func emitLastLiterals(dst []byte, di int, lits []byte) int {
	litLen := len(lits)
	litCode := litLen
	if litCode > 15 {
		litCode = 15
	}

	dst[di] = putToken(litCode, 0)
	di++
	if litLen >= 15 {
		di = putExtAt(dst, di, litLen-15)
	}
	di += copy(dst[di:di+litLen], lits)
	return di
}
