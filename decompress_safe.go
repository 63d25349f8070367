// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// UncompressBlock decompresses src into dst, validating every length and
// offset against src/dst bounds. Returns the number of bytes written, or
// ErrInvalidSource if src is truncated or malformed. Never reads past
// len(src) or writes past len(dst).
//
// Implemented as an explicit state machine where every length/offset
// read goes through a bounds-checked helper rather than a trusting
// pointer walk.
func UncompressBlock(src, dst []byte) (int, error) {
	return decodeSafeCore(src, dst, nil, -1)
}

// UncompressBlockPartial decompresses src into dst, stopping at the first
// sequence boundary where at least targetOut bytes have been written. A
// match that would run past len(dst) is cut short at len(dst) and decoding
// stops there. The returned count is >= targetOut (unless src ends first
// or len(dst) < targetOut) and <= len(dst).
func UncompressBlockPartial(src, dst []byte, targetOut int) (int, error) {
	return decodeSafeCore(src, dst, nil, targetOut)
}

// UncompressBlockWithDict decompresses src into dst as if dict were the
// up-to-64KiB window immediately preceding dst: match offsets may reach
// back into dict. Equivalent to attaching dict to a fresh decode stream
// and calling DecompressBlockSafe once.
func UncompressBlockWithDict(src, dst, dict []byte) (int, error) {
	return decodeSafeCore(src, dst, dict, -1)
}

// decodeSafeCore is the shared engine behind UncompressBlock and its
// streaming counterpart StreamDecode.DecompressBlockSafe. targetOut < 0
// means "decode to the block's natural end"; otherwise decoding stops at
// the first sequence boundary with op >= targetOut, or where a match has
// been cut short at len(dst).
func decodeSafeCore(src, dst, dict []byte, targetOut int) (int, error) {
	ip := 0
	op := 0

	for {
		if ip >= len(src) {
			return 0, ErrInvalidSource
		}
		token := src[ip]
		ip++

		litLen := int(token >> 4)
		if litLen == rlMask {
			extra, newIP, err := readExtensionBytes(src, ip)
			if err != nil {
				return 0, err
			}
			ip = newIP
			litLen += extra
		}

		if ip+litLen > len(src) || op+litLen > len(dst) {
			return 0, ErrInvalidSource
		}
		copy(dst[op:op+litLen], src[ip:ip+litLen])
		ip += litLen
		op += litLen

		if ip >= len(src) {
			// Terminal sequence: literals only, no offset/match field.
			return op, nil
		}

		offset, err := readLE16(src, ip)
		if err != nil {
			return 0, err
		}
		ip += 2
		if offset == 0 {
			return 0, ErrInvalidSource
		}

		mlCode := int(token & mlMask)
		matchLen := mlCode + MinMatch
		if mlCode == mlMask {
			extra, newIP, err := readExtensionBytes(src, ip)
			if err != nil {
				return 0, err
			}
			ip = newIP
			matchLen += extra
		}

		if op+matchLen > len(dst) {
			if targetOut < 0 {
				return 0, ErrInvalidSource
			}
			// Partial decode: fill dst and stop mid-match.
			matchLen = len(dst) - op
		}
		if err := copyMatchFromDict(dst, dict, op, int(offset), matchLen); err != nil {
			return 0, err
		}
		op += matchLen

		if targetOut >= 0 && (op >= targetOut || op == len(dst)) {
			return op, nil
		}
	}
}
