// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// CompressBlockHC compresses src into dst using the high-compression
// (HC) parser at the given level (1-12; <=0 behaves as the default level
// 9, >12 clamps to 12 — see DESIGN.md's Open Question resolution on the
// header's stray mention of 16). Returns the number of bytes written, or
// (0, nil) if dst is too small.
func CompressBlockHC(src, dst []byte, level int) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}
	mf := acquireHCMatchFinder()
	defer releaseHCMatchFinder(mf)

	written, _, err := compressHCCore(src, dst, nil, mf, level, len(dst))
	return written, err
}

// compressHCCore is the shared engine behind CompressBlockHC and
// StreamHC.CompressBlock. dict, when non-nil, is the up-to-64KiB window
// logically preceding src and must already be indexed in mf (see
// hcMatchFinder.insertDictWindow).
//
// Parsing walks the hash chain at each position for the best match
// (bounded by the level's chain-walk depth), then applies lazy matching:
// before committing a match found at ip, it probes ip+1 and ip+2 and
// defers to whichever position yields a strictly longer match, the
// way GoZ4X's HCMatcher.LazyMatch does
// (other_examples/..._harriteja-GoZ4X__compress-hc.go.go).
func compressHCCore(src, dst, dict []byte, mf *hcMatchFinder, level int, maxDst int) (written, consumed int, err error) {
	srcLen := len(src)
	params := hcLevels[clampHCLevel(level)]

	if srcLen <= mfLimit {
		n, ok := tryEmitLastLiterals(dst, 0, src, maxDst)
		if !ok {
			return 0, 0, nil
		}
		return n, srcLen, nil
	}

	searchLimit := srcLen - mfLimit
	matchLimit := srcLen - lastLiteralsMin // matches never cover the last lastLiteralsMin bytes
	di := 0
	anchor := 0
	ip := 0
	insertedUpto := -1 // last position already inserted into the chain

	search := func(pos int) (int, int) {
		l, o := mf.searchAndInsert(src, dict, pos, int(params.maxChainLen), params.niceLen, matchLimit)
		if pos > insertedUpto {
			insertedUpto = pos
		}
		return l, o
	}

	for ip < searchLimit {
		bestLen, bestOff := search(ip)
		if bestLen < MinMatch {
			ip++
			continue
		}

		bestIP := ip
		for step := 1; step <= 2; step++ {
			probe := ip + step
			if probe >= searchLimit {
				break
			}
			l, o := search(probe)
			if l > bestLen {
				bestIP, bestLen, bestOff = probe, l, o
			}
		}

		lits := src[anchor:bestIP]
		size := seqSize(len(lits), bestLen)
		if di+size > maxDst {
			return 0, 0, nil
		}
		di = emitSeq(dst, di, lits, bestLen, bestOff)

		matchEnd := bestIP + bestLen
		for k := insertedUpto + 1; k < matchEnd && k+MinMatch <= srcLen; k++ {
			mf.insertOnly(src, k)
		}
		if matchEnd-1 > insertedUpto {
			insertedUpto = matchEnd - 1
		}

		ip = matchEnd
		anchor = ip
	}

	tail := src[anchor:]
	n, ok := tryEmitLastLiterals(dst, di, tail, maxDst)
	if !ok {
		return 0, 0, nil
	}
	return n, srcLen, nil
}
