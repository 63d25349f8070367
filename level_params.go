// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

// hcLevelParams holds the HC encoder's per-level tuning: how deep to walk
// each hash chain and how long a match is "nice enough" to stop early.
type hcLevelParams struct {
	maxChainLen uint // max hash-chain positions to examine per parse step
	niceLen     uint // match length at which the chain walk stops early
}

// clampHCLevel normalizes a caller-supplied HC level: <= 0 becomes the
// default (9), > HCLevelMax clamps to HCLevelMax (12).
func clampHCLevel(level int) int {
	if level <= 0 {
		return HCLevelDefault
	}
	if level > HCLevelMax {
		return HCLevelMax
	}
	return level
}

// hcLevels holds, per HC level, the chain-walk depth and nice-length
// threshold. Depth roughly doubles per level, following the
// level-to-maxAttempts shape of GoZ4X's NewHCMatcher level switch,
// capped so level 12 does not require walking the entire 64 KiB window
// on every position.
var hcLevels = [HCLevelMax + 1]hcLevelParams{
	0:  {maxChainLen: 1, niceLen: 16}, // unused (levels are 1-indexed)
	1:  {maxChainLen: 2, niceLen: 16},
	2:  {maxChainLen: 4, niceLen: 16},
	3:  {maxChainLen: 8, niceLen: 16},
	4:  {maxChainLen: 16, niceLen: 32},
	5:  {maxChainLen: 32, niceLen: 32},
	6:  {maxChainLen: 64, niceLen: 64},
	7:  {maxChainLen: 128, niceLen: 64},
	8:  {maxChainLen: 256, niceLen: 128},
	9:  {maxChainLen: 512, niceLen: 128},
	10: {maxChainLen: 1024, niceLen: 256},
	11: {maxChainLen: 2048, niceLen: 512},
	12: {maxChainLen: 4096, niceLen: windowSize},
}
