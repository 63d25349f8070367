// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "sync"

// hcMatchFinderPool pools the HC encoder's working memory: a pair of
// large fixed-size arrays (256KiB head table + 256KiB chain table) that
// are expensive to zero and not worth reallocating per call.
var hcMatchFinderPool = sync.Pool{
	New: func() any {
		return &hcMatchFinder{}
	},
}

func acquireHCMatchFinder() *hcMatchFinder {
	mf := hcMatchFinderPool.Get().(*hcMatchFinder)
	mf.reset()
	return mf
}

func releaseHCMatchFinder(mf *hcMatchFinder) {
	if mf == nil {
		return
	}
	hcMatchFinderPool.Put(mf)
}
