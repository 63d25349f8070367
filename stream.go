// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lz4

package lz4

import "encoding/binary"

// Stream, StreamHC and StreamDecode let a sequence of blocks reference
// each other's content as if they were one contiguous stream, without the
// caller re-sending or re-decoding the shared history. Each holds the
// trailing up to 64KiB window of whatever it last processed; a later
// call may encode or decode matches reaching back into that window.
//
// None of the three are safe for concurrent use by multiple goroutines
// on the same value.
//
// Design note: the canonical C streaming API detects
// when a new block happens to sit contiguously in memory right after the
// previous one and skips the window copy in that case. Go's caller-owned
// byte slices give no reliable way to compare two slices' underlying
// storage for adjacency without unsafe pointer arithmetic, and the only
// externally observable requirement is that the window always holds the
// most recent min(64KiB, bytes-seen) bytes — not how it got there. So
// every type here unconditionally copies its trailing window after each
// call. This is simpler and always correct; it gives up the zero-copy
// contiguous-buffer fast path the reference implementation has.

// appendWindow returns the trailing up to windowSize bytes of dict+src,
// the shared "slide the dictionary forward" operation used by all three
// stream types after a successful block.
func appendWindow(dict, src []byte) []byte {
	if len(src) >= windowSize {
		out := make([]byte, windowSize)
		copy(out, src[len(src)-windowSize:])
		return out
	}
	total := len(dict) + len(src)
	if total <= windowSize {
		out := make([]byte, total)
		n := copy(out, dict)
		copy(out[n:], src)
		return out
	}
	drop := total - windowSize
	out := make([]byte, 0, windowSize)
	out = append(out, dict[drop:]...)
	out = append(out, src...)
	return out
}

// insertDictWindowFast seeds a fast-encoder hash table with every
// position of dict, the same role hcMatchFinder.insertDictWindow plays
// for the HC encoder (chain.go), so that matches into the carried window
// are reachable by a plain hash-table lookup.
func insertDictWindowFast(dict []byte, hashTable []int32) {
	n := len(dict)
	for i := 0; i+MinMatch <= n; i++ {
		pos := i - n
		h := blockHash(binary.LittleEndian.Uint32(dict[i:]))
		hashTable[h] = int32(pos)
	}
}

// Stream is a reusable fast-encoder session carrying dictionary state
// across CompressBlock calls: a hash table plus the trailing window of
// whatever it has already processed.
type Stream struct {
	hashTable    [HashTableSize]int32
	dict         []byte
	acceleration int
}

// NewStream returns an empty Stream at the default acceleration.
func NewStream() *Stream {
	s := &Stream{acceleration: AccelerationDefault}
	s.Reset()
	return s
}

// Reset clears all dictionary state; the next CompressBlock call starts
// as if from a brand new Stream.
func (s *Stream) Reset() {
	resetHashTable(s.hashTable[:])
	s.dict = nil
}

// SetAcceleration changes the acceleration factor used by future
// CompressBlock calls. Values < 1 behave as 1.
func (s *Stream) SetAcceleration(acceleration int) {
	if acceleration < 1 {
		acceleration = 1
	}
	s.acceleration = acceleration
}

// LoadDict seeds the stream with an external dictionary window: the next
// CompressBlock call may reference matches into dict. dict is trimmed to
// its trailing 64KiB if longer. Returns the number of bytes actually
// retained.
func (s *Stream) LoadDict(dict []byte) int {
	s.dict = appendWindow(nil, dict)
	resetHashTable(s.hashTable[:])
	insertDictWindowFast(s.dict, s.hashTable[:])
	return len(s.dict)
}

// CompressBlock compresses src into dst, with matches allowed to reach
// back into the window carried from prior calls (or LoadDict). Returns
// (0, nil) if dst is too small, exactly as CompressBlock's one-shot form.
func (s *Stream) CompressBlock(src, dst []byte) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}
	resetHashTable(s.hashTable[:])
	insertDictWindowFast(s.dict, s.hashTable[:])

	written, _, err := compressFastCore(src, dst, s.dict, s.hashTable[:], s.acceleration, len(dst), false)
	if err != nil {
		return 0, err
	}
	if written > 0 || len(src) == 0 {
		s.dict = appendWindow(s.dict, src)
	}
	return written, nil
}

// SaveDict copies the stream's current window into buf, trimmed to
// buf's length from the most recent end, and returns the number of
// bytes written. Use it to externalize the window before discarding or
// relocating a Stream whose history must outlive it.
func (s *Stream) SaveDict(buf []byte) int {
	return copySuffix(buf, s.dict)
}

// StreamHC is Stream's counterpart for the HC parser.
type StreamHC struct {
	mf    *hcMatchFinder
	dict  []byte
	level int
}

// NewStreamHC returns an empty StreamHC at the given level (clamped as
// CompressBlockHC clamps it).
func NewStreamHC(level int) *StreamHC {
	s := &StreamHC{mf: newHCMatchFinder(), level: level}
	return s
}

// Reset clears all dictionary state and sets the level for future blocks.
func (s *StreamHC) Reset(level int) {
	s.mf.reset()
	s.dict = nil
	s.level = level
}

// LoadDict seeds the stream with an external dictionary window, as
// Stream.LoadDict does for the fast encoder.
func (s *StreamHC) LoadDict(dict []byte) int {
	s.dict = appendWindow(nil, dict)
	s.mf.reset()
	s.mf.insertDictWindow(s.dict)
	return len(s.dict)
}

// CompressBlock compresses src into dst, with matches allowed to reach
// back into the carried window.
func (s *StreamHC) CompressBlock(src, dst []byte) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}
	s.mf.reset()
	s.mf.insertDictWindow(s.dict)

	written, _, err := compressHCCore(src, dst, s.dict, s.mf, s.level, len(dst))
	if err != nil {
		return 0, err
	}
	if written > 0 || len(src) == 0 {
		s.dict = appendWindow(s.dict, src)
	}
	return written, nil
}

// SaveDict copies the stream's current window into buf and returns the
// number of bytes written.
func (s *StreamHC) SaveDict(buf []byte) int {
	return copySuffix(buf, s.dict)
}

// StreamDecode is the decoder-side counterpart: it tracks the window a
// sequence of encoded blocks was produced against, so DecompressBlock*
// can resolve offsets that reach into it.
type StreamDecode struct {
	dict []byte
}

// NewStreamDecode returns an empty StreamDecode.
func NewStreamDecode() *StreamDecode {
	return &StreamDecode{}
}

// Reset clears the carried window.
func (s *StreamDecode) Reset() {
	s.dict = nil
}

// SetDict seeds the stream with an external dictionary window matching
// the one the corresponding encoder stream was loaded with. Returns true
// on success; always succeeds for a well-formed dict slice.
func (s *StreamDecode) SetDict(dict []byte) bool {
	s.dict = appendWindow(nil, dict)
	return true
}

// DecompressBlockSafe decompresses src into dst with full bounds
// validation, as UncompressBlock does, additionally resolving offsets
// into the carried window. On success the window slides forward to
// include the newly decoded bytes.
func (s *StreamDecode) DecompressBlockSafe(src, dst []byte) (int, error) {
	n, err := decodeSafeCore(src, dst, s.dict, -1)
	if err != nil {
		return 0, err
	}
	s.dict = appendWindow(s.dict, dst[:n])
	return n, nil
}

// DecompressBlockUnsafe is DecompressBlockSafe's trusted-input fast-path
// counterpart, with the same caveats as UncompressBlockUnsafe. Like
// UncompressBlockUnsafe it returns the number of bytes of src consumed;
// the window slides forward by the originalSize decoded bytes.
func (s *StreamDecode) DecompressBlockUnsafe(src, dst []byte, originalSize int) (n int, err error) {
	if originalSize < 0 || originalSize > len(dst) {
		return 0, ErrShortBuffer
	}
	defer func() {
		if recover() != nil {
			n, err = 0, ErrInvalidSource
		}
	}()
	n, err = decodeFastCore(src, dst[:originalSize], s.dict)
	if err != nil {
		return 0, err
	}
	s.dict = appendWindow(s.dict, dst[:originalSize])
	return n, nil
}

// copySuffix copies the trailing len(buf) bytes of src into buf (or all
// of src if it's shorter) and returns the number of bytes written.
func copySuffix(buf, src []byte) int {
	if len(src) > len(buf) {
		src = src[len(src)-len(buf):]
	}
	return copy(buf, src)
}
