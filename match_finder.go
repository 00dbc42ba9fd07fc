// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

import (
	"encoding/binary"
	"math/bits"
)

const (
	// hashBits is the number of bits in the 3-byte match-key hash.
	hashBits = 14

	// hashSize is the number of hash-chain buckets.
	hashSize = 1 << hashBits

	// matchKeyWidth is the number of bytes hashed into a chain bucket.
	matchKeyWidth = 3

	// bestOffCount is the size of the "closest distance by match length" table.
	bestOffCount = maxLenM3 + 1

	// maxIndexedSpan bounds how many positions the index addresses before it is
	// rebased; stored positions must fit int32.
	maxIndexedSpan = 1 << 30
)

// matchFinder is the hash-chain index of one compression run.
//
// head3 maps a 3-byte key hash to the most recent position with that key, prev
// links every indexed position to the previous one in its bucket, and head2
// maps every 2-byte key to its most recent position. All of them store
// position-base+1 so the zero value means "none".
type matchFinder struct {
	src  []byte
	base int // absolute position of prev[0]

	head3 [hashSize]int32
	head2 [1 << 16]int32
	prev  []int32

	// bestOff[k] is the smallest distance seen by the last find with a match of
	// at least k bytes, or 0.
	bestOff [bestOffCount]int

	maxChain     int
	niceLen      int
	trackBestOff bool
}

// reset prepares the finder for a new input.
func (m *matchFinder) reset(src []byte, p compressLevelParams) {
	m.src = src
	m.base = 0
	clear(m.head3[:])
	clear(m.head2[:])

	span := min(len(src), maxIndexedSpan)
	if cap(m.prev) < span {
		m.prev = make([]int32, span)
	} else {
		m.prev = m.prev[:span]
	}

	m.maxChain = max(p.maxChain, 1)
	m.niceLen = max(p.niceLen, matchKeyWidth)
	m.trackBestOff = p.useBestOff
	clear(m.bestOff[:])
}

// rebase drops the index and restarts position numbering at pos.
func (m *matchFinder) rebase(pos int) {
	clear(m.head3[:])
	clear(m.head2[:])
	m.base = pos
}

// insert indexes the bytes starting at pos. Positions must be inserted in
// increasing order, each at most once.
func (m *matchFinder) insert(pos int) {
	src := m.src
	if pos+2 > len(src) {
		return
	}

	if pos-m.base >= len(m.prev) {
		m.rebase(pos)
	}

	rel := int32(pos - m.base + 1) //nolint:gosec // G115: bounded by maxIndexedSpan
	m.head2[key2(src, pos)] = rel

	if pos+matchKeyWidth > len(src) {
		return
	}

	h := hash3(src, pos)
	m.prev[pos-m.base] = m.head3[h]
	m.head3[h] = rel
}

// find returns the longest match for the bytes at pos among the indexed
// earlier positions within maxOffsetM4, preferring the closest one when
// lengths tie. Matches of 3+ bytes come from the hash chain; a 2-byte match is
// only reported within maxOffsetM1. It must run before insert(pos).
func (m *matchFinder) find(pos int) (length, dist int) {
	src := m.src
	limit := len(src) - pos
	if m.trackBestOff {
		clear(m.bestOff[:])
	}

	if limit < 2 {
		return 0, 0
	}

	if limit >= matchKeyWidth {
		covered := 0
		node := int(m.head3[hash3(src, pos)]) - 1

		// Walk the chain from newest to oldest; distances only grow.
		for depth := m.maxChain; node >= 0 && depth > 0; depth-- {
			cand := m.base + node
			d := pos - cand
			if d > maxOffsetM4 {
				break
			}

			// Cheap pre-check on the byte that would extend the current best.
			if length < limit && src[cand+length] != src[pos+length] {
				node = int(m.prev[node]) - 1
				continue
			}

			l := matchLength(src, cand, pos, limit)
			if m.trackBestOff && l > covered {
				top := min(l, bestOffCount-1)
				for k := covered + 1; k <= top; k++ {
					m.bestOff[k] = d
				}
				covered = max(covered, top)
			}

			if l > length && l >= matchKeyWidth {
				length, dist = l, d
				if l >= m.niceLen || l == limit {
					break
				}
			}

			node = int(m.prev[node]) - 1
		}
	}

	if length >= matchKeyWidth {
		return length, dist
	}

	length, dist = 0, 0
	if node := int(m.head2[key2(src, pos)]) - 1; node >= 0 {
		d := pos - (m.base + node)
		if m.trackBestOff && (m.bestOff[2] == 0 || d < m.bestOff[2]) {
			m.bestOff[2] = d
		}

		if d <= maxOffsetM1 {
			length, dist = 2, d
		}
	}

	return length, dist
}

// adjustForOffsetClass shortens a far match by one or two bytes when the last
// find saw a closer occurrence of the shorter prefix that fits a cheaper
// distance class. Returns the possibly adjusted length and distance.
func (m *matchFinder) adjustForOffsetClass(length, dist int) (int, int) {
	if !m.trackBestOff || length <= minLenM2 || dist <= maxOffsetM2 {
		return length, dist
	}

	// M3/M4 (3 bytes) -> M2 (2 bytes).
	if length <= maxLenM2+1 {
		if d := m.bestOffAt(length - 1); d != 0 && d <= maxOffsetM2 {
			return length - 1, d
		}
	}

	if dist > maxOffsetM3 {
		// Extended M4 (4 bytes) -> M2 (2 bytes).
		if length == maxLenM2+2 {
			if d := m.bestOffAt(maxLenM2); d != 0 && d <= maxOffsetM2 {
				return maxLenM2, d
			}
		}

		// Extended M4 (4 bytes) -> M3 (3 bytes).
		if length > maxLenM4 && length <= maxLenM3+1 {
			if d := m.bestOffAt(length - 1); d != 0 && d <= maxOffsetM3 {
				return length - 1, d
			}
		}
	}

	return length, dist
}

// bestOffAt returns bestOff[k] when k is in range.
func (m *matchFinder) bestOffAt(k int) int {
	if k < 0 || k >= bestOffCount {
		return 0
	}

	return m.bestOff[k]
}

// hash3 hashes the 3-byte match key at pos into a bucket index.
func hash3(src []byte, pos int) int {
	v := uint32(src[pos]) | uint32(src[pos+1])<<8 | uint32(src[pos+2])<<16
	return int((v * 0x1e35a7bd) >> (32 - hashBits))
}

// key2 returns the 2-byte key at pos.
func key2(src []byte, pos int) int {
	return int(src[pos]) | int(src[pos+1])<<8
}

// matchLength counts equal bytes of src[a:] and src[b:], a < b, up to limit.
func matchLength(src []byte, a, b, limit int) int {
	n := 0
	for n+8 <= limit {
		diff := binary.LittleEndian.Uint64(src[a+n:]) ^ binary.LittleEndian.Uint64(src[b+n:])
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += 8
	}

	for n < limit && src[a+n] == src[b+n] {
		n++
	}

	return n
}
