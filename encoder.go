// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

// encoder runs one greedy (optionally one-step lazy) parse of src.
type encoder struct {
	src    []byte
	out    []byte
	finder *matchFinder
	params compressLevelParams

	literalStart int // first byte of the pending literal run
	indexed      int // next position to insert into the finder
}

// encode appends the whole stream for src, end marker included, to e.out.
func (e *encoder) encode() {
	inputLen := len(e.src)
	pos := 0

	for pos < inputLen {
		matchLen, matchOffset := e.search(pos)
		literalLen := pos - e.literalStart

		if !e.encodable(matchLen, matchOffset, literalLen) {
			pos++
			continue
		}

		// Give up this match for a clearly longer one starting at the next byte.
		if e.params.lazy && matchLen < e.params.niceLen && pos+1 < inputLen {
			nextLen, nextOffset := e.search(pos + 1)
			if nextLen > matchLen+1 && e.encodable(nextLen, nextOffset, literalLen+1) {
				pos++
				literalLen++
				matchLen, matchOffset = nextLen, nextOffset
			}
		}

		e.encodeLiteralRun(pos)
		e.encodeLookbackMatch(matchLen, matchOffset, literalLen)

		pos += matchLen
		e.skip(pos)
		e.literalStart = pos
	}

	e.encodeLiteralRun(inputLen)
	e.out = append(e.out, endMarker[:]...)
}

// search finds the best match at pos and indexes pos.
func (e *encoder) search(pos int) (int, int) {
	matchLen, matchOffset := e.finder.find(pos)
	e.finder.insert(pos)
	e.indexed = pos + 1

	if e.params.useBestOff {
		matchLen, matchOffset = e.finder.adjustForOffsetClass(matchLen, matchOffset)
	}

	return matchLen, matchOffset
}

// skip indexes every position covered by a match, up to end.
func (e *encoder) skip(end int) {
	for ; e.indexed < end; e.indexed++ {
		e.finder.insert(e.indexed)
	}
}

// encodable reports whether a match can be emitted after literalLen pending
// literals. 2-byte matches only exist as M1 right after 1-3 literals; a
// 3-byte match after 4+ literals must fit M2 or long M1.
func (e *encoder) encodable(matchLen, matchOffset, literalLen int) bool {
	started := len(e.out) > 0

	switch {
	case matchLen < 2 || matchOffset <= 0:
		return false
	case !started && literalLen == 0:
		return false
	case matchLen == 2:
		return started && matchOffset <= maxOffsetM1 &&
			literalLen >= 1 && literalLen <= maxStateLiteralLen
	case matchLen == minLenM2 && matchOffset > maxOffsetMX && literalLen > maxStateLiteralLen:
		return false
	default:
		return matchOffset <= maxOffsetM4
	}
}

// encodeLiteralRun emits src[literalStart:end] with the shortest header form.
// Runs of 1-3 bytes after a match go into the state bits of the match's
// second-to-last byte.
func (e *encoder) encodeLiteralRun(end int) {
	literals := e.src[e.literalStart:end]
	literalLen := len(literals)
	if literalLen == 0 {
		return
	}

	switch {
	case len(e.out) == 0 && literalLen <= maxFirstLiteralLen:
		e.out = append(e.out, opcodeByte(firstLiteralBias+literalLen))
	case literalLen <= maxStateLiteralLen:
		e.out[len(e.out)-2] |= opcodeByte(literalLen)
	case literalLen <= maxShortLiteralLen:
		e.out = append(e.out, opcodeByte(literalLen-3))
	default:
		e.out = append(e.out, 0)
		e.out = writeZeroByteLength(e.out, literalLen-maxShortLiteralLen)
	}

	e.out = append(e.out, literals...)
}

// encodeLookbackMatch emits one match in the cheapest class that can carry it.
func (e *encoder) encodeLookbackMatch(matchLen, matchOffset, literalLen int) {
	switch {
	case matchLen == 2:
		matchOffset--
		e.out = append(e.out,
			opcodeByte(markerM1|((matchOffset&3)<<2)),
			opcodeByte(matchOffset>>2),
		)

	case matchLen <= maxLenM2 && matchOffset <= maxOffsetM2:
		matchOffset--
		e.out = append(e.out,
			opcodeByte(((matchLen-1)<<5)|((matchOffset&7)<<2)),
			opcodeByte(matchOffset>>3),
		)

	case matchLen == minLenM2 && matchOffset <= maxOffsetMX && literalLen > maxStateLiteralLen:
		matchOffset -= longM1BaseOffset
		e.out = append(e.out,
			opcodeByte(markerM1|((matchOffset&3)<<2)),
			opcodeByte(matchOffset>>2),
		)

	case matchOffset <= maxOffsetM3:
		matchOffset--
		if matchLen <= maxLenM3 {
			e.out = append(e.out, opcodeByte(markerM3|(matchLen-2)))
		} else {
			e.out = append(e.out, markerM3)
			e.out = writeZeroByteLength(e.out, matchLen-maxLenM3)
		}

		e.out = append(e.out, opcodeByte((matchOffset&63)<<2), opcodeByte(matchOffset>>6))

	default:
		matchOffset -= m4BaseOffset
		high := (matchOffset & 0x4000) >> 11
		if matchLen <= maxLenM4 {
			e.out = append(e.out, opcodeByte(markerM4|high|(matchLen-2)))
		} else {
			e.out = append(e.out, opcodeByte(markerM4|high))
			e.out = writeZeroByteLength(e.out, matchLen-maxLenM4)
		}

		e.out = append(e.out, opcodeByte((matchOffset&63)<<2), opcodeByte(matchOffset>>6))
	}
}

// writeZeroByteLength appends an escaped count n >= 1: one zero byte per 255,
// then the non-zero remainder.
func writeZeroByteLength(out []byte, n int) []byte {
	for n > 255 {
		out = append(out, 0)
		n -= 255
	}

	return append(out, opcodeByte(n))
}

// opcodeByte keeps the low 8 bits of a control or distance fragment.
func opcodeByte(v int) byte {
	return byte(v & 0xff) //nolint:gosec // G115: truncation is the encoding
}
