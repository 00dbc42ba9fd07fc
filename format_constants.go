// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

// LZO1X stream layout. Control byte patterns, by the state left behind by the
// previous token (state = literals copied right after the last match, 4 after
// a standalone literal run):
//
//	first byte 18..255   literal run of b-17 bytes (first token only)
//	0000LLLL  state 0    literal run of L+3 bytes; L=0 escapes (base 18)
//	0000DDSS  state 1-3  M1: length 2, distance (D | next<<2) + 1
//	0000DDSS  state 4    M1: length 3, distance (D | next<<2) + 2049
//	01LDDDSS             M2: length 3-4, distance (next<<3 | D) + 1
//	1LLDDDSS             M2: length 5-8, distance (next<<3 | D) + 1
//	001LLLLL             M3: length L+2, L=0 escapes (base 33); LE16 v: distance (v>>2) + 1
//	0001HLLL             M4: length L+2, L=0 escapes (base 9);  LE16 v: distance 16384 + H<<14 + v>>2
//
// SS is the low two bits of the last byte group of a match and holds the
// number (0-3) of literal bytes following it. Escaped counts continue with
// zero bytes worth 255 each and end with the first non-zero byte.
//
// The end marker is M4 with H=0 and v>>2 == 0, serialized as 0x11 0x00 0x00.
// Distance 16384 itself is always emitted as M3, so no real match collides
// with it.

// Match distance bounds per match class.
const (
	maxOffsetM1 = 0x0400
	maxOffsetM2 = 0x0800
	maxOffsetM3 = 0x4000
	maxOffsetM4 = 0xbfff
	maxOffsetMX = maxOffsetM1 + maxOffsetM2

	// longM1BaseOffset is the base distance of the length-3 M1 form used in state 4.
	longM1BaseOffset = maxOffsetM2 + 1

	// m4BaseOffset is the distance every M4 is relative to.
	m4BaseOffset = 0x4000
)

// Match length bounds per match class.
const (
	minLenM2 = 3
	maxLenM2 = 8
	maxLenM3 = 33
	maxLenM4 = 9
)

// Control byte markers.
const (
	markerM1 = 0
	markerM2 = 64
	markerM3 = 32
	markerM4 = 16
)

// Literal run encoding limits.
const (
	// firstLiteralBias is added to the run length when the run opens the stream.
	firstLiteralBias = 17
	// maxFirstLiteralLen is the longest run that fits the first-byte form.
	maxFirstLiteralLen = 0xff - firstLiteralBias
	// firstLiteralMinByte is the smallest first byte that means "literal run".
	firstLiteralMinByte = firstLiteralBias + 1
	// maxStateLiteralLen is the longest run packed into a match's state bits.
	maxStateLiteralLen = 3
	// maxShortLiteralLen is the longest run encoded by a single state-0 control byte.
	maxShortLiteralLen = 18
	// stateAfterLiteralRun is the decoder state after a literal run of 4+ bytes.
	stateAfterLiteralRun = 4
)

// endMarker is the stream terminator.
var endMarker = [3]byte{markerM4 | 1, 0, 0}

// endMarkerLen is the length of a match decoded from the end marker.
const endMarkerLen = 3
