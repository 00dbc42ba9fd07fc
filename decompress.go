// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

import "io"

// maxZeroExtendedChunks limits zero-extension runs so malformed inputs cannot
// overflow run-length reconstruction math.
const maxZeroExtendedChunks = int(^uint(0)>>1)/255 - 2

// Decompress decodes the LZO1X stream in src into a new buffer of capacity opts.OutLen.
//
// The whole of src must be exactly one stream: bytes after the end marker fail
// with ErrInputNotConsumed. Failures are *DecodeError values that unwrap to
// ErrInputOverrun, ErrOutputOverrun or ErrInputNotConsumed; no partial output
// is returned with them. Returns ErrOptionsRequired if opts is nil or OutLen is negative.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, newDecodeError(ErrInputOverrun, 0, 0)
	}

	return decompressExact(src, make([]byte, opts.OutLen), nil)
}

// DecompressInto decodes src into the caller-owned dst, whose length is the
// output capacity. It returns dst[:n] on success and never grows dst.
// Bytes written before a failure are left in dst and must be discarded.
func DecompressInto(src, dst []byte) ([]byte, error) {
	return decompressExact(src, dst, nil)
}

// DecompressN decodes the stream at the front of src and also returns the
// number of input bytes it occupied. Bytes after the end marker are not
// treated as an error; advance with src = src[nRead:] to decode back-to-back
// blocks. nRead is 0 on error.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	if len(src) == 0 {
		return nil, 0, newDecodeError(ErrInputOverrun, 0, 0)
	}

	return DecompressNInto(src, make([]byte, opts.OutLen))
}

// DecompressNInto is DecompressN writing into the caller-owned dst.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	outWritten, inConsumed, err := decompressCore(src, dst, nil)
	if err != nil {
		return nil, 0, newDecodeError(err, inConsumed, outWritten)
	}

	return dst[:outWritten], inConsumed, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressExact decodes src into dst and requires the stream to span all of src.
func decompressExact(src, dst []byte, visit func(Token)) ([]byte, error) {
	outWritten, inConsumed, err := decompressCore(src, dst, visit)
	if err != nil {
		return nil, newDecodeError(err, inConsumed, outWritten)
	}

	switch {
	case inConsumed < len(src):
		return nil, newDecodeError(ErrInputNotConsumed, inConsumed, outWritten)
	case inConsumed > len(src):
		return nil, newDecodeError(ErrInputOverrun, inConsumed, outWritten)
	}

	return dst[:outWritten], nil
}

// decompressCore runs the decoding state machine over src, writing into dst from dst[0].
// It stops at the end marker and returns (bytes written, input bytes consumed, nil).
// On error the returned positions are the cursors at the failing step.
// visit, when not nil, is called for every literal run, match and the end marker
// after the step has been applied.
func decompressCore(src, dst []byte, visit func(Token)) (outPos, inPos int, err error) {
	if len(src) == 0 {
		return 0, 0, ErrInputOverrun
	}

	var (
		inst      byte
		state     int
		nextState int
		matchLen  int
		matchDist int
		tokenPos  int
	)

	inst = src[0]
	inPos = 1
	pending := true

	// The first byte can encode an initial literal run directly; otherwise it is
	// the first instruction of the main loop.
	if inst >= firstLiteralMinByte {
		runLen := int(inst) - firstLiteralBias
		if err := emitLiteralRun(src, &inPos, dst, &outPos, runLen, 0, visit); err != nil {
			return outPos, inPos, err
		}

		state = min(runLen, stateAfterLiteralRun)
		pending = false
	}

	for {
		if pending {
			tokenPos = inPos - 1
			pending = false
		} else {
			tokenPos = inPos
			if inst, err = readCompressedByte(src, &inPos); err != nil {
				return outPos, inPos, err
			}
		}

		switch {
		case inst >= markerM2:
			b, err := readCompressedByte(src, &inPos)
			if err != nil {
				return outPos, inPos, err
			}

			matchDist = (int(b) << 3) + ((int(inst) >> 2) & 0x7) + 1
			matchLen = (int(inst) >> 5) + 1
			nextState = int(inst & 0x03)

		case inst >= markerM3:
			matchLen = int(inst&0x1f) + 2
			if matchLen == 2 {
				ext, err := readExtendedCount(src, &inPos, maxLenM3-2)
				if err != nil {
					return outPos, inPos, err
				}

				matchLen += ext
			}

			v16, err := readCompressedLE16(src, &inPos)
			if err != nil {
				return outPos, inPos, err
			}

			matchDist = (int(v16) >> 2) + 1
			nextState = int(v16 & 0x03)

		case inst >= markerM4:
			matchLen = int(inst&0x7) + 2
			if matchLen == 2 {
				ext, err := readExtendedCount(src, &inPos, maxLenM4-2)
				if err != nil {
					return outPos, inPos, err
				}

				matchLen += ext
			}

			v16, err := readCompressedLE16(src, &inPos)
			if err != nil {
				return outPos, inPos, err
			}

			baseDist := ((int(inst) & 0x8) << 11) + (int(v16) >> 2)
			if baseDist == 0 {
				if matchLen != endMarkerLen {
					return outPos, inPos, ErrBadEndMarker
				}

				if visit != nil {
					visit(Token{Kind: TokenEnd, InputPos: tokenPos, OutputPos: outPos})
				}

				return outPos, inPos, nil
			}

			matchDist = baseDist + m4BaseOffset
			nextState = int(v16 & 0x03)

		default:
			if state == 0 {
				// In state 0 this opcode form is a literal run (with optional
				// zero-extension for long runs).
				runLen := int(inst) + 3
				if runLen == 3 {
					ext, err := readExtendedCount(src, &inPos, maxShortLiteralLen-3)
					if err != nil {
						return outPos, inPos, err
					}

					runLen += ext
				}

				if err := emitLiteralRun(src, &inPos, dst, &outPos, runLen, tokenPos, visit); err != nil {
					return outPos, inPos, err
				}

				state = stateAfterLiteralRun
				continue
			}

			// In non-zero states this opcode form is a short back-reference and
			// needs one trailing byte to complete the distance bits.
			tail, err := readCompressedByte(src, &inPos)
			if err != nil {
				return outPos, inPos, err
			}

			nextState = int(inst & 0x03)
			if state != stateAfterLiteralRun {
				matchDist = (int(inst) >> 2) + (int(tail) << 2) + 1
				matchLen = 2
			} else {
				matchDist = (int(inst) >> 2) + (int(tail) << 2) + longM1BaseOffset
				matchLen = 3
			}
		}

		if err := copyBackRef(dst, outPos, matchDist, matchLen); err != nil {
			return outPos, inPos, err
		}

		if visit != nil {
			visit(Token{Kind: TokenMatch, Length: matchLen, Distance: matchDist, InputPos: tokenPos, OutputPos: outPos})
		}

		outPos += matchLen
		if err := emitLiteralRun(src, &inPos, dst, &outPos, nextState, inPos, visit); err != nil {
			return outPos, inPos, err
		}

		state = nextState
	}
}

// emitLiteralRun copies a literal run and reports it to visit.
func emitLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n, tokenPos int, visit func(Token)) error {
	start := *outPos
	if err := copyLiteralRun(src, inPos, dst, outPos, n); err != nil {
		return err
	}

	if visit != nil && n > 0 {
		visit(Token{Kind: TokenLiteral, Length: n, InputPos: tokenPos, OutputPos: start})
	}

	return nil
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readCompressedLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// readExtendedCount reads an escaped count: zero bytes worth 255 each, then a
// non-zero terminator byte. It returns base + 255*zeros + terminator.
func readExtendedCount(src []byte, inPos *int, base int) (int, error) {
	start := *inPos
	for *inPos < len(src) && src[*inPos] == 0 {
		*inPos++
	}

	zeros := *inPos - start
	if zeros > maxZeroExtendedChunks {
		return 0, ErrInputOverrun
	}

	tail, err := readCompressedByte(src, inPos)
	if err != nil {
		return 0, err
	}

	return base + zeros*255 + int(tail), nil
}
