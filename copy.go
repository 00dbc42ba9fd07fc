// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

// copyBackRef copies length bytes starting dist bytes behind outputPos to outputPos.
// Nothing is written unless the whole copy fits. When dist < length the ranges
// overlap and the copy runs byte by byte in forward order so that short
// patterns repeat; the built-in copy has memmove semantics and would not.
func copyBackRef(dst []byte, outputPos, dist, length int) error {
	mPos := outputPos - dist
	if dist <= 0 || mPos < 0 {
		return ErrLookbehindOverrun
	}

	if length > len(dst)-outputPos {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := range length {
		dst[outputPos+i] = dst[mPos+i]
	}

	return nil
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both cursors.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if n > len(src)-*inPos {
		return ErrInputOverrun
	}

	if n > len(dst)-*outPos {
		return ErrOutputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
