// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2 is the S2 block format from github.com/klauspost/compress.
type S2 struct{}

var _ Codec = S2{}

// NewS2 returns the S2 codec.
func NewS2() S2 {
	return S2{}
}

// Name implements Codec.
func (S2) Name() string {
	return "s2"
}

// Compress implements Codec.
func (S2) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

// Decompress implements Codec.
func (c S2) Decompress(data []byte, rawLen int) ([]byte, error) {
	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return checkSize(c.Name(), out, rawLen)
}
