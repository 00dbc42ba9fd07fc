// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package codec

import (
	"fmt"

	"github.com/woozymasta/lzokay"
)

// LZOkay is the lzokay block codec at a fixed level.
type LZOkay struct {
	level int
}

var _ Codec = LZOkay{}

// NewLZOkay returns the lzokay codec; level is clamped to 1-9.
func NewLZOkay(level int) LZOkay {
	return LZOkay{level: min(max(level, lzokay.MinCompressionLevel), lzokay.MaxCompressionLevel)}
}

// Name implements Codec.
func (c LZOkay) Name() string {
	return fmt.Sprintf("lzokay-%d", c.level)
}

// Level returns the compression level.
func (c LZOkay) Level() int {
	return c.level
}

// Compress implements Codec.
func (c LZOkay) Compress(data []byte) ([]byte, error) {
	return lzokay.CompressLevel(data, c.level), nil
}

// Decompress implements Codec. Decode errors keep their lzokay kind.
func (c LZOkay) Decompress(data []byte, rawLen int) ([]byte, error) {
	out, err := lzokay.Decompress(data, lzokay.DefaultDecompressOptions(rawLen))
	if err != nil {
		return nil, err
	}

	return checkSize(c.Name(), out, rawLen)
}
