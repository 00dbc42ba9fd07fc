// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package codec

import (
	"fmt"

	"github.com/golang/snappy"
)

// Snappy is the Snappy block format from github.com/golang/snappy.
type Snappy struct{}

var _ Codec = Snappy{}

// NewSnappy returns the Snappy codec.
func NewSnappy() Snappy {
	return Snappy{}
}

// Name implements Codec.
func (Snappy) Name() string {
	return "snappy"
}

// Compress implements Codec.
func (Snappy) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Decompress implements Codec.
func (c Snappy) Decompress(data []byte, rawLen int) ([]byte, error) {
	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	if n != rawLen {
		return nil, fmt.Errorf("%s: %w: header says %d, want %d", c.Name(), ErrSizeMismatch, n, rawLen)
	}

	out, err := snappy.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return out, nil
}
