// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package codec

import (
	"bytes"
	"fmt"

	reflzo "github.com/rasky/go-lzo"
)

// ReferenceLZO1X is the LZO1X-1 port from github.com/rasky/go-lzo. Its streams
// use the same format as lzokay, so either side can decode the other's output.
type ReferenceLZO1X struct{}

var _ Codec = ReferenceLZO1X{}

// NewReferenceLZO1X returns the reference LZO1X codec.
func NewReferenceLZO1X() ReferenceLZO1X {
	return ReferenceLZO1X{}
}

// Name implements Codec.
func (ReferenceLZO1X) Name() string {
	return "lzo1x-ref"
}

// Compress implements Codec.
func (ReferenceLZO1X) Compress(data []byte) ([]byte, error) {
	return reflzo.Compress1X(data), nil
}

// Decompress implements Codec.
func (c ReferenceLZO1X) Decompress(data []byte, rawLen int) ([]byte, error) {
	out, err := reflzo.Decompress1X(bytes.NewReader(data), len(data), rawLen)
	if err != nil {
		return nil, fmt.Errorf("lzo1x decompression failed: %w", err)
	}

	return checkSize(c.Name(), out, rawLen)
}
