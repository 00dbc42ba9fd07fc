// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// LZ4 block flags. CompressBlock reports incompressible input by writing
// nothing, so such blocks are stored raw.
const (
	lz4BlockRaw byte = 0
	lz4BlockLZ4 byte = 1
)

// errLZ4BadFlag is returned for a block whose first byte is not a known flag.
var errLZ4BadFlag = errors.New("lz4: unknown block flag")

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4 is the LZ4 block format from github.com/pierrec/lz4/v4 with a one-byte
// raw/compressed flag in front.
type LZ4 struct{}

var _ Codec = LZ4{}

// NewLZ4 returns the LZ4 codec.
func NewLZ4() LZ4 {
	return LZ4{}
}

// Name implements Codec.
func (LZ4) Name() string {
	return "lz4"
}

// Compress implements Codec using a pooled lz4.Compressor.
func (LZ4) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{lz4BlockRaw}, nil
	}

	dst :=make([]byte, 1+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	if n == 0 || n >= len(data) {
		dst[0] = lz4BlockRaw
		n = copy(dst[1:], data)
	} else {
		dst[0] = lz4BlockLZ4
	}

	return dst[:1+n], nil
}

// Decompress implements Codec.
func (c LZ4) Decompress(data []byte, rawLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty block", errLZ4BadFlag)
	}

	switch data[0] {
	case lz4BlockRaw:
		return checkSize(c.Name(), append([]byte(nil), data[1:]...), rawLen)

	case lz4BlockLZ4:
		dst := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(data[1:], dst)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return checkSize(c.Name(), dst[:n], rawLen)

	default:
		return nil, fmt.Errorf("%w: %d", errLZ4BadFlag, data[0])
	}
}
