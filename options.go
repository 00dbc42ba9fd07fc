// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

// DecompressOptions configures decompression.
// OutLen is required (output capacity); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the output capacity: the decoder never writes more than OutLen bytes.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output capacity and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// Compression level bounds.
const (
	MinCompressionLevel     = 1
	MaxCompressionLevel     = 9
	DefaultCompressionLevel = 5
)

// CompressOptions configures compression.
type CompressOptions struct {
	// Level: 1 (fastest, shallow hash-chain search) to 9 (deepest search, lazy matching).
	// Values below 1 are treated as 1, values above 9 as 9.
	Level int
}

// DefaultCompressOptions returns options for DefaultCompressionLevel.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: DefaultCompressionLevel}
}

// clampLevel maps any level to the supported range.
func clampLevel(level int) int {
	return min(max(level, MinCompressionLevel), MaxCompressionLevel)
}
