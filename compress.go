// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

// Compress encodes src as one LZO1X stream. opts may be nil (DefaultCompressionLevel).
// It never fails: every input, including an empty one, yields a stream that
// Decompress restores exactly given an output capacity of at least len(src).
func Compress(src []byte, opts *CompressOptions) []byte {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	return compressLevel(src, levelParams(opts.Level))
}

// CompressLevel is Compress with an explicit level; out-of-range levels are clamped.
func CompressLevel(src []byte, level int) []byte {
	return compressLevel(src, levelParams(level))
}

// CompressWorstSize returns an upper bound on the compressed size of n input bytes.
func CompressWorstSize(n int) int {
	return n + n/16 + 64 + 3
}

// compressLevel encodes src into a pooled scratch buffer and returns an exact-size copy.
func compressLevel(src []byte, p compressLevelParams) []byte {
	if len(src) == 0 {
		return append([]byte(nil), endMarker[:]...)
	}

	finder := acquireMatchFinder(src, p)
	defer releaseMatchFinder(finder)

	buf := acquireCompressBuffer(CompressWorstSize(len(src)))
	defer releaseCompressBuffer(buf)

	enc := encoder{
		src:    src,
		out:    buf.data,
		finder: finder,
		params: p,
	}
	enc.encode()

	out := make([]byte, len(enc.out))
	copy(out, enc.out)
	buf.data = enc.out[:0]

	return out
}
