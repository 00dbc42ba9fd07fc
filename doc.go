// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

/*
Package lzokay implements an LZO1X block codec: a hash-chain compressor and a
bounds-checked decompressor compatible with lzo1x_decompress_safe.

A stream is a sequence of literal runs and back-references (matches) and ends
with the terminator bytes `0x11 0x00 0x00`. The stream carries no length or
checksum; callers store the decompressed size next to it (see internal/container
for the framed form used by the lzokay tool).

# Compress

Options may be nil (level 5). Levels run from 1 (shallow greedy search) to 9
(deep search with lazy matching); compression cannot fail:

	out := lzokay.Compress(data, nil)
	out := lzokay.Compress(data, &lzokay.CompressOptions{Level: 9})
	out := lzokay.CompressLevel(data, 1)

CompressWorstSize bounds the output size for a given input size.

# Decompress

OutLen is the output capacity and is required. The stream must occupy all of
the input:

	out, err := lzokay.Decompress(compressed, lzokay.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (e.g. for back-to-back compressed blocks):

	out, nRead, err := lzokay.DecompressN(compressed, lzokay.DefaultDecompressOptions(expectedLen))
	// advance: compressed = compressed[nRead:]

To reuse caller-managed output memory:

	dst := make([]byte, expectedLen)
	out, err := lzokay.DecompressInto(compressed, dst)

From an io.Reader:

	out, err := lzokay.DecompressFromReader(r, lzokay.DefaultDecompressOptions(expectedLen))

# Errors

Decoding failures are *DecodeError values. Match them with errors.Is against
ErrInputOverrun, ErrOutputOverrun and ErrInputNotConsumed, or read the kind
with KindOf. ErrLookbehindOverrun and ErrBadEndMarker are finer causes of
ErrInputOverrun.

# Inspect

Inspect decodes like Decompress and reports every literal run, match and the
end marker through a callback; the lzokay tool uses it to dump streams.
*/
package lzokay
