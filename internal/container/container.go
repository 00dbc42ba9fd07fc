// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

/*
Package container frames one LZO1X stream with the data needed to decode and
verify it, since a bare stream carries neither its decompressed size nor a
checksum.

Layout (little endian):

	offset size field
	0      4    magic "LZOK"
	4      1    version (1)
	5      1    compression level
	6      8    raw length
	14     8    xxHash64 of the raw data
	22     ...  LZO1X stream, fully consumed
*/
package container

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/woozymasta/lzokay"
)

const (
	// Version is the only supported container version.
	Version = 1

	// HeaderSize is the encoded header length.
	HeaderSize = 22

	// MaxRawSize bounds the raw length Decode will allocate for.
	MaxRawSize = 1 << 30
)

// Magic starts every container.
var Magic = [4]byte{'L', 'Z', 'O', 'K'}

var (
	// ErrBadMagic is returned when data does not start with Magic.
	ErrBadMagic = errors.New("container: bad magic")
	// ErrUnsupportedVersion is returned for versions other than Version.
	ErrUnsupportedVersion = errors.New("container: unsupported version")
	// ErrTruncatedHeader is returned when data is shorter than HeaderSize.
	ErrTruncatedHeader = errors.New("container: truncated header")
	// ErrChecksumMismatch is returned when the decoded data does not match the stored hash.
	ErrChecksumMismatch = errors.New("container: checksum mismatch")
	// ErrSizeTooLarge is returned when the stored raw length exceeds MaxRawSize.
	ErrSizeTooLarge = errors.New("container: raw size too large")
)

// Header is the decoded container header.
type Header struct {
	Version  uint8
	Level    uint8
	RawLen   uint64
	Checksum uint64
}

// Encode compresses raw at level and returns the framed result.
func Encode(raw []byte, level int) []byte {
	level = min(max(level, lzokay.MinCompressionLevel), lzokay.MaxCompressionLevel)
	stream := lzokay.CompressLevel(raw, level)

	out := make([]byte, 0, HeaderSize+len(stream))
	out = appendHeader(out, Header{
		Version:  Version,
		Level:    uint8(level), //nolint:gosec // G115: clamped to 1-9
		RawLen:   uint64(len(raw)),
		Checksum: xxhash.Sum64(raw),
	})

	return append(out, stream...)
}

// ReadHeader parses and validates the header at the start of data.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}

	if [4]byte(data[:4]) != Magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Version:  data[4],
		Level:    data[5],
		RawLen:   binary.LittleEndian.Uint64(data[6:14]),
		Checksum: binary.LittleEndian.Uint64(data[14:22]),
	}

	if h.Version != Version {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	if h.RawLen > MaxRawSize {
		return h, fmt.Errorf("%w: %d", ErrSizeTooLarge, h.RawLen)
	}

	return h, nil
}

// Decode validates the header, decompresses the stream and verifies the checksum.
// LZO decode errors are wrapped and keep their lzokay.ErrorKind.
func Decode(data []byte) ([]byte, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	raw, err := lzokay.Decompress(data[HeaderSize:], lzokay.DefaultDecompressOptions(int(h.RawLen)))
	if err != nil {
		return nil, fmt.Errorf("container: decompress: %w", err)
	}

	if len(raw) != int(h.RawLen) {
		return nil, fmt.Errorf("%w: decoded %d of %d bytes", ErrChecksumMismatch, len(raw), h.RawLen)
	}

	if sum := xxhash.Sum64(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", ErrChecksumMismatch, sum, h.Checksum)
	}

	return raw, nil
}

func appendHeader(out []byte, h Header) []byte {
	out = append(out, Magic[:]...)
	out = append(out, h.Version, h.Level)
	out = binary.LittleEndian.AppendUint64(out, h.RawLen)
	return binary.LittleEndian.AppendUint64(out, h.Checksum)
}
