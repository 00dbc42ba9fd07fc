// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

// Package codec puts the lzokay block codec next to the general-purpose block
// compressors it is benchmarked against, behind one interface.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSizeMismatch is returned when a peer decodes to a length other than rawLen.
	ErrSizeMismatch = errors.New("decoded size mismatch")
	// ErrRoundTripMismatch is returned by Measure when decoded data differs from the input.
	ErrRoundTripMismatch = errors.New("round-trip mismatch")
	// ErrUnknownCodec is returned by ByName for names not in All.
	ErrUnknownCodec = errors.New("unknown codec")
)

// Codec compresses whole blocks. The caller keeps the raw length and hands it
// back on decompression, the way lzokay streams are stored.
type Codec interface {
	// Name returns a short identifier used in reports and on the command line.
	Name() string

	// Compress returns a newly allocated compressed copy of data.
	Compress(data []byte) ([]byte, error)

	// Decompress restores exactly rawLen bytes from data.
	Decompress(data []byte, rawLen int) ([]byte, error)
}

// All returns the benchmark set: lzokay at its fastest, default and best
// levels, the reference LZO1X encoder, then the peer block codecs.
func All() []Codec {
	return []Codec{
		NewLZOkay(1),
		NewLZOkay(5),
		NewLZOkay(9),
		NewReferenceLZO1X(),
		NewLZ4(),
		NewS2(),
		NewSnappy(),
		NewZstd(),
	}
}

// ByName returns the codec from All with the given name.
func ByName(name string) (Codec, error) {
	for _, c := range All() {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Stats is the outcome of Measure for one codec and input.
type Stats struct {
	Codec          string
	RawSize        int64
	CompressedSize int64

	// Average time per call.
	CompressNs   int64
	DecompressNs int64
}

// Ratio returns the compressed size divided by the raw size (0 for empty input).
// Values below 1.0 mean the data shrank.
func (s Stats) Ratio() float64 {
	if s.RawSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.RawSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// CompressMBps returns compression throughput over the raw size in MB/s.
func (s Stats) CompressMBps() float64 {
	return throughput(s.RawSize, s.CompressNs)
}

// DecompressMBps returns decompression throughput over the raw size in MB/s.
func (s Stats) DecompressMBps() float64 {
	return throughput(s.RawSize, s.DecompressNs)
}

func throughput(size, ns int64) float64 {
	if ns <= 0 {
		return 0
	}

	return float64(size) / (float64(ns) / 1e9) / 1e6
}

// Measure compresses and decompresses data iterations times with c and checks
// that every decode restores data. iterations below 1 are treated as 1.
func Measure(c Codec, data []byte, iterations int) (Stats, error) {
	iterations = max(iterations, 1)
	stats := Stats{Codec: c.Name(), RawSize: int64(len(data))}

	var compressed []byte
	start := time.Now()
	for range iterations {
		var err error
		compressed, err = c.Compress(data)
		if err != nil {
			return stats, fmt.Errorf("%s compress: %w", c.Name(), err)
		}
	}
	stats.CompressNs = time.Since(start).Nanoseconds() / int64(iterations)
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	for range iterations {
		out, err := c.Decompress(compressed, len(data))
		if err != nil {
			return stats, fmt.Errorf("%s decompress: %w", c.Name(), err)
		}

		if !bytes.Equal(out, data) {
			return stats, fmt.Errorf("%s: %w", c.Name(), ErrRoundTripMismatch)
		}
	}
	stats.DecompressNs = time.Since(start).Nanoseconds() / int64(iterations)

	return stats, nil
}

// checkSize reports ErrSizeMismatch when out is not rawLen bytes long.
func checkSize(name string, out []byte, rawLen int) ([]byte, error) {
	if len(out) != rawLen {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", name, ErrSizeMismatch, len(out), rawLen)
	}

	return out, nil
}
