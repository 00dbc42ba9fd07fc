package lzokay

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzo benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"mixed-text-256k": mixedText(256 << 10),
		"random-64k":      randomBytes(42, 64<<10),
	}
}

func BenchmarkCompress(b *testing.B) {
	levels := []int{1, 5, 9}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				opts := &CompressOptions{Level: level}
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for b.Loop() {
					_ = Compress(inputData, opts)
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	levels := []int{1, 5, 9}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			compressedData := Compress(inputData, &CompressOptions{Level: level})

			opts := DefaultDecompressOptions(len(inputData))
			if _, err := Decompress(compressedData, opts); err != nil {
				b.Fatalf("setup Decompress failed for %s level %d: %v", inputName, level, err)
			}

			name := fmt.Sprintf("%s/from-level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for b.Loop() {
					if _, err := Decompress(compressedData, opts); err != nil {
						b.Fatalf("Decompress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompressInto(b *testing.B) {
	inputData := mixedText(256 << 10)
	compressedData := Compress(inputData, nil)
	dst := make([]byte, len(inputData))

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for b.Loop() {
		if _, err := DecompressInto(compressedData, dst); err != nil {
			b.Fatalf("DecompressInto failed: %v", err)
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	opts := &CompressOptions{Level: 9}
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for b.Loop() {
		compressedData := Compress(inputData, opts)
		if _, err := Decompress(compressedData, DefaultDecompressOptions(len(inputData))); err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}
