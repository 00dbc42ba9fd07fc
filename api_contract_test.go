package lzokay

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIContract_DecompressRejectsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)
	compressed := Compress(src, &CompressOptions{Level: 5})

	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	_, err := Decompress(payload, DefaultDecompressOptions(len(src)))
	require.ErrorIs(t, err, ErrInputNotConsumed)

	out, nRead, err := DecompressN(payload, DefaultDecompressOptions(len(src)))
	require.NoError(t, err)
	require.Equal(t, len(compressed), nRead)
	require.Equal(t, src, out)
}

func TestAPIContract_DecompressCanReturnShorterThanOutLen(t *testing.T) {
	src := bytes.Repeat([]byte("short-output"), 32)

	out, err := Decompress(Compress(src, nil), DefaultDecompressOptions(len(src)+256))
	require.NoError(t, err)
	require.Len(t, out, len(src))
	require.Equal(t, src, out)
}

func TestAPIContract_DecompressCanonicalStream(t *testing.T) {
	// Expands to 512 zero bytes.
	compressed := []byte{0x12, 0x00, 0x20, 0x00, 0xdf, 0x00, 0x00, 0x11, 0x00, 0x00}

	out, err := Decompress(compressed, DefaultDecompressOptions(512))
	require.NoError(t, err)
	require.Equal(t, make([]byte, 512), out)

	_, err = Decompress(compressed, DefaultDecompressOptions(511))
	require.ErrorIs(t, err, ErrOutputOverrun)
}

// propertyInputs covers empty, tiny, repetitive, random and far-repeat data.
func propertyInputs() map[string][]byte {
	inputs := make(map[string][]byte)
	for _, in := range testInputSet() {
		inputs[in.name] = in.data
	}

	inputs["single-repeated-200"] = bytes.Repeat([]byte{'r'}, 200)
	inputs["random-small"] = randomBytes(99, 97)
	return inputs
}

func TestProperties(t *testing.T) {
	for name, data := range propertyInputs() {
		for _, level := range []int{1, 5, 9} {
			t.Run(fmt.Sprintf("%s/level-%d", name, level), func(t *testing.T) {
				cmp := CompressLevel(data, level)

				// Round-trip at exact capacity returns exactly len(data) bytes.
				out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
				require.NoError(t, err)
				require.Len(t, out, len(data))
				require.True(t, bytes.Equal(out, data))

				// Any smaller capacity is an output overrun.
				if len(data) > 0 {
					for _, k := range []int{0, len(data) / 2, len(data) - 1} {
						_, err := Decompress(cmp, DefaultDecompressOptions(k))
						requireKind(t, err, KindOutputOverrun)
					}
				}

				// A non-empty suffix is never consumed.
				withSuffix := append(append([]byte{}, cmp...), 0x00)
				_, err = Decompress(withSuffix, DefaultDecompressOptions(len(data)))
				requireKind(t, err, KindInputNotConsumed)

				// Decoding twice yields the same bytes.
				again, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
				require.NoError(t, err)
				require.Equal(t, out, again)

				// No match reaches before the start of the output.
				_, err = Inspect(cmp, len(data), func(tok Token) {
					if tok.Kind == TokenMatch {
						require.LessOrEqual(t, tok.Distance, tok.OutputPos)
						require.Positive(t, tok.Distance)
					}
				})
				require.NoError(t, err)
			})
		}
	}
}

func TestProperties_EmptyInputIsInputOverrun(t *testing.T) {
	for k := 1; k <= 1024; k *= 2 {
		_, err := Decompress([]byte{}, DefaultDecompressOptions(k))
		requireKind(t, err, KindInputOverrun)
	}
}
