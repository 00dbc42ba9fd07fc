package lzokay

import (
	"bytes"
	"testing"

	reflzo "github.com/rasky/go-lzo"
	"github.com/stretchr/testify/require"
)

func TestCompatibility_ReferenceDecoderReadsOurStreams(t *testing.T) {
	for _, in := range testInputSet() {
		if len(in.data) == 0 {
			continue
		}

		for _, level := range []int{1, 5, 9} {
			cmp := CompressLevel(in.data, level)
			out, err := reflzo.Decompress1X(bytes.NewReader(cmp), len(cmp), len(in.data))
			require.NoError(t, err, "%s level %d", in.name, level)
			require.True(t, bytes.Equal(out, in.data), "%s level %d: reference decode mismatch", in.name, level)
		}
	}
}

func TestCompatibility_WeReadReferenceStreams(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp := reflzo.Compress1X(in.data)

			out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
			require.NoError(t, err)
			require.True(t, bytes.Equal(out, in.data), "decode mismatch")

			_, err = Inspect(cmp, len(in.data), func(tok Token) {
				if tok.Kind == TokenMatch {
					require.LessOrEqual(t, tok.Distance, tok.OutputPos)
				}
			})
			require.NoError(t, err)
		})
	}
}
