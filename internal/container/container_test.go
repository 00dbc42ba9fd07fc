package container

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/lzokay"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty": {},
		"text":  bytes.Repeat([]byte("container payload "), 300),
		"zeros": make([]byte, 4096),
	}

	for name, raw := range inputs {
		for _, level := range []int{1, 5, 9} {
			t.Run(name, func(t *testing.T) {
				data := Encode(raw, level)

				h, err := ReadHeader(data)
				require.NoError(t, err)
				require.Equal(t, uint8(Version), h.Version)
				require.Equal(t, uint8(level), h.Level)
				require.Equal(t, uint64(len(raw)), h.RawLen)
				require.Equal(t, xxhash.Sum64(raw), h.Checksum)

				out, err := Decode(data)
				require.NoError(t, err)
				require.True(t, bytes.Equal(out, raw))
			})
		}
	}
}

func TestEncode_StreamMatchesLibrary(t *testing.T) {
	raw := bytes.Repeat([]byte("same stream "), 50)
	data := Encode(raw, 7)
	require.Equal(t, lzokay.CompressLevel(raw, 7), data[HeaderSize:])
	require.Equal(t, Magic[:], data[:4])
}

func TestEncode_ClampsLevel(t *testing.T) {
	h, err := ReadHeader(Encode([]byte("x"), 99))
	require.NoError(t, err)
	require.Equal(t, uint8(lzokay.MaxCompressionLevel), h.Level)
}

func TestReadHeader_Errors(t *testing.T) {
	good := Encode([]byte("header checks"), 5)

	_, err := ReadHeader(good[:HeaderSize-1])
	require.ErrorIs(t, err, ErrTruncatedHeader)

	badMagic := append([]byte{}, good...)
	badMagic[0] = 'X'
	_, err = ReadHeader(badMagic)
	require.ErrorIs(t, err, ErrBadMagic)

	badVersion := append([]byte{}, good...)
	badVersion[4] = 2
	_, err = ReadHeader(badVersion)
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	tooLarge := append([]byte{}, good...)
	binary.LittleEndian.PutUint64(tooLarge[6:14], MaxRawSize+1)
	_, err = Decode(tooLarge)
	require.ErrorIs(t, err, ErrSizeTooLarge)
}

func TestDecode_DetectsCorruption(t *testing.T) {
	raw := bytes.Repeat([]byte("corrupt me "), 100)
	good := Encode(raw, 5)

	t.Run("checksum", func(t *testing.T) {
		data := append([]byte{}, good...)
		data[14] ^= 0x01
		_, err := Decode(data)
		require.ErrorIs(t, err, ErrChecksumMismatch)
	})

	t.Run("short-raw-len", func(t *testing.T) {
		data := append([]byte{}, good...)
		binary.LittleEndian.PutUint64(data[6:14], uint64(len(raw)-1))
		_, err := Decode(data)
		require.ErrorIs(t, err, lzokay.ErrOutputOverrun)

		kind, ok := lzokay.KindOf(err)
		require.True(t, ok)
		require.Equal(t, lzokay.KindOutputOverrun, kind)
	})

	t.Run("long-raw-len", func(t *testing.T) {
		data := append([]byte{}, good...)
		binary.LittleEndian.PutUint64(data[6:14], uint64(len(raw)+1))
		_, err := Decode(data)
		require.ErrorIs(t, err, ErrChecksumMismatch)
	})

	t.Run("trailing-bytes", func(t *testing.T) {
		data := append(append([]byte{}, good...), 0x00)
		_, err := Decode(data)
		require.ErrorIs(t, err, lzokay.ErrInputNotConsumed)
	})

	t.Run("truncated-stream", func(t *testing.T) {
		_, err := Decode(good[:len(good)-2])
		require.ErrorIs(t, err, lzokay.ErrInputOverrun)
	})
}
