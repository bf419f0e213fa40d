package container

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/stretchr/testify/require"
)

func newPackSource(t *testing.T) *Storage {
	t.Helper()

	s := NewStorage()
	require.NoError(t, s.Create("FileHeader", bytes.Repeat([]byte{0x48}, 256)))
	require.NoError(t, s.Create("DocInfo", []byte("resource records")))
	require.NoError(t, s.Create("BodyText/Section0", bytes.Repeat([]byte("paragraph "), 1000)))
	require.NoError(t, s.Create("BinData/BIN0001.png", []byte{}))

	return s
}

func TestPack_RoundTrip(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
		format.CompressionBrotli,
		format.CompressionDeflate,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			src := newPackSource(t)

			var buf bytes.Buffer
			require.NoError(t, Pack(&buf, src, WithPackCompression(ct)))

			var h PackHeader
			require.NoError(t, h.Parse(buf.Bytes()[:PackHeaderSize]))
			require.Equal(t, ct, h.Compression)
			require.Equal(t, uint32(4), h.EntryCount)

			dst, err := Unpack(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			require.Equal(t, src.List(), dst.List())
			for _, p := range src.List() {
				want, _ := src.Open(p)
				got, err := dst.Open(p)
				require.NoError(t, err)
				require.Equal(t, len(want), len(got), p)
				require.True(t, bytes.Equal(want, got), p)
			}
		})
	}
}

func TestPackHeader(t *testing.T) {
	h := PackHeader{Version: PackVersion, Compression: format.CompressionS2, EntryCount: 7}
	b := h.Bytes()
	require.Len(t, b, PackHeaderSize)
	require.Equal(t, PackMagic, string(b[:8]))

	var got PackHeader
	require.NoError(t, got.Parse(b))
	require.Equal(t, h, got)

	bad := bytes.Clone(b)
	bad[0] ^= 0xFF
	require.ErrorIs(t, got.Parse(bad), errs.ErrInvalidPack)
	require.ErrorIs(t, got.Parse(b[:10]), errs.ErrInvalidFormat)

	future := bytes.Clone(b)
	binary.LittleEndian.PutUint16(future[8:], PackVersion+1)
	require.ErrorIs(t, got.Parse(future), errs.ErrUnsupportedVersion)
}

func TestUnpack_Corruption(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pack(&buf, newPackSource(t), WithPackCompression(format.CompressionNone)))
	packed := buf.Bytes()

	t.Run("checksum", func(t *testing.T) {
		data := bytes.Clone(packed)
		data[len(data)-1] ^= 0x01 // last byte of FileHeader, the last entry in path order

		_, err := Unpack(bytes.NewReader(data))
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)

		_, err = Unpack(bytes.NewReader(data), WithoutChecksums())
		require.NoError(t, err)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := Unpack(bytes.NewReader(packed[:len(packed)-10]))
		require.ErrorIs(t, err, errs.ErrInvalidPack)
	})

	t.Run("entry_limit", func(t *testing.T) {
		_, err := Unpack(bytes.NewReader(packed), WithMaxEntrySize(100))
		require.ErrorIs(t, err, errs.ErrLimitExceeded)
	})

	t.Run("unknown_codec", func(t *testing.T) {
		data := bytes.Clone(packed)
		data[10] = 0xEE
		_, err := Unpack(bytes.NewReader(data))
		require.ErrorIs(t, err, errs.ErrInvalidPack)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Unpack(bytes.NewReader(nil))
		require.ErrorIs(t, err, errs.ErrInvalidPack)
	})
}

func TestPack_Options(t *testing.T) {
	var buf bytes.Buffer
	err := Pack(&buf, NewStorage(), WithPackCompression(format.CompressionType(0xEE)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "pack compression")

	err = Pack(&buf, newPackSource(t), WithMaxEntrySize(100))
	require.ErrorIs(t, err, errs.ErrLimitExceeded)
}
