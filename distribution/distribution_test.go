package distribution

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/record"
	"github.com/stretchr/testify/require"
)

// buildControl hides key inside a scrambled control record seeded with seed.
func buildControl(t *testing.T, seed uint32, key Key) []byte {
	t.Helper()

	block := make([]byte, BlockSize)
	binary.LittleEndian.PutUint32(block, seed)
	for i := seedSize; i < BlockSize; i++ {
		block[i] = byte(i * 7)
	}
	offset := seedSize + int(block[0]&0x0F)
	copy(block[offset:], key[:])

	require.NoError(t, Descramble(block))

	ctrl, err := record.Encode(format.TagDistributeDocData, 0, block)
	require.NoError(t, err)
	require.Len(t, ctrl, ControlSize)

	return ctrl
}

func TestLCG_MatchesMSVCRand(t *testing.T) {
	g := lcg{seed: 1}
	require.Equal(t, uint32(41), g.next())
	require.Equal(t, uint32(18467), g.next())
	require.Equal(t, uint32(6334), g.next())
}

func TestDescramble_IsInvolution(t *testing.T) {
	block := make([]byte, BlockSize)
	for i := range block {
		block[i] = byte(i)
	}
	original := bytes.Clone(block)

	require.NoError(t, Descramble(block))
	require.Equal(t, original[:seedSize], block[:seedSize], "seed bytes are never scrambled")
	require.NotEqual(t, original, block)

	require.NoError(t, Descramble(block))
	require.Equal(t, original, block)
}

func TestDescramble_ShortBlock(t *testing.T) {
	err := Descramble(make([]byte, BlockSize-1))
	require.ErrorIs(t, err, errs.ErrShortBuffer)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	ctrl := make([]byte, ControlSize)
	binary.LittleEndian.PutUint32(ctrl[4:], 0x12345678)
	for i := 8; i < ControlSize; i++ {
		ctrl[i] = byte(i)
	}
	snapshot := bytes.Clone(ctrl)

	k1, err := DeriveKey(ctrl)
	require.NoError(t, err)
	k2, err := DeriveKey(bytes.Clone(ctrl))
	require.NoError(t, err)

	require.Equal(t, k1, k2)
	require.Equal(t, snapshot, ctrl, "input is not modified")
}

func TestDeriveKey_RecoversHiddenKey(t *testing.T) {
	key := Key{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0xFE, 0xDC, 0xBA, 0x98, 0x76, 0x54, 0x32, 0x10}

	for _, seed := range []uint32{0, 1, 0x0000000F, 0xDEADBEEF} {
		got, err := DeriveKey(buildControl(t, seed, key))
		require.NoError(t, err)
		require.Equal(t, key, got, "seed %#x", seed)
	}
}

func TestDeriveKey_ShortControl(t *testing.T) {
	_, err := DeriveKey(make([]byte, ControlSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidControlRecord)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestDecrypt(t *testing.T) {
	key := Key{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	t.Run("empty", func(t *testing.T) {
		out, err := Decrypt(key, nil)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("aligned_round_trip", func(t *testing.T) {
		plain := bytes.Repeat([]byte("0123456789abcdef"), 4)
		enc, err := Encrypt(key, plain)
		require.NoError(t, err)
		require.NotEqual(t, plain, enc)

		dec, err := Decrypt(key, enc)
		require.NoError(t, err)
		require.Equal(t, plain, dec)
	})

	t.Run("blocks_are_independent", func(t *testing.T) {
		plain := bytes.Repeat([]byte("same block here!"), 2)
		enc, err := Encrypt(key, plain)
		require.NoError(t, err)
		require.Equal(t, enc[:16], enc[16:32])
	})

	t.Run("unaligned_truncates", func(t *testing.T) {
		dec, err := Decrypt(key, make([]byte, 21))
		require.NoError(t, err)
		require.Len(t, dec, 21)
	})

	t.Run("encrypt_rejects_unaligned", func(t *testing.T) {
		_, err := Encrypt(key, make([]byte, 5))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestDecryptStream(t *testing.T) {
	key := Key{0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7, 0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAE, 0xAF}
	payload := bytes.Repeat([]byte{0x42, 0x00, 0x00, 0x00, 0x0D, 0x00, 0x00, 0x00}, 8)

	enc, err := Encrypt(key, payload)
	require.NoError(t, err)

	data := append(buildControl(t, 0xCAFEF00D, key), enc...)
	dec, err := DecryptStream(data)
	require.NoError(t, err)
	require.Equal(t, payload, dec)

	t.Run("wrong_tag", func(t *testing.T) {
		bad, err := record.Encode(format.TagDocData, 0, make([]byte, BlockSize))
		require.NoError(t, err)
		_, err = DecryptStream(bad)
		require.ErrorIs(t, err, errs.ErrInvalidControlRecord)
	})

	t.Run("short", func(t *testing.T) {
		_, err := DecryptStream(data[:100])
		require.ErrorIs(t, err, errs.ErrInvalidControlRecord)
	})
}
