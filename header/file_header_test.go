package header

import (
	"testing"

	"github.com/arloliu/hwp5/errs"
	"github.com/stretchr/testify/require"
)

func TestFileHeader_RoundTrip(t *testing.T) {
	h := New(Version{Major: 5, Minor: 0, Build: 3, Revision: 4}, true)
	h.Flags = h.Flags.With(FlagHistory, true)
	h.Reserved[0] = 0x02
	h.Reserved[4] = 0x04
	h.Reserved[8] = 6

	data := h.Bytes()
	require.Len(t, data, Size)
	require.Equal(t, Signature, string(data[:len(Signature)]))
	require.Equal(t, []byte{4, 3, 0, 5}, data[32:36], "revision is the low byte")

	got, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, "5.0.3.4", got.Version.String())
	require.Equal(t, uint32(2), got.License())
	require.Equal(t, uint32(4), got.EncryptVersion())
	require.Equal(t, uint8(6), got.KOGLCountry())
}

func TestParse_CorruptedSignature(t *testing.T) {
	data := New(DefaultVersion, true).Bytes()
	data[0] ^= 0xFF

	_, err := Parse(data)
	require.ErrorIs(t, err, errs.ErrInvalidSignature)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestParse_Short(t *testing.T) {
	_, err := Parse(New(DefaultVersion, false).Bytes()[:Size-1])
	require.ErrorIs(t, err, errs.ErrShortBuffer)
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestFlags(t *testing.T) {
	f := FlagCompressed | FlagDistribution | FlagEncrypted
	require.True(t, f.Compressed())
	require.True(t, f.Encrypted())
	require.True(t, f.Distribution())
	require.False(t, f.Script())
	require.False(t, f.DRM())
	require.Equal(t, "compressed|encrypted|distribution", f.String())
	require.Equal(t, "none", Flags(0).String())
	require.Equal(t, "signed|unknown", (FlagSigned | 1<<30).String())

	require.Equal(t, FlagCompressed|FlagEncrypted, f.With(FlagDistribution, false))
	require.Equal(t, Flags(1<<8), FlagCertEncrypted)
}

func TestCheckSupported(t *testing.T) {
	testCases := []struct {
		name  string
		flags Flags
		err   error
	}{
		{name: "plain", flags: FlagCompressed},
		{name: "distribution", flags: FlagEncrypted | FlagDistribution},
		{name: "password", flags: FlagEncrypted, err: errs.ErrPasswordEncrypted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := FileHeader{Flags: tc.flags}.CheckSupported()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
		})
	}
}

func TestVersion(t *testing.T) {
	v := VersionFromUint32(0x05010001)
	require.Equal(t, Version{Major: 5, Minor: 1, Build: 0, Revision: 1}, v)
	require.Equal(t, uint32(0x05010001), v.Uint32())
	require.True(t, v.AtLeast(Version{Major: 5, Minor: 0, Build: 3}))
	require.False(t, v.AtLeast(Version{Major: 5, Minor: 1, Build: 1}))
	require.True(t, v.AtLeast(v))
}
