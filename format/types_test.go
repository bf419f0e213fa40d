package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Deflate", CompressionDeflate.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4, CompressionBrotli, CompressionDeflate} {
		name := map[CompressionType]string{
			CompressionNone: "none", CompressionZstd: "zstd", CompressionS2: "s2",
			CompressionLZ4: "lz4", CompressionBrotli: "brotli", CompressionDeflate: "deflate",
		}[c]
		got, err := ParseCompressionType(name)
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	_, err := ParseCompressionType("gzip")
	require.Error(t, err)
}

func TestHWPUnitConversion(t *testing.T) {
	require.InDelta(t, 25.4, HWPUnit(7200).Millimeters(), 1e-9)
	require.Equal(t, HWPUnit(59528), FromMillimeters(210))
}

func TestColorRef(t *testing.T) {
	c := RGB(0x11, 0x22, 0x33)
	require.Equal(t, ColorRef(0x00332211), c)
	r, g, b := c.Channels()
	require.Equal(t, []uint8{0x11, 0x22, 0x33}, []uint8{r, g, b})
}

func TestTagString(t *testing.T) {
	require.Equal(t, "PARA_HEADER", TagParaHeader.String())
	require.Equal(t, Tag(0x42), TagParaHeader)
	require.Equal(t, Tag(0x15), TagCharShape)
	require.Equal(t, "TAG_0x3FF", MaxTag.String())
}

func TestCtrlID(t *testing.T) {
	require.Equal(t, CtrlID(0x74626C20), CtrlTable)
	require.Equal(t, "tbl ", CtrlTable.String())
	require.Equal(t, "%hlk", CtrlHyperlink.String())
	require.Equal(t, "0x00000001", CtrlID(1).String())
}
