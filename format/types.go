// Package format holds the wire-level enumerations shared by the hwp5 codec packages:
// record tag ids, control ids, compression kinds and the document distance unit.
package format

import "fmt"

type (
	// CompressionType selects the codec used for a pack bundle.
	CompressionType uint8
	// HWPUnit is the document distance unit, 1/7200 inch.
	HWPUnit uint32
	// ColorRef is a 0x00BBGGRR color value.
	ColorRef uint32
)

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone stores bytes as-is.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
	CompressionBrotli  CompressionType = 0x5 // CompressionBrotli represents Brotli compression.
	CompressionDeflate CompressionType = 0x6 // CompressionDeflate is the document stream codec (zlib out, raw deflate in).
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionBrotli:
		return "Brotli"
	case CompressionDeflate:
		return "Deflate"
	default:
		return "Unknown"
	}
}

// ParseCompressionType resolves a case-sensitive lower-case name such as "zstd".
func ParseCompressionType(name string) (CompressionType, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "brotli":
		return CompressionBrotli, nil
	case "deflate":
		return CompressionDeflate, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

// HWPUnitsPerInch is the number of HWPUnit in one inch.
const HWPUnitsPerInch = 7200

// Millimeters converts u to millimeters.
func (u HWPUnit) Millimeters() float64 {
	return float64(u) * 25.4 / HWPUnitsPerInch
}

// FromMillimeters converts a millimeter length to HWPUnit, rounding to nearest.
func FromMillimeters(mm float64) HWPUnit {
	return HWPUnit(mm*HWPUnitsPerInch/25.4 + 0.5)
}

// RGB builds a ColorRef from 8-bit channels.
func RGB(r, g, b uint8) ColorRef {
	return ColorRef(uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

// Channels splits c into red, green and blue.
func (c ColorRef) Channels() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// Lang indexes the seven per-script arrays carried by character shapes.
type Lang int

const (
	LangHangul Lang = iota
	LangLatin
	LangHanja
	LangJapanese
	LangOther
	LangSymbol
	LangUser

	LangCount = 7
)

func (l Lang) String() string {
	switch l {
	case LangHangul:
		return "Hangul"
	case LangLatin:
		return "Latin"
	case LangHanja:
		return "Hanja"
	case LangJapanese:
		return "Japanese"
	case LangOther:
		return "Other"
	case LangSymbol:
		return "Symbol"
	case LangUser:
		return "User"
	default:
		return "Unknown"
	}
}
