package entity

import (
	"fmt"
	"strings"

	"github.com/arloliu/hwp5/stream"
)

// Paragraph text control codes.
const (
	ctrlLineBreak  uint16 = 0x000A
	ctrlParaBreak  uint16 = 0x000D
	ctrlTab        uint16 = 0x0009
	ctrlFieldStart uint16 = 0x0003
	ctrlFieldEnd   uint16 = 0x0004

	// inline and extended controls occupy this many units, closed by the same code
	controlUnits = 8

	metaMarkerLink  uint16 = 0x6C6B
	metaMarkerModel uint16 = 0x6D6B

	privateUseFirst uint16 = 0xF020
	privateUseLast  uint16 = 0xF07F
)

// TextOptions selects PARA_TEXT decoding variants.
type TextOptions struct {
	// Strict fails on unpaired surrogates instead of substituting U+FFFD.
	Strict bool
	// Metadata skips embedded field metadata runs. Only paragraphs whose control mask
	// opens a field carry them.
	Metadata bool
}

// DecodeText decodes a PARA_TEXT body into a string.
//
// Line and paragraph breaks map to '\n' and '\r', tabs to '\t'. Form-field markers,
// other control codes with their inline data, and the private-use glyph range
// U+F020..U+F07F are dropped. A trailing odd byte is ignored.
//
// Parameters:
//   - b: PARA_TEXT body, UTF-16LE code units
//   - opts: Strict surrogate handling and field metadata skipping
//
// Returns:
//   - string: Decoded text, including the trailing paragraph break if stored
//   - error: errs.ErrUnpairedSurrogate when opts.Strict is set; nil otherwise
func DecodeText(b []byte, opts TextOptions) (string, error) {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = le.Uint16(b[i*2:])
	}

	out := filterText(units, opts.Metadata)
	if opts.Strict {
		s, err := stream.DecodeUTF16Strict(out)
		if err != nil {
			return "", fmt.Errorf("para text: %w", err)
		}

		return s, nil
	}

	return stream.DecodeUTF16(out), nil
}

func filterText(units []uint16, metadata bool) []uint16 {
	out := make([]uint16, 0, len(units))
	for i := 0; i < len(units); {
		u := units[i]
		if metadata && u < 0x20 && i+1 < len(units) &&
			(units[i+1] == metaMarkerLink || units[i+1] == metaMarkerModel) {
			i = skipMetadata(units, i+2)
			continue
		}

		switch {
		case u == ctrlLineBreak || u == ctrlParaBreak:
			out = append(out, u)
			i++
		case u == ctrlTab:
			if isFormFieldMarker(units, i) {
				i = skipFormField(units, i)
				continue
			}
			out = append(out, u)
			i += controlWidth(units, i)
		case u < 0x20:
			i += controlWidth(units, i)
		case u >= privateUseFirst && u <= privateUseLast:
			i++
		default:
			out = append(out, u)
			i++
		}
	}

	return out
}

// controlWidth returns 8 for a control carrying inline data and 1 otherwise. Inline data
// is closed by a repeat of the control code and holds binary fields (control ids,
// widths, reserved zeros), so a span whose payload is entirely text is treated as two
// bare codes with ordinary text between them.
func controlWidth(units []uint16, i int) int {
	end := i + controlUnits - 1
	if end >= len(units) || units[end] != units[i] {
		return 1
	}
	for _, u := range units[i+1 : end] {
		if u < 0x20 && u != ctrlLineBreak && u != ctrlParaBreak {
			return controlUnits
		}
	}

	return 1
}

func isFormFieldMarker(units []uint16, i int) bool {
	return i+2 < len(units) &&
		(units[i+1] == ctrlFieldStart || units[i+1] == ctrlFieldEnd) &&
		units[i+2] == 0
}

func skipFormField(units []uint16, i int) int {
	for i < len(units) {
		switch units[i] {
		case ctrlTab, ' ', ctrlFieldStart, ctrlFieldEnd, 0, 0x0001:
			i++
		default:
			return i
		}
	}

	return i
}

// skipMetadata advances past the next zero-zero pair and any zeros after it.
func skipMetadata(units []uint16, i int) int {
	for i+1 < len(units) && (units[i] != 0 || units[i+1] != 0) {
		i++
	}
	if i+1 >= len(units) {
		return len(units)
	}
	for i < len(units) && units[i] == 0 {
		i++
	}

	return i
}

// EncodeText encodes paragraph text as a PARA_TEXT body terminated by a paragraph
// break. Tabs are written as 8-unit inline controls, '\n' as a line break; '\r' and
// other control characters are dropped. It returns the body and its length in units,
// which is the paragraph header's text length.
func EncodeText(s string) ([]byte, uint32) {
	units := make([]uint16, 0, len(s)+1)
	for _, u := range stream.EncodeUTF16(s) {
		switch {
		case u == ctrlTab:
			units = append(units, ctrlTab, 0, 0, 0, 0, 0, 0, ctrlTab)
		case u == ctrlLineBreak:
			units = append(units, u)
		case u < 0x20:
		case u >= privateUseFirst && u <= privateUseLast:
		default:
			units = append(units, u)
		}
	}
	units = append(units, ctrlParaBreak)

	b := make([]byte, len(units)*2)
	for i, u := range units {
		le.PutUint16(b[i*2:], u)
	}

	return b, uint32(len(units))
}

// TrimParagraphBreak removes the single paragraph break that terminates stored text.
func TrimParagraphBreak(s string) string {
	return strings.TrimSuffix(s, "\r")
}
