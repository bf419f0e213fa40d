package stream

import (
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/hwp5/errs"
)

// DecodeUTF16 converts code units to a string, replacing unpaired surrogates with U+FFFD.
func DecodeUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}

// DecodeUTF16Strict converts code units to a string and rejects unpaired surrogates.
func DecodeUTF16Strict(units []uint16) (string, error) {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", fmt.Errorf("%w: high surrogate 0x%04X at unit %d", errs.ErrUnpairedSurrogate, u, i)
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return "", fmt.Errorf("%w: low surrogate 0x%04X at unit %d", errs.ErrUnpairedSurrogate, u, i)
		}
	}

	return string(utf16.Decode(units)), nil
}

// EncodeUTF16 converts s to UTF-16 code units.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
