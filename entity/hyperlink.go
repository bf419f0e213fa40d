package entity

import (
	"fmt"
	"strings"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

const (
	// HyperlinkPrefixSize is the control id, control header and property block that
	// precede the link strings.
	HyperlinkPrefixSize = 48
	// HyperlinkMinSize is the smallest body accepted as a hyperlink.
	HyperlinkMinSize = 70

	hyperlinkUnderline uint32 = 0x1
)

// DecodeHyperlink decodes a '%hlk' CTRL_HEADER body.
//
// Only the attribute word (offset 4) and colour (offset 8) of the prefix are read. The
// strings follow at HyperlinkPrefixSize: display text, target, and an optional tooltip,
// each a 16-bit unit count and UTF-16 text ending early at an embedded zero. The link
// type is inferred from the target.
func DecodeHyperlink(b []byte) (model.Hyperlink, error) {
	var h model.Hyperlink
	if len(b) < HyperlinkMinSize {
		return h, fmt.Errorf("hyperlink: %w: %d bytes, need %d", errs.ErrInvalidFormat, len(b), HyperlinkMinSize)
	}

	h.Underline = le.Uint32(b[4:])&hyperlinkUnderline != 0
	h.Color = format.ColorRef(le.Uint32(b[8:]))

	c := stream.NewCursor(b[HyperlinkPrefixSize:])
	var err error
	if h.Display, err = readLinkString(c); err != nil {
		return h, fmt.Errorf("hyperlink display: %w", err)
	}
	if h.URL, err = readLinkString(c); err != nil {
		return h, fmt.Errorf("hyperlink target: %w", err)
	}
	if c.Remaining() >= 2 {
		if h.Tooltip, err = readLinkString(c); err != nil {
			return h, fmt.Errorf("hyperlink tooltip: %w", err)
		}
	}
	h.Type = InferLinkType(h.URL)

	return h, nil
}

func readLinkString(c *stream.Cursor) (string, error) {
	n, err := c.ReadU16()
	if err != nil {
		return "", fmt.Errorf("%w: missing length", errs.ErrInvalidFormat)
	}
	units, err := c.ReadUnits(int(n))
	if err != nil {
		return "", fmt.Errorf("%w: %d units overrun the record", errs.ErrInvalidFormat, n)
	}
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}

	return stream.DecodeUTF16(units), nil
}

// EncodeHyperlink encodes a '%hlk' CTRL_HEADER body, zero-padded to HyperlinkMinSize.
// Prefix bytes other than the control id, attribute and colour are written as zero.
func EncodeHyperlink(h model.Hyperlink) ([]byte, error) {
	w := stream.NewWriter()
	w.WriteU32(uint32(format.CtrlHyperlink))
	var attr uint32
	if h.Underline {
		attr |= hyperlinkUnderline
	}
	w.WriteU32(attr)
	w.WriteU32(uint32(h.Color))
	w.WriteZeros(HyperlinkPrefixSize - 12)

	for _, s := range []string{h.Display, h.URL, h.Tooltip} {
		if err := writeWString(w, "hyperlink", s); err != nil {
			return nil, err
		}
	}
	if pad := HyperlinkMinSize - w.Len(); pad > 0 {
		w.WriteZeros(pad)
	}

	return w.Bytes(), nil
}

// InferLinkType classifies a link target by its text: "mailto:" is an email address,
// "http://" and "https://" a URL, a leading '#' a bookmark, and a path separator or
// drive letter a file. Anything else is treated as a URL.
func InferLinkType(target string) model.HyperlinkType {
	lower := strings.ToLower(target)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		return model.LinkEmail
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return model.LinkURL
	case strings.HasPrefix(target, "#"):
		return model.LinkBookmark
	case strings.ContainsAny(target, `/\`), hasDriveLetter(target):
		return model.LinkFile
	default:
		return model.LinkURL
	}
}

func hasDriveLetter(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0] | 0x20

	return c >= 'a' && c <= 'z'
}
