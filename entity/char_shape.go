package entity

import (
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
)

// CharShapeSize is the fixed CharShape body size.
const CharShapeSize = 72

// DecodeCharShape decodes a CHAR_SHAPE body. Bytes past CharShapeSize are kept in Extra
// so EncodeCharShape reproduces the record byte for byte.
//
// Returns:
//   - model.CharShape: Decoded shape
//   - error: errs.ErrShortBuffer when fewer than CharShapeSize bytes are present
func DecodeCharShape(b []byte) (model.CharShape, error) {
	var c model.CharShape
	if err := checkLen("char shape", b, CharShapeSize); err != nil {
		return c, err
	}

	for i := range format.LangCount {
		c.FaceIDs[i] = le.Uint16(b[i*2:])
		c.Ratios[i] = b[14+i]
		c.Spacings[i] = int8(b[21+i])
		c.RelSizes[i] = b[28+i]
		c.Offsets[i] = int8(b[35+i])
	}
	c.BaseSize = int32(le.Uint32(b[42:]))
	c.Props = le.Uint32(b[46:])
	c.ShadowX = int8(b[50])
	c.ShadowY = int8(b[51])
	c.TextColor = format.ColorRef(le.Uint32(b[52:]))
	c.UnderlineColor = format.ColorRef(le.Uint32(b[56:]))
	c.ShadeColor = format.ColorRef(le.Uint32(b[60:]))
	c.ShadowColor = format.ColorRef(le.Uint32(b[64:]))
	c.BorderFillID = le.Uint16(b[68:])
	c.Reserved = le.Uint16(b[70:])
	c.Extra = tail(b, CharShapeSize)

	return c, nil
}

// EncodeCharShape encodes a CHAR_SHAPE body.
func EncodeCharShape(c model.CharShape) []byte {
	b := make([]byte, CharShapeSize, CharShapeSize+len(c.Extra))
	for i := range format.LangCount {
		le.PutUint16(b[i*2:], c.FaceIDs[i])
		b[14+i] = c.Ratios[i]
		b[21+i] = byte(c.Spacings[i])
		b[28+i] = c.RelSizes[i]
		b[35+i] = byte(c.Offsets[i])
	}
	le.PutUint32(b[42:], uint32(c.BaseSize))
	le.PutUint32(b[46:], c.Props)
	b[50] = byte(c.ShadowX)
	b[51] = byte(c.ShadowY)
	le.PutUint32(b[52:], uint32(c.TextColor))
	le.PutUint32(b[56:], uint32(c.UnderlineColor))
	le.PutUint32(b[60:], uint32(c.ShadeColor))
	le.PutUint32(b[64:], uint32(c.ShadowColor))
	le.PutUint16(b[68:], c.BorderFillID)
	le.PutUint16(b[70:], c.Reserved)

	return append(b, c.Extra...)
}

// DefaultCharShape is a 10pt black shape with 100% ratios, the baseline that writers
// register as shape 0.
func DefaultCharShape() model.CharShape {
	var c model.CharShape
	for i := range format.LangCount {
		c.Ratios[i] = 100
		c.RelSizes[i] = 100
	}
	c.BaseSize = 1000
	c.ShadowX = 10
	c.ShadowY = 10
	c.ShadeColor = format.ColorRef(0xFFFFFFFF)
	c.ShadowColor = format.RGB(0xB2, 0xB2, 0xB2)
	c.UnderlineColor = format.RGB(0, 0, 0)

	return c
}
