package entity

import (
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
)

// PictureMinSize is the SHAPE_COMPONENT_PICTURE layout up to the BinData reference.
const PictureMinSize = 73

// DecodePicture decodes a SHAPE_COMPONENT_PICTURE body.
func DecodePicture(b []byte) (model.Picture, error) {
	var p model.Picture
	if err := checkLen("picture", b, PictureMinSize); err != nil {
		return p, err
	}

	p.BorderColor = format.ColorRef(le.Uint32(b[0:]))
	p.BorderWidth = int32(le.Uint32(b[4:]))
	p.BorderProps = le.Uint32(b[8:])
	for i := range p.Corners {
		p.Corners[i] = int32(le.Uint32(b[12+i*4:]))
	}
	for i := range p.Crop {
		p.Crop[i] = int32(le.Uint32(b[44+i*4:]))
	}
	for i := range p.Padding {
		p.Padding[i] = le.Uint16(b[60+i*2:])
	}
	p.Brightness = int8(b[68])
	p.Contrast = int8(b[69])
	p.Effect = b[70]
	p.BinDataID = le.Uint16(b[71:])
	p.Extra = tail(b, PictureMinSize)

	return p, nil
}

// EncodePicture encodes a SHAPE_COMPONENT_PICTURE body.
func EncodePicture(p model.Picture) []byte {
	b := make([]byte, PictureMinSize, PictureMinSize+len(p.Extra))
	le.PutUint32(b[0:], uint32(p.BorderColor))
	le.PutUint32(b[4:], uint32(p.BorderWidth))
	le.PutUint32(b[8:], p.BorderProps)
	for i, v := range p.Corners {
		le.PutUint32(b[12+i*4:], uint32(v))
	}
	for i, v := range p.Crop {
		le.PutUint32(b[44+i*4:], uint32(v))
	}
	for i, v := range p.Padding {
		le.PutUint16(b[60+i*2:], v)
	}
	b[68] = byte(p.Brightness)
	b[69] = byte(p.Contrast)
	b[70] = p.Effect
	le.PutUint16(b[71:], p.BinDataID)

	return append(b, p.Extra...)
}
