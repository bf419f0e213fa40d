package entity

import "github.com/arloliu/hwp5/model"

const (
	// ParaShapeMinSize is the body size written by older producers.
	ParaShapeMinSize = 42
	// ParaShapeSize adds the second property words of 5.0.2.5+.
	ParaShapeSize = 54
)

// DecodeParaShape decodes a PARA_SHAPE body of at least ParaShapeMinSize bytes.
func DecodeParaShape(b []byte) (model.ParaShape, error) {
	var p model.ParaShape
	if err := checkLen("para shape", b, ParaShapeMinSize); err != nil {
		return p, err
	}

	p.Props1 = le.Uint32(b[0:])
	p.LeftMargin = int32(le.Uint32(b[4:]))
	p.RightMargin = int32(le.Uint32(b[8:]))
	p.Indent = int32(le.Uint32(b[12:]))
	p.SpacingTop = int32(le.Uint32(b[16:]))
	p.SpacingBottom = int32(le.Uint32(b[20:]))
	p.LineSpacing = int32(le.Uint32(b[24:]))
	p.TabDefID = le.Uint16(b[28:])
	p.NumberingID = le.Uint16(b[30:])
	p.BorderFillID = le.Uint16(b[32:])
	for i := range p.BorderOffsets {
		p.BorderOffsets[i] = int16(le.Uint16(b[34+i*2:]))
	}

	if len(b) < ParaShapeSize {
		p.Extra = tail(b, ParaShapeMinSize)
		return p, nil
	}

	p.Extended = true
	p.Props2 = le.Uint32(b[42:])
	p.Props3 = le.Uint32(b[46:])
	p.LineSpacingV2 = le.Uint32(b[50:])
	p.Extra = tail(b, ParaShapeSize)

	return p, nil
}

// EncodeParaShape encodes a PARA_SHAPE body, 54 bytes when Extended and 42 otherwise.
func EncodeParaShape(p model.ParaShape) []byte {
	size := ParaShapeMinSize
	if p.Extended {
		size = ParaShapeSize
	}

	b := make([]byte, size, size+len(p.Extra))
	le.PutUint32(b[0:], p.Props1)
	le.PutUint32(b[4:], uint32(p.LeftMargin))
	le.PutUint32(b[8:], uint32(p.RightMargin))
	le.PutUint32(b[12:], uint32(p.Indent))
	le.PutUint32(b[16:], uint32(p.SpacingTop))
	le.PutUint32(b[20:], uint32(p.SpacingBottom))
	le.PutUint32(b[24:], uint32(p.LineSpacing))
	le.PutUint16(b[28:], p.TabDefID)
	le.PutUint16(b[30:], p.NumberingID)
	le.PutUint16(b[32:], p.BorderFillID)
	for i, v := range p.BorderOffsets {
		le.PutUint16(b[34+i*2:], uint16(v))
	}
	if p.Extended {
		le.PutUint32(b[42:], p.Props2)
		le.PutUint32(b[46:], p.Props3)
		le.PutUint32(b[50:], p.LineSpacingV2)
	}

	return append(b, p.Extra...)
}

// DefaultParaShape is a justified paragraph with 160% proportional line spacing.
func DefaultParaShape() model.ParaShape {
	return model.ParaShape{
		LineSpacing:   160,
		Extended:      true,
		LineSpacingV2: 160,
	}
}
