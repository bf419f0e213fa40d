package entity

import (
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

// borderFillFixedSize covers properties, four borders and the diagonal.
const borderFillFixedSize = 2 + 5*6

// DecodeBorderFill decodes a BORDER_FILL body. Only solid fills are modeled; other fill
// data stays in Extra.
func DecodeBorderFill(b []byte) (model.BorderFill, error) {
	var bf model.BorderFill
	if err := checkLen("border fill", b, borderFillFixedSize+4); err != nil {
		return bf, err
	}

	r := newFieldReader(b)
	bf.Props = r.u16()
	for i := range bf.Borders {
		bf.Borders[i] = readBorder(r)
	}
	bf.Diagonal = readBorder(r)
	bf.FillType = r.u32()
	if bf.FillType&model.FillSolid != 0 {
		bf.Solid.Background = r.color()
		bf.Solid.Pattern = r.color()
		bf.Solid.PatternType = r.i32()
	}
	bf.Extra = r.rest()

	return bf, r.fail("border fill")
}

func readBorder(r *fieldReader) model.Border {
	return model.Border{Type: r.u8(), Width: r.u8(), Color: r.color()}
}

// EncodeBorderFill encodes a BORDER_FILL body.
func EncodeBorderFill(bf model.BorderFill) []byte {
	w := stream.NewWriter()
	w.WriteU16(bf.Props)
	for _, border := range bf.Borders {
		writeBorder(w, border)
	}
	writeBorder(w, bf.Diagonal)
	w.WriteU32(bf.FillType)
	if bf.FillType&model.FillSolid != 0 {
		w.WriteU32(uint32(bf.Solid.Background))
		w.WriteU32(uint32(bf.Solid.Pattern))
		w.WriteI32(bf.Solid.PatternType)
	}
	w.WriteBytes(bf.Extra)

	return w.Bytes()
}

func writeBorder(w *stream.Writer, b model.Border) {
	w.WriteU8(b.Type)
	w.WriteU8(b.Width)
	w.WriteU32(uint32(b.Color))
}
