package entity

import (
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

func readParaHead(r *fieldReader) model.ParaHead {
	return model.ParaHead{Props: r.u32(), Width: r.u16(), Distance: r.u16(), CharShapeID: r.u32()}
}

func writeParaHead(w *stream.Writer, h model.ParaHead) {
	w.WriteU32(h.Props)
	w.WriteU16(h.Width)
	w.WriteU16(h.Distance)
	w.WriteU32(h.CharShapeID)
}

// DecodeNumbering decodes a NUMBERING body: seven level heads with their format strings,
// then the start number. Level extensions of newer producers stay in Extra.
func DecodeNumbering(b []byte) (model.Numbering, error) {
	var n model.Numbering
	r := newFieldReader(b)

	for i := range n.Levels {
		n.Levels[i].Head = readParaHead(r)
		n.Levels[i].Format = r.wstring()
	}
	n.StartNumber = r.u16()
	n.Extra = r.rest()

	return n, r.fail("numbering")
}

// EncodeNumbering encodes a NUMBERING body.
func EncodeNumbering(n model.Numbering) ([]byte, error) {
	w := stream.NewWriter()
	for _, level := range n.Levels {
		writeParaHead(w, level.Head)
		if err := writeWString(w, "numbering", level.Format); err != nil {
			return nil, err
		}
	}
	w.WriteU16(n.StartNumber)
	w.WriteBytes(n.Extra)

	return w.Bytes(), nil
}

// DecodeBullet decodes a BULLET body.
func DecodeBullet(b []byte) (model.Bullet, error) {
	var bl model.Bullet
	r := newFieldReader(b)

	bl.Head = readParaHead(r)
	bl.Char = rune(r.u16())
	bl.Extra = r.rest()

	return bl, r.fail("bullet")
}

// EncodeBullet encodes a BULLET body. Char must be in the basic multilingual plane.
func EncodeBullet(bl model.Bullet) []byte {
	w := stream.NewWriter()
	writeParaHead(w, bl.Head)
	w.WriteU16(uint16(bl.Char))
	w.WriteBytes(bl.Extra)

	return w.Bytes()
}
