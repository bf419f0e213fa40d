package entity

import (
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
)

// HeaderFooterSize is the fixed 'head'/'foot' CTRL_HEADER body: ten 32-bit words.
const HeaderFooterSize = 40

// DecodeHeaderFooter decodes the geometry of a header or footer control.
//
// Word 0 is the control id, words 2 and 3 both carry the height and word 4 the margin.
// The other words are not interpreted. Text comes from the nested paragraphs.
func DecodeHeaderFooter(b []byte) (model.HeaderFooter, error) {
	var hf model.HeaderFooter
	if err := checkLen("header/footer", b, HeaderFooterSize); err != nil {
		return hf, err
	}

	hf.Footer = format.CtrlID(le.Uint32(b[0:])) == format.CtrlFooter
	hf.Height = le.Uint32(b[8:])
	hf.Margin = le.Uint32(b[16:])

	return hf, nil
}

// EncodeHeaderFooter encodes a header or footer control: id, apply pages, height
// twice, margin and alignment, with the remaining words zero.
func EncodeHeaderFooter(hf model.HeaderFooter) []byte {
	id := format.CtrlHeader
	if hf.Footer {
		id = format.CtrlFooter
	}

	b := make([]byte, HeaderFooterSize)
	le.PutUint32(b[0:], uint32(id))
	le.PutUint32(b[4:], hf.ApplyTo)
	le.PutUint32(b[8:], hf.Height)
	le.PutUint32(b[12:], hf.Height)
	le.PutUint32(b[16:], hf.Margin)
	le.PutUint32(b[20:], hf.Alignment)

	return b
}
