package entity

import (
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

// DecodeStyle decodes a STYLE body.
func DecodeStyle(b []byte) (model.Style, error) {
	var s model.Style
	r := newFieldReader(b)

	s.Name = r.wstring()
	s.EnglishName = r.wstring()
	s.Props = r.u8()
	s.NextStyleID = r.u8()
	s.LangID = r.i16()
	s.ParaShapeID = r.u16()
	s.CharShapeID = r.u16()
	s.Extra = r.rest()

	return s, r.fail("style")
}

// EncodeStyle encodes a STYLE body.
func EncodeStyle(s model.Style) ([]byte, error) {
	w := stream.NewWriter()
	if err := writeWString(w, "style", s.Name); err != nil {
		return nil, err
	}
	if err := writeWString(w, "style", s.EnglishName); err != nil {
		return nil, err
	}
	w.WriteU8(s.Props)
	w.WriteU8(s.NextStyleID)
	w.WriteI16(s.LangID)
	w.WriteU16(s.ParaShapeID)
	w.WriteU16(s.CharShapeID)
	w.WriteBytes(s.Extra)

	return w.Bytes(), nil
}
