package entity

import (
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

// DecodeFaceName decodes a FACE_NAME body. The alternative font, panose and default
// font blocks are present when the matching property bit is set.
func DecodeFaceName(b []byte) (model.FaceName, error) {
	var f model.FaceName
	r := newFieldReader(b)

	f.Props = r.u8()
	f.Name = r.wstring()
	if f.Props&model.FaceHasAlternative != 0 {
		f.AltType = r.u8()
		f.AltName = r.wstring()
	}
	if f.Props&model.FaceHasPanose != 0 {
		copy(f.Panose[:], r.bytes(len(f.Panose)))
	}
	if f.Props&model.FaceHasDefault != 0 {
		f.DefaultName = r.wstring()
	}

	return f, r.fail("face name")
}

// EncodeFaceName encodes a FACE_NAME body.
func EncodeFaceName(f model.FaceName) ([]byte, error) {
	w := stream.NewWriter()
	w.WriteU8(f.Props)
	if err := writeWString(w, "face name", f.Name); err != nil {
		return nil, err
	}
	if f.Props&model.FaceHasAlternative != 0 {
		w.WriteU8(f.AltType)
		if err := writeWString(w, "face name", f.AltName); err != nil {
			return nil, err
		}
	}
	if f.Props&model.FaceHasPanose != 0 {
		w.WriteBytes(f.Panose[:])
	}
	if f.Props&model.FaceHasDefault != 0 {
		if err := writeWString(w, "face name", f.DefaultName); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}
