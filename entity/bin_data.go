package entity

import (
	"fmt"
	"strings"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

// DecodeBinData decodes a BIN_DATA body. The payload itself lives in the BinData
// storage; see BinDataPath.
func DecodeBinData(b []byte) (model.BinData, error) {
	var bd model.BinData
	r := newFieldReader(b)

	bd.Props = r.u16()
	switch bd.Type() {
	case model.BinDataLink:
		bd.AbsPath = r.wstring()
		bd.RelPath = r.wstring()
	case model.BinDataEmbedding:
		bd.ID = r.u16()
		bd.Ext = r.wstring()
	case model.BinDataStorage:
		bd.ID = r.u16()
	default:
		if r.err == nil {
			return bd, fmt.Errorf("bin data: %w: type %d", errs.ErrInvalidFormat, bd.Type())
		}
	}

	return bd, r.fail("bin data")
}

// EncodeBinData encodes a BIN_DATA body.
func EncodeBinData(bd model.BinData) ([]byte, error) {
	w := stream.NewWriter()
	w.WriteU16(bd.Props)
	switch bd.Type() {
	case model.BinDataLink:
		if err := writeWString(w, "bin data", bd.AbsPath); err != nil {
			return nil, err
		}
		if err := writeWString(w, "bin data", bd.RelPath); err != nil {
			return nil, err
		}
	case model.BinDataEmbedding:
		w.WriteU16(bd.ID)
		if err := writeWString(w, "bin data", bd.Ext); err != nil {
			return nil, err
		}
	case model.BinDataStorage:
		w.WriteU16(bd.ID)
	default:
		return nil, fmt.Errorf("bin data: %w: type %d", errs.ErrInvalidArgument, bd.Type())
	}

	return w.Bytes(), nil
}

// BinDataPath returns the container path of an embedded item, e.g. BinData/BIN0001.png.
func BinDataPath(id uint16, ext string) string {
	return fmt.Sprintf("BinData/BIN%04X.%s", id, strings.ToLower(ext))
}
