package entity

import (
	"fmt"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/model"
)

// DocumentPropertiesSize is the fixed DOCUMENT_PROPERTIES body size.
const DocumentPropertiesSize = 26

// DecodeDocumentProperties decodes a DOCUMENT_PROPERTIES body.
func DecodeDocumentProperties(b []byte) (model.DocumentProperties, error) {
	var p model.DocumentProperties
	if err := checkLen("document properties", b, DocumentPropertiesSize); err != nil {
		return p, err
	}

	p.SectionCount = le.Uint16(b[0:])
	p.PageStart = le.Uint16(b[2:])
	p.FootnoteStart = le.Uint16(b[4:])
	p.EndnoteStart = le.Uint16(b[6:])
	p.PictureStart = le.Uint16(b[8:])
	p.TableStart = le.Uint16(b[10:])
	p.EquationStart = le.Uint16(b[12:])
	p.CaretListID = le.Uint32(b[14:])
	p.CaretParagraphID = le.Uint32(b[18:])
	p.CaretPosition = le.Uint32(b[22:])

	return p, nil
}

// EncodeDocumentProperties encodes a DOCUMENT_PROPERTIES body.
func EncodeDocumentProperties(p model.DocumentProperties) []byte {
	b := make([]byte, DocumentPropertiesSize)
	le.PutUint16(b[0:], p.SectionCount)
	le.PutUint16(b[2:], p.PageStart)
	le.PutUint16(b[4:], p.FootnoteStart)
	le.PutUint16(b[6:], p.EndnoteStart)
	le.PutUint16(b[8:], p.PictureStart)
	le.PutUint16(b[10:], p.TableStart)
	le.PutUint16(b[12:], p.EquationStart)
	le.PutUint32(b[14:], p.CaretListID)
	le.PutUint32(b[18:], p.CaretParagraphID)
	le.PutUint32(b[22:], p.CaretPosition)

	return b
}

// DecodeIDMappings decodes an ID_MAPPINGS body: a whole number of 32-bit counts.
func DecodeIDMappings(b []byte) (model.IDMappings, error) {
	if len(b)%4 != 0 {
		return model.IDMappings{}, fmt.Errorf("id mappings: %w: %d bytes is not a multiple of 4",
			errs.ErrCountMismatch, len(b))
	}

	counts := make([]int32, len(b)/4)
	for i := range counts {
		counts[i] = int32(le.Uint32(b[i*4:]))
	}

	return model.IDMappings{Counts: counts}, nil
}

// EncodeIDMappings encodes an ID_MAPPINGS body.
func EncodeIDMappings(m model.IDMappings) []byte {
	b := make([]byte, len(m.Counts)*4)
	for i, v := range m.Counts {
		le.PutUint32(b[i*4:], uint32(v))
	}

	return b
}
