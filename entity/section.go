package entity

import "github.com/arloliu/hwp5/model"

const (
	// SectionDefSize is the fixed SectionDef layout that follows the 'secd' control id.
	SectionDefSize = 26
	// PageDefSize is the fixed PAGE_DEF layout.
	PageDefSize = 40
)

// DecodeSectionDef decodes a SectionDef layout.
func DecodeSectionDef(b []byte) (model.SectionDef, error) {
	var s model.SectionDef
	if err := checkLen("section def", b, SectionDefSize); err != nil {
		return s, err
	}

	s.Props = le.Uint32(b[0:])
	s.ColumnGap = le.Uint16(b[4:])
	s.VerticalGrid = le.Uint16(b[6:])
	s.HorizontalGrid = le.Uint16(b[8:])
	s.DefaultTabStop = le.Uint32(b[10:])
	s.NumberingID = le.Uint16(b[14:])
	s.PageStart = le.Uint16(b[16:])
	s.PictureStart = le.Uint16(b[18:])
	s.TableStart = le.Uint16(b[20:])
	s.EquationStart = le.Uint16(b[22:])
	s.LangID = le.Uint16(b[24:])

	return s, nil
}

// EncodeSectionDef encodes a SectionDef layout.
func EncodeSectionDef(s model.SectionDef) []byte {
	b := make([]byte, SectionDefSize)
	le.PutUint32(b[0:], s.Props)
	le.PutUint16(b[4:], s.ColumnGap)
	le.PutUint16(b[6:], s.VerticalGrid)
	le.PutUint16(b[8:], s.HorizontalGrid)
	le.PutUint32(b[10:], s.DefaultTabStop)
	le.PutUint16(b[14:], s.NumberingID)
	le.PutUint16(b[16:], s.PageStart)
	le.PutUint16(b[18:], s.PictureStart)
	le.PutUint16(b[20:], s.TableStart)
	le.PutUint16(b[22:], s.EquationStart)
	le.PutUint16(b[24:], s.LangID)

	return b
}

// DecodePageDef decodes a PAGE_DEF layout.
func DecodePageDef(b []byte) (model.PageDef, error) {
	var p model.PageDef
	if err := checkLen("page def", b, PageDefSize); err != nil {
		return p, err
	}

	p.Width = le.Uint32(b[0:])
	p.Height = le.Uint32(b[4:])
	p.LeftMargin = le.Uint32(b[8:])
	p.RightMargin = le.Uint32(b[12:])
	p.TopMargin = le.Uint32(b[16:])
	p.BottomMargin = le.Uint32(b[20:])
	p.HeaderMargin = le.Uint32(b[24:])
	p.FooterMargin = le.Uint32(b[28:])
	p.GutterMargin = le.Uint32(b[32:])
	p.Props = le.Uint32(b[36:])

	return p, nil
}

// EncodePageDef encodes a PAGE_DEF layout.
func EncodePageDef(p model.PageDef) []byte {
	b := make([]byte, PageDefSize)
	le.PutUint32(b[0:], p.Width)
	le.PutUint32(b[4:], p.Height)
	le.PutUint32(b[8:], p.LeftMargin)
	le.PutUint32(b[12:], p.RightMargin)
	le.PutUint32(b[16:], p.TopMargin)
	le.PutUint32(b[20:], p.BottomMargin)
	le.PutUint32(b[24:], p.HeaderMargin)
	le.PutUint32(b[28:], p.FooterMargin)
	le.PutUint32(b[32:], p.GutterMargin)
	le.PutUint32(b[36:], p.Props)

	return b
}

// DecodeSectionBoundary decodes the body of the section-boundary record: a PageDef,
// optionally followed by a SectionDef. Parts that are missing or truncated come back
// nil; an empty body is a valid boundary with nothing to capture.
func DecodeSectionBoundary(b []byte) (*model.PageDef, *model.SectionDef) {
	var (
		page *model.PageDef
		def  *model.SectionDef
	)
	if p, err := DecodePageDef(b); err == nil {
		page = &p
	}
	if len(b) >= PageDefSize+SectionDefSize {
		if s, err := DecodeSectionDef(b[PageDefSize:]); err == nil {
			def = &s
		}
	}

	return page, def
}

// EncodeSectionBoundary is the inverse of DecodeSectionBoundary. A nil page with a
// non-nil def writes a zero PageDef so the SectionDef stays at its offset.
func EncodeSectionBoundary(page *model.PageDef, def *model.SectionDef) []byte {
	if page == nil && def == nil {
		return nil
	}

	var p model.PageDef
	if page != nil {
		p = *page
	}
	b := EncodePageDef(p)
	if def != nil {
		b = append(b, EncodeSectionDef(*def)...)
	}

	return b
}
