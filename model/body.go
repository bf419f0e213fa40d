package model

import (
	"sort"
	"strings"
)

// SectionDef holds section-wide settings.
type SectionDef struct {
	Props          uint32
	ColumnGap      uint16
	VerticalGrid   uint16
	HorizontalGrid uint16
	DefaultTabStop uint32
	NumberingID    uint16
	PageStart      uint16
	PictureStart   uint16
	TableStart     uint16
	EquationStart  uint16
	LangID         uint16
}

// PageDef is the paper size and margins of a section, in HWPUNIT.
type PageDef struct {
	Width        uint32
	Height       uint32
	LeftMargin   uint32
	RightMargin  uint32
	TopMargin    uint32
	BottomMargin uint32
	HeaderMargin uint32
	FooterMargin uint32
	GutterMargin uint32
	Props        uint32
}

// Landscape reports whether the page is turned sideways.
func (p PageDef) Landscape() bool {
	return p.Props&0x1 != 0
}

// A4 returns an A4 portrait page with the margins common producers default to.
func A4() PageDef {
	return PageDef{
		Width:        59528,
		Height:       84188,
		LeftMargin:   8504,
		RightMargin:  8504,
		TopMargin:    5668,
		BottomMargin: 4252,
		HeaderMargin: 4252,
		FooterMargin: 4252,
	}
}

// Section is one BodyText/Section{N} stream.
type Section struct {
	Def        *SectionDef // first section only
	Page       *PageDef
	Paragraphs []Paragraph
}

// Text joins the section's paragraph texts with newlines.
func (s *Section) Text() string {
	return joinText(s.Paragraphs)
}

// Control mask bits of a paragraph header.
const (
	MaskSectionColumnDef uint32 = 1 << 2
	MaskFieldStart       uint32 = 1 << 3
	MaskFieldEnd         uint32 = 1 << 4
	MaskTab              uint32 = 1 << 9
	MaskLineBreak        uint32 = 1 << 10
	MaskDrawingTable     uint32 = 1 << 11
)

// ParaHeader is the fixed part of a paragraph.
type ParaHeader struct {
	TextLen        uint32 // in UTF-16 units, terminator included
	ControlMask    uint32
	ParaShapeID    uint16
	StyleID        uint8
	BreakType      uint8
	CharShapeCount uint16
	RangeTagCount  uint16
	LineSegCount   uint16
	InstanceID     uint32

	HasMergeFlag bool
	MergeFlag    uint16
}

// CharShapeRun starts CharShapeID at text position Pos.
type CharShapeRun struct {
	Pos         uint32
	CharShapeID uint32
}

// LineSeg is one cached layout line.
type LineSeg struct {
	TextStart     uint32
	VerticalPos   int32
	Height        int32
	TextHeight    int32
	Baseline      int32
	Spacing       int32
	HorizontalPos int32
	Width         int32
	Flags         uint32
}

// ListHeader opens a nested paragraph list (cell, text box, header/footer body).
type ListHeader struct {
	ParaCount uint16
	Reserved  uint16
	Props     uint32
	Extra     []byte
}

// Paragraph is one paragraph. Every field other than Header is optional and is left
// empty when the source stream did not carry the record, or the record failed to decode.
type Paragraph struct {
	Header   ParaHeader
	Text     string
	Runs     []CharShapeRun // sorted by Pos
	Lines    []LineSeg
	Controls []Control
}

// ShapeAt returns the character shape in effect at text position pos.
//
// Positions before the first run use the implicit default shape 0, reported with
// ok == false.
func (p *Paragraph) ShapeAt(pos uint32) (id uint32, ok bool) {
	i := sort.Search(len(p.Runs), func(i int) bool { return p.Runs[i].Pos > pos })
	if i == 0 {
		return 0, false
	}

	return p.Runs[i-1].CharShapeID, true
}

// Hyperlinks returns the hyperlinks anchored in the paragraph.
func (p *Paragraph) Hyperlinks() []Hyperlink {
	var out []Hyperlink
	for i := range p.Controls {
		if h := p.Controls[i].Hyperlink; h != nil {
			out = append(out, *h)
		}
	}

	return out
}

// FullText returns the paragraph text followed by the text of nested controls.
func (p *Paragraph) FullText() string {
	var sb strings.Builder
	sb.WriteString(p.Text)
	for i := range p.Controls {
		if nested := p.Controls[i].Text(); nested != "" {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(nested)
		}
	}

	return sb.String()
}

func joinText(paras []Paragraph) string {
	parts := make([]string, 0, len(paras))
	for i := range paras {
		parts = append(parts, paras[i].FullText())
	}

	return strings.Join(parts, "\n")
}
