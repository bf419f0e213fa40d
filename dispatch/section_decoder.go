package dispatch

import (
	"log/slog"

	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
)

// sinkKind selects where a frame's finished paragraphs go.
type sinkKind uint8

const (
	sinkNone sinkKind = iota
	sinkSection
	sinkCell
	sinkHeaderFooter
	sinkTextBox
)

// frame is one paragraph list being assembled: the section itself, or the nested list
// of a control such as a table cell.
type frame struct {
	level int // level of the owning CTRL_HEADER; -1 for the section
	ctrl  *model.Control
	sink  sinkKind
	cell  int

	para     *model.Paragraph
	implicit bool // para was opened by a section boundary, not a PARA_HEADER
}

// SectionDecoder assembles one section from its record stream.
//
// A SectionDecoder is single use: feed records with Handle, then call Finish.
type SectionDecoder struct {
	opts Options
	log  *slog.Logger

	section       model.Section
	sawSectionDef bool
	frames        []*frame
}

// NewSectionDecoder creates a decoder for one section stream.
func NewSectionDecoder(opts Options) *SectionDecoder {
	d := &SectionDecoder{opts: opts, log: opts.logger()}
	d.frames = []*frame{{level: -1, sink: sinkSection}}

	return d
}

// SawSectionDefinition reports whether the section-boundary record has been captured.
// Later boundary records act as paragraph breaks.
func (d *SectionDecoder) SawSectionDefinition() bool {
	return d.sawSectionDef
}

// DecodeSection decodes a BodyText section stream.
//
// The returned section holds every paragraph completed before the scan stopped; the
// error, if any, is the framing failure that stopped it.
func DecodeSection(data []byte, opts Options) (*model.Section, error) {
	d := NewSectionDecoder(opts)

	r := record.NewReader(data)
	for r.Next() {
		d.Handle(r.Record())
	}
	s := d.Finish()

	if err := r.Err(); err != nil {
		d.log.Warn("section scan stopped", "offset", r.Offset(), "paragraphs", len(s.Paragraphs), "error", err)
		return s, err
	}

	return s, nil
}

// Handle dispatches one record.
func (d *SectionDecoder) Handle(rec record.Record) {
	level := int(rec.Level)
	for len(d.frames) > 1 && level <= d.top().level {
		d.pop()
	}

	if rec.Tag == format.TagSectionBoundary {
		d.sectionBoundary(rec)
		return
	}

	f := d.top()
	switch rec.Tag {
	case format.TagParaHeader:
		d.flush(f)
		h, err := entity.DecodeParaHeader(rec.Body)
		if err != nil {
			d.skip(rec, err)
		}
		f.para = &model.Paragraph{Header: h}
		f.implicit = false
	case format.TagParaText:
		d.paraText(d.paragraph(f), rec)
	case format.TagParaCharShape:
		p := d.paragraph(f)
		runs, err := entity.DecodeCharShapeRuns(rec.Body)
		if err != nil {
			d.skip(rec, err)
			return
		}
		p.Runs = runs
	case format.TagParaLineSeg:
		p := d.paragraph(f)
		lines, err := entity.DecodeLineSegs(rec.Body)
		if err != nil {
			d.skip(rec, err)
			return
		}
		p.Lines = lines
	case format.TagCtrlHeader:
		d.ctrlHeader(rec)
	case format.TagListHeader:
		d.listHeader(f, rec)
	case format.TagTable:
		d.table(f, rec)
	case format.TagShapeComponentPicture:
		d.picture(f, rec)
	default:
		d.log.Debug("record skipped", "offset", rec.Offset, "tag", rec.Tag.String(), "level", rec.Level)
	}
}

// Finish closes every open paragraph and control and returns the section.
func (d *SectionDecoder) Finish() *model.Section {
	for len(d.frames) > 1 {
		d.pop()
	}
	d.flush(d.top())

	return &d.section
}

func (d *SectionDecoder) top() *frame {
	return d.frames[len(d.frames)-1]
}

// sectionBoundary handles the dual-meaning boundary tag.
func (d *SectionDecoder) sectionBoundary(rec record.Record) {
	if !d.sawSectionDef {
		d.sawSectionDef = true
		page, def := entity.DecodeSectionBoundary(rec.Body)
		if page != nil {
			d.section.Page = page
		}
		if def != nil && d.section.Def == nil {
			d.section.Def = def
		}

		return
	}

	f := d.top()
	d.flush(f)
	f.para = &model.Paragraph{}
	f.implicit = true
}

// paragraph returns the open paragraph of f, opening an implicit one if needed.
func (d *SectionDecoder) paragraph(f *frame) *model.Paragraph {
	if f.para == nil {
		f.para = &model.Paragraph{}
		f.implicit = true
	}

	return f.para
}

func (d *SectionDecoder) paraText(p *model.Paragraph, rec record.Record) {
	opts := entity.TextOptions{
		Strict:   d.opts.StrictText,
		Metadata: p.Header.ControlMask&model.MaskFieldStart != 0,
	}
	text, err := entity.DecodeText(rec.Body, opts)
	if err != nil {
		d.skip(rec, err)
		return
	}
	p.Text = entity.TrimParagraphBreak(text)
}

// ctrlHeader opens a control frame. The control is attached to the enclosing paragraph
// when its frame closes.
func (d *SectionDecoder) ctrlHeader(rec record.Record) {
	id, err := entity.DecodeCtrlID(rec.Body)
	if err != nil {
		d.skip(rec, err)
		return
	}

	ctrl := &model.Control{ID: id}
	switch id {
	case format.CtrlHyperlink:
		if link, err := entity.DecodeHyperlink(rec.Body); err == nil {
			ctrl.Hyperlink = &link
		} else {
			d.skip(rec, err)
			ctrl.Header = rawTail(rec.Body)
		}
	case format.CtrlHeader, format.CtrlFooter:
		if hf, err := entity.DecodeHeaderFooter(rec.Body); err == nil {
			hf.Footer = id == format.CtrlFooter
			ctrl.HeaderFooter = &hf
		} else {
			d.skip(rec, err)
			ctrl.Header = rawTail(rec.Body)
		}
	case format.CtrlSectionDef:
		if def, err := entity.DecodeSectionDef(rec.Body[entity.CtrlIDSize:]); err == nil {
			ctrl.SectionDef = &def
			if d.section.Def == nil {
				d.section.Def = &def
			}
		} else {
			d.skip(rec, err)
			ctrl.Header = rawTail(rec.Body)
		}
	default:
		ctrl.Header = rawTail(rec.Body)
	}

	d.frames = append(d.frames, &frame{level: int(rec.Level), ctrl: ctrl})
}

func (d *SectionDecoder) listHeader(f *frame, rec record.Record) {
	if f.ctrl == nil {
		d.log.Debug("list header outside a control", "offset", rec.Offset)
		return
	}
	d.flush(f)
	f.para = nil

	lh, err := entity.DecodeListHeader(rec.Body)
	if err != nil {
		d.skip(rec, err)
	}

	switch {
	case f.ctrl.ID == format.CtrlTable:
		if f.ctrl.Table == nil {
			f.ctrl.Table = &model.Table{}
		}
		if f.sink == sinkCell {
			f.cell++
		} else {
			f.sink = sinkCell
			f.cell = 0
		}
	case f.ctrl.HeaderFooter != nil:
		f.sink = sinkHeaderFooter
	case f.ctrl.ID == format.CtrlGenShape:
		if f.ctrl.TextBox == nil {
			f.ctrl.TextBox = &model.TextBox{List: lh}
		}
		f.sink = sinkTextBox
	default:
		f.sink = sinkNone
	}
}

// syntheticCell places a cell that has a paragraph list but no table entry.
func syntheticCell(t *model.Table, i int) model.Cell {
	cols := max(int(t.Cols), 1)

	return model.Cell{
		Row:     uint16(i / cols), //nolint:gosec
		Col:     uint16(i % cols), //nolint:gosec
		RowSpan: 1,
		ColSpan: 1,
	}
}

func (d *SectionDecoder) table(f *frame, rec record.Record) {
	if f.ctrl == nil || f.ctrl.ID != format.CtrlTable {
		d.log.Debug("table outside a table control", "offset", rec.Offset)
		return
	}

	t, err := entity.DecodeTable(rec.Body)
	if err != nil {
		d.skip(rec, err)
		return
	}
	f.ctrl.Table = &t
}

func (d *SectionDecoder) picture(f *frame, rec record.Record) {
	if f.ctrl == nil {
		d.log.Debug("picture outside a control", "offset", rec.Offset)
		return
	}

	pic, err := entity.DecodePicture(rec.Body)
	if err != nil {
		d.skip(rec, err)
		return
	}
	f.ctrl.Picture = &pic
}

// pop closes the innermost control and attaches it to its parent paragraph.
func (d *SectionDecoder) pop() {
	f := d.top()
	d.flush(f)
	d.frames = d.frames[:len(d.frames)-1]

	parent := d.paragraph(d.top())
	parent.Controls = append(parent.Controls, *f.ctrl)
}

// flush moves f's open paragraph into f's sink. Implicit paragraphs that never
// received content are dropped.
func (d *SectionDecoder) flush(f *frame) {
	p := f.para
	if p == nil {
		return
	}
	f.para = nil
	if f.implicit && p.Text == "" && p.Runs == nil && p.Lines == nil && p.Controls == nil {
		return
	}

	switch f.sink {
	case sinkSection:
		d.section.Paragraphs = append(d.section.Paragraphs, *p)
	case sinkCell:
		t := f.ctrl.Table
		for len(t.Cells) <= f.cell {
			t.Cells = append(t.Cells, syntheticCell(t, len(t.Cells)))
		}
		t.Cells[f.cell].Paragraphs = append(t.Cells[f.cell].Paragraphs, *p)
	case sinkHeaderFooter:
		f.ctrl.HeaderFooter.Paragraphs = append(f.ctrl.HeaderFooter.Paragraphs, *p)
	case sinkTextBox:
		f.ctrl.TextBox.Paragraphs = append(f.ctrl.TextBox.Paragraphs, *p)
	default:
		d.log.Debug("paragraph outside a paragraph list dropped", "control", f.ctrl.ID.String())
	}
}

func (d *SectionDecoder) skip(rec record.Record, err error) {
	d.log.Debug("record field left empty", "offset", rec.Offset, "tag", rec.Tag.String(), "error", err)
}

func rawTail(body []byte) []byte {
	if len(body) <= entity.CtrlIDSize {
		return nil
	}

	return append([]byte(nil), body[entity.CtrlIDSize:]...)
}
