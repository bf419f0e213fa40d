package dispatch

import (
	"fmt"

	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
)

// EncodeSection encodes a section stream.
//
// The page and section definitions, when present, are written first as a single
// section-boundary record. Paragraphs follow at level 0 with their parts one level
// below; control children are nested one level below their CTRL_HEADER.
func EncodeSection(s *model.Section) ([]byte, error) {
	w := record.NewWriter()

	if body := entity.EncodeSectionBoundary(s.Page, s.Def); body != nil {
		if err := w.Write(format.TagSectionBoundary, 0, body); err != nil {
			return nil, err
		}
	}
	if err := encodeParagraphs(w, s.Paragraphs, 0); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

func encodeParagraphs(w *record.Writer, paras []model.Paragraph, level uint16) error {
	for i := range paras {
		if err := encodeParagraph(w, &paras[i], level); err != nil {
			return fmt.Errorf("paragraph %d: %w", i, err)
		}
	}

	return nil
}

func encodeParagraph(w *record.Writer, p *model.Paragraph, level uint16) error {
	text, units := entity.EncodeText(p.Text)

	h := p.Header
	h.TextLen = units
	h.CharShapeCount = uint16(len(p.Runs)) //nolint:gosec
	h.LineSegCount = uint16(len(p.Lines))  //nolint:gosec
	if err := w.Write(format.TagParaHeader, level, entity.EncodeParaHeader(h)); err != nil {
		return err
	}

	child := level + 1
	if p.Text != "" {
		if err := w.Write(format.TagParaText, child, text); err != nil {
			return err
		}
	}
	if len(p.Runs) > 0 {
		if err := w.Write(format.TagParaCharShape, child, entity.EncodeCharShapeRuns(p.Runs)); err != nil {
			return err
		}
	}
	if len(p.Lines) > 0 {
		if err := w.Write(format.TagParaLineSeg, child, entity.EncodeLineSegs(p.Lines)); err != nil {
			return err
		}
	}
	for i := range p.Controls {
		if err := encodeControl(w, &p.Controls[i], child); err != nil {
			return fmt.Errorf("control %s: %w", p.Controls[i].ID, err)
		}
	}

	return nil
}

func encodeControl(w *record.Writer, c *model.Control, level uint16) error {
	body, err := ctrlHeaderBody(c)
	if err != nil {
		return err
	}
	if err := w.Write(format.TagCtrlHeader, level, body); err != nil {
		return err
	}

	child := level + 1
	switch {
	case c.Table != nil:
		if err := c.Table.Validate(); err != nil {
			return err
		}
		tbl, err := entity.EncodeTable(*c.Table)
		if err != nil {
			return err
		}
		if err := w.Write(format.TagTable, child, tbl); err != nil {
			return err
		}
		for i := range c.Table.Cells {
			cell := &c.Table.Cells[i]
			if err := encodeList(w, model.ListHeader{}, cell.Paragraphs, child); err != nil {
				return fmt.Errorf("cell %d: %w", i, err)
			}
		}
	case c.HeaderFooter != nil:
		return encodeList(w, model.ListHeader{}, c.HeaderFooter.Paragraphs, child)
	case c.TextBox != nil:
		return encodeList(w, c.TextBox.List, c.TextBox.Paragraphs, child)
	case c.Picture != nil:
		return w.Write(format.TagShapeComponentPicture, child, entity.EncodePicture(*c.Picture))
	}

	return nil
}

func ctrlHeaderBody(c *model.Control) ([]byte, error) {
	switch {
	case c.Hyperlink != nil:
		return entity.EncodeHyperlink(*c.Hyperlink)
	case c.HeaderFooter != nil:
		return entity.EncodeHeaderFooter(*c.HeaderFooter), nil
	case c.SectionDef != nil:
		return entity.EncodeCtrlHeader(format.CtrlSectionDef, entity.EncodeSectionDef(*c.SectionDef)), nil
	default:
		return entity.EncodeCtrlHeader(c.ID, c.Header), nil
	}
}

func encodeList(w *record.Writer, lh model.ListHeader, paras []model.Paragraph, level uint16) error {
	lh.ParaCount = uint16(len(paras)) //nolint:gosec
	if err := w.Write(format.TagListHeader, level, entity.EncodeListHeader(lh)); err != nil {
		return err
	}

	return encodeParagraphs(w, paras, level)
}
