package entity

import (
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

const (
	// TableHeaderSize is the fixed table header that opens a TABLE body.
	TableHeaderSize = 20
	// CellMinSize is the smallest cell entry: fixed fields plus an empty field name.
	CellMinSize = 34
)

// DecodeTable decodes a TABLE body: the table header followed by up to Rows*Cols cell
// entries. Cell decoding stops early, keeping the cells already read, once fewer than
// CellMinSize bytes remain or a cell's field name overruns the body.
func DecodeTable(b []byte) (model.Table, error) {
	var t model.Table
	if err := checkLen("table", b, TableHeaderSize); err != nil {
		return t, err
	}

	t.Props = le.Uint32(b[0:])
	t.Rows = le.Uint16(b[4:])
	t.Cols = le.Uint16(b[6:])
	t.CellSpacing = le.Uint16(b[8:])
	for i := range t.Margins {
		t.Margins[i] = le.Uint16(b[10+i*2:])
	}
	t.BorderFillID = le.Uint16(b[18:])

	c := stream.NewCursor(b[TableHeaderSize:])
	want := int(t.Rows) * int(t.Cols)
	for len(t.Cells) < want && c.Remaining() >= CellMinSize {
		cell, ok := decodeCell(c)
		if !ok {
			break
		}
		t.Cells = append(t.Cells, cell)
	}

	return t, nil
}

func decodeCell(c *stream.Cursor) (model.Cell, bool) {
	var cell model.Cell
	fixed, err := c.ReadBytes(CellMinSize - 2)
	if err != nil {
		return cell, false
	}

	cell.ListID = le.Uint16(fixed[0:])
	cell.Col = le.Uint16(fixed[2:])
	cell.Row = le.Uint16(fixed[4:])
	cell.ColSpan = le.Uint16(fixed[6:])
	cell.RowSpan = le.Uint16(fixed[8:])
	cell.Width = le.Uint32(fixed[10:])
	cell.Height = le.Uint32(fixed[14:])
	for i := range cell.Margins {
		cell.Margins[i] = le.Uint16(fixed[18+i*2:])
	}
	cell.BorderFillID = le.Uint16(fixed[26:])
	cell.TextWidth = le.Uint32(fixed[28:])

	name, err := c.ReadWString()
	if err != nil {
		return cell, false
	}
	cell.FieldName = name

	return cell, true
}

// EncodeTable encodes a TABLE body with every cell entry. Cell paragraphs are not part
// of the body; they follow as nested records.
//
// EncodeTable does not check the grid; callers that need the anchor invariant call
// model.Table.Validate first, as the section encoder does.
//
// Returns:
//   - []byte: Table header followed by one entry per cell
//   - error: errs.ErrTextTooLong when a cell field name exceeds 65535 UTF-16 units
func EncodeTable(t model.Table) ([]byte, error) {
	w := stream.NewWriter()
	w.WriteU32(t.Props)
	w.WriteU16(t.Rows)
	w.WriteU16(t.Cols)
	w.WriteU16(t.CellSpacing)
	for _, m := range t.Margins {
		w.WriteU16(m)
	}
	w.WriteU16(t.BorderFillID)

	for i := range t.Cells {
		cell := &t.Cells[i]
		w.WriteU16(cell.ListID)
		w.WriteU16(cell.Col)
		w.WriteU16(cell.Row)
		w.WriteU16(cell.ColSpan)
		w.WriteU16(cell.RowSpan)
		w.WriteU32(cell.Width)
		w.WriteU32(cell.Height)
		for _, m := range cell.Margins {
			w.WriteU16(m)
		}
		w.WriteU16(cell.BorderFillID)
		w.WriteU32(cell.TextWidth)
		if err := writeWString(w, "table cell", cell.FieldName); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}
