package model

import (
	"fmt"
	"strings"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
)

// Control is an object anchored in a paragraph. ID names its kind; at most one payload
// field is set. Header keeps the CTRL_HEADER body after the id for kinds without a
// model, and for gso/tbl where the common object properties are not modeled.
type Control struct {
	ID     format.CtrlID
	Header []byte

	Table        *Table
	Picture      *Picture
	TextBox      *TextBox
	Hyperlink    *Hyperlink
	HeaderFooter *HeaderFooter
	SectionDef   *SectionDef
}

// Text returns the text held by the control's nested paragraphs.
func (c *Control) Text() string {
	switch {
	case c.Table != nil:
		return c.Table.Text()
	case c.TextBox != nil:
		return joinText(c.TextBox.Paragraphs)
	case c.HeaderFooter != nil:
		return joinText(c.HeaderFooter.Paragraphs)
	default:
		return ""
	}
}

// Table is a grid of cells. Merged regions are one anchor cell carrying spans; covered
// coordinates have no cell.
type Table struct {
	Props        uint32
	Rows         uint16
	Cols         uint16
	CellSpacing  uint16
	Margins      [4]uint16 // left, right, top, bottom
	BorderFillID uint16
	Cells        []Cell
}

// Cell is a table cell.
type Cell struct {
	ListID       uint16
	Col          uint16
	Row          uint16
	ColSpan      uint16
	RowSpan      uint16
	Width        uint32
	Height       uint32
	Margins      [4]uint16
	BorderFillID uint16
	TextWidth    uint32
	FieldName    string
	Paragraphs   []Paragraph
}

func (c *Cell) spans() (rows, cols int) {
	return max(int(c.RowSpan), 1), max(int(c.ColSpan), 1)
}

func (c *Cell) covers(row, col int) bool {
	rows, cols := c.spans()
	return row >= int(c.Row) && row < int(c.Row)+rows && col >= int(c.Col) && col < int(c.Col)+cols
}

// CellAt returns the cell covering (row, col): either the cell anchored there or the
// anchor of the merged region containing it.
func (t *Table) CellAt(row, col int) (*Cell, bool) {
	for i := range t.Cells {
		if t.Cells[i].covers(row, col) {
			return &t.Cells[i], true
		}
	}

	return nil, false
}

// Validate checks that every anchor lies inside the grid and that no two anchor
// rectangles overlap.
func (t *Table) Validate() error {
	owner := make([]int, int(t.Rows)*int(t.Cols))
	for i := range owner {
		owner[i] = -1
	}

	for i := range t.Cells {
		c := &t.Cells[i]
		rows, cols := c.spans()
		if int(c.Row)+rows > int(t.Rows) || int(c.Col)+cols > int(t.Cols) {
			return fmt.Errorf("%w: cell %d at (%d,%d) span %dx%d exceeds %dx%d grid",
				errs.ErrTableOverlap, i, c.Row, c.Col, rows, cols, t.Rows, t.Cols)
		}
		for r := int(c.Row); r < int(c.Row)+rows; r++ {
			for col := int(c.Col); col < int(c.Col)+cols; col++ {
				slot := r*int(t.Cols) + col
				if owner[slot] >= 0 {
					return fmt.Errorf("%w: cells %d and %d both cover (%d,%d)",
						errs.ErrTableOverlap, owner[slot], i, r, col)
				}
				owner[slot] = i
			}
		}
	}

	return nil
}

// Text joins cell texts, tab separated within a row.
func (t *Table) Text() string {
	var sb strings.Builder
	lastRow := -1
	for i := range t.Cells {
		c := &t.Cells[i]
		switch {
		case lastRow < 0:
		case int(c.Row) != lastRow:
			sb.WriteByte('\n')
		default:
			sb.WriteByte('\t')
		}
		lastRow = int(c.Row)
		sb.WriteString(joinText(c.Paragraphs))
	}

	return sb.String()
}

// HyperlinkType is inferred from the target text.
type HyperlinkType uint8

const (
	LinkURL HyperlinkType = iota
	LinkEmail
	LinkBookmark
	LinkFile
)

func (t HyperlinkType) String() string {
	switch t {
	case LinkURL:
		return "url"
	case LinkEmail:
		return "email"
	case LinkBookmark:
		return "bookmark"
	case LinkFile:
		return "file"
	default:
		return "unknown"
	}
}

// Hyperlink is a %hlk field control.
type Hyperlink struct {
	Type      HyperlinkType
	Display   string
	URL       string
	Tooltip   string
	Color     format.ColorRef
	Underline bool
}

// Header/footer application pages.
const (
	ApplyBoth uint32 = iota
	ApplyEven
	ApplyOdd
)

// HeaderFooter is a page header or footer. Its text lives in Paragraphs.
type HeaderFooter struct {
	Footer     bool
	ApplyTo    uint32
	Height     uint32
	Margin     uint32
	Alignment  uint32
	Paragraphs []Paragraph
}

// TextBox is a drawing object holding paragraphs.
type TextBox struct {
	List       ListHeader
	Paragraphs []Paragraph
}

// Picture is an image drawing object. BinDataID refers to DocInfo.BinDataByID.
type Picture struct {
	BorderColor format.ColorRef
	BorderWidth int32
	BorderProps uint32
	Corners     [8]int32 // x,y for the four image rectangle corners
	Crop        [4]int32 // left, top, right, bottom
	Padding     [4]uint16
	Brightness  int8
	Contrast    int8
	Effect      uint8
	BinDataID   uint16
	Extra       []byte
}
