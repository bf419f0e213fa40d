package model

import (
	"testing"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	var a Arena[string]
	require.Equal(t, 0, a.Add("a"))
	require.Equal(t, 1, a.Add("b"))
	require.Equal(t, 2, a.Len())

	v, ok := a.Get(1)
	require.True(t, ok)
	require.Equal(t, "b", v)

	for _, i := range []int{-1, 2, 1 << 20} {
		v, ok = a.Get(i)
		require.False(t, ok, "index %d", i)
		require.Empty(t, v)
	}

	var seen []string
	for i, s := range a.All() {
		require.Equal(t, len(seen), i)
		seen = append(seen, s)
	}
	require.Equal(t, []string{"a", "b"}, seen)

	require.True(t, a.Update(1, func(s *string) { *s = "B" }))
	require.False(t, a.Update(2, func(*string) { t.Fatal("out of range update ran") }))
	v, _ = a.Get(1)
	require.Equal(t, "B", v)

	values := a.Values()
	values[0] = "mutated"
	v, _ = a.Get(0)
	require.Equal(t, "a", v)
}

func TestDocInfo_FaceNameFor(t *testing.T) {
	d := NewDocInfo()
	for _, name := range []string{"H0", "H1", "L0", "J0"} {
		d.FaceNames.Add(FaceName{Name: name})
	}
	d.IDMappings.Counts = make([]int32, MapCount)
	d.IDMappings.Counts[MapFaceHangul] = 2
	d.IDMappings.Counts[MapFaceLatin] = 1
	d.IDMappings.Counts[MapFaceJapanese] = 1

	f, ok := d.FaceNameFor(format.LangHangul, 1)
	require.True(t, ok)
	require.Equal(t, "H1", f.Name)

	f, ok = d.FaceNameFor(format.LangLatin, 0)
	require.True(t, ok)
	require.Equal(t, "L0", f.Name)

	f, ok = d.FaceNameFor(format.LangJapanese, 0)
	require.True(t, ok)
	require.Equal(t, "J0", f.Name)

	_, ok = d.FaceNameFor(format.LangLatin, 1)
	require.False(t, ok)
	_, ok = d.FaceNameFor(format.LangHanja, 0)
	require.False(t, ok)
	_, ok = d.FaceNameFor(format.Lang(9), 0)
	require.False(t, ok)

	d.IDMappings.Counts = nil
	f, ok = d.FaceNameFor(format.LangUser, 3)
	require.True(t, ok, "flat lookup without mappings")
	require.Equal(t, "J0", f.Name)
}

func TestDocInfo_Lookups(t *testing.T) {
	d := NewDocInfo()
	d.BorderFills.Add(BorderFill{Props: 7})
	d.BinData.Add(BinData{Props: uint16(BinDataEmbedding), ID: 1, Ext: "png"})
	d.BinData.Add(BinData{Props: uint16(BinDataLink), AbsPath: "C:/a.png"})

	_, ok := d.BorderFill(0)
	require.False(t, ok, "0 means none")
	bf, ok := d.BorderFill(1)
	require.True(t, ok)
	require.Equal(t, uint16(7), bf.Props)
	_, ok = d.BorderFill(2)
	require.False(t, ok)

	b, ok := d.BinDataByID(1)
	require.True(t, ok)
	require.Equal(t, "png", b.Ext)
	_, ok = d.BinDataByID(0)
	require.False(t, ok, "links have no storage id")

	_, ok = d.CharShape(0)
	require.False(t, ok)

	m := d.ComputeIDMappings()
	require.Len(t, m.Counts, MapCount)
	require.Equal(t, 2, m.Count(MapBinData))
	require.Equal(t, 1, m.Count(MapBorderFill))
	require.Equal(t, 0, m.Count(99))
}

func TestCharShape_Props(t *testing.T) {
	var c CharShape
	c.SetBold(true)
	c.SetItalic(true)
	c.SetUnderlineType(5)
	require.True(t, c.Bold())
	require.True(t, c.Italic())
	require.Equal(t, uint8(5), c.UnderlineType())
	require.Equal(t, uint32(0x1|0x2|5<<2), c.Props)

	c.SetBold(false)
	require.False(t, c.Bold())

	c.Props |= 3<<5 | 2<<8 | 1<<11
	require.Equal(t, uint8(3), c.StrikeType())
	require.Equal(t, uint8(2), c.OutlineType())
	require.Equal(t, uint8(1), c.ShadowType())
}

func TestParagraph_ShapeAt(t *testing.T) {
	p := Paragraph{Runs: []CharShapeRun{{Pos: 3, CharShapeID: 7}, {Pos: 10, CharShapeID: 2}}}

	id, ok := p.ShapeAt(0)
	require.False(t, ok)
	require.Equal(t, uint32(0), id)

	id, ok = p.ShapeAt(3)
	require.True(t, ok)
	require.Equal(t, uint32(7), id)

	id, _ = p.ShapeAt(9)
	require.Equal(t, uint32(7), id)
	id, _ = p.ShapeAt(1000)
	require.Equal(t, uint32(2), id)

	var empty Paragraph
	_, ok = empty.ShapeAt(5)
	require.False(t, ok)
}

func newGridTable() *Table {
	// 2x3 grid, first row merged across columns 0-1
	return &Table{
		Rows: 2,
		Cols: 3,
		Cells: []Cell{
			{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2, Paragraphs: []Paragraph{{Text: "merged"}}},
			{Row: 0, Col: 2, RowSpan: 1, ColSpan: 1, Paragraphs: []Paragraph{{Text: "c"}}},
			{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1, Paragraphs: []Paragraph{{Text: "d"}}},
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Paragraphs: []Paragraph{{Text: "e"}}},
			{Row: 1, Col: 2, RowSpan: 1, ColSpan: 1, Paragraphs: []Paragraph{{Text: "f"}}},
		},
	}
}

func TestTable_CellAt(t *testing.T) {
	tbl := newGridTable()
	require.NoError(t, tbl.Validate())

	c, ok := tbl.CellAt(0, 1)
	require.True(t, ok)
	require.Equal(t, "merged", c.Paragraphs[0].Text, "covered coordinate resolves to its anchor")

	c, ok = tbl.CellAt(1, 2)
	require.True(t, ok)
	require.Equal(t, "f", c.Paragraphs[0].Text)

	_, ok = tbl.CellAt(2, 0)
	require.False(t, ok)

	require.Equal(t, "merged\tc\nd\te\tf", tbl.Text())
}

func TestTable_ValidateOverlap(t *testing.T) {
	tbl := newGridTable()
	tbl.Cells[1].Col = 1

	err := tbl.Validate()
	require.ErrorIs(t, err, errs.ErrTableOverlap)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	tbl = newGridTable()
	tbl.Cells[4].RowSpan = 2
	require.ErrorIs(t, tbl.Validate(), errs.ErrTableOverlap, "span past the grid")
}

func TestDocument_Text(t *testing.T) {
	link := &Hyperlink{URL: "https://example.com"}
	doc := Document{Sections: []Section{
		{Paragraphs: []Paragraph{
			{Text: "Hello"},
			{Text: "see", Controls: []Control{{ID: format.CtrlHyperlink, Hyperlink: link}}},
		}},
		{Paragraphs: []Paragraph{
			{Controls: []Control{{ID: format.CtrlTable, Table: newGridTable()}}},
		}},
	}}

	require.Equal(t, "Hello\nsee\nmerged\tc\nd\te\tf", doc.Text())
	require.Equal(t, 3, doc.ParagraphCount())
	require.Equal(t, []Hyperlink{*link}, doc.Sections[0].Paragraphs[1].Hyperlinks())
}

func TestComputeIDMappings_FaceGroups(t *testing.T) {
	d := NewDocInfo()
	for range 2 * format.LangCount {
		d.FaceNames.Add(FaceName{Name: "Dotum"})
	}
	m := d.ComputeIDMappings()
	for l := range format.LangCount {
		require.Equal(t, 2, m.Count(MapFaceHangul+l))
	}

	d.FaceNames.Add(FaceName{Name: "Gulim"})
	m = d.ComputeIDMappings()
	require.Equal(t, 2*format.LangCount+1, m.Count(MapFaceHangul))
	require.Zero(t, m.Count(MapFaceLatin))
}
