package hwp5

import (
	"bytes"
	"testing"

	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/header"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
	"github.com/stretchr/testify/require"
)

var samplePNG = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x11, 0x22}, 300)...)

// buildSampleSession fills a session with two sections, a table, a picture and a
// hyperlink.
func buildSampleSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()

	s, err := NewSession(opts...)
	require.NoError(t, err)

	_, err = s.AddFaceName(model.FaceName{Name: "Batang"})
	require.NoError(t, err)
	_, err = s.AddCharShape(entity.DefaultCharShape())
	require.NoError(t, err)
	bold := entity.DefaultCharShape()
	bold.SetBold(true)
	boldID, err := s.AddCharShape(bold)
	require.NoError(t, err)
	_, err = s.AddParaShape(entity.DefaultParaShape())
	require.NoError(t, err)
	_, err = s.AddStyle(model.Style{Name: "Normal", EnglishName: "Normal"})
	require.NoError(t, err)
	_, err = s.AddBorderFill(model.BorderFill{})
	require.NoError(t, err)

	picID, err := s.AddBinData(".png", samplePNG)
	require.NoError(t, err)

	_, err = s.AddSection(model.A4())
	require.NoError(t, err)

	_, err = s.AppendParagraph(model.Paragraph{
		Text: "Hello, world",
		Runs: []model.CharShapeRun{{Pos: 0, CharShapeID: uint32(boldID)}, {Pos: 5, CharShapeID: 0}},
		Controls: []model.Control{{
			ID:        format.CtrlHyperlink,
			Hyperlink: &model.Hyperlink{Display: "world", URL: "mailto:world@example.com"},
		}},
	})
	require.NoError(t, err)

	tbl := &model.Table{Rows: 1, Cols: 2, Cells: []model.Cell{
		{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1, Width: 20000},
		{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1, Width: 20000},
	}}
	_, err = s.AppendParagraph(model.Paragraph{Controls: []model.Control{{ID: format.CtrlTable, Table: tbl}}})
	require.NoError(t, err)
	for i, text := range []string{"cell A", "cell B"} {
		require.NoError(t, s.PushList(&tbl.Cells[i].Paragraphs))
		_, err = s.AppendParagraph(model.Paragraph{Text: text})
		require.NoError(t, err)
		require.NoError(t, s.PopList())
	}

	_, err = s.AppendParagraph(model.Paragraph{Controls: []model.Control{{
		ID:      format.CtrlGenShape,
		Picture: &model.Picture{BinDataID: picID},
	}}})
	require.NoError(t, err)

	landscape := model.A4()
	landscape.Props |= 0x1
	_, err = s.AddSection(landscape)
	require.NoError(t, err)
	_, err = s.AppendParagraph(model.Paragraph{Text: "Second section"})
	require.NoError(t, err)

	return s
}

func TestSession_EncodeDecode(t *testing.T) {
	storage, err := buildSampleSession(t).Encode()
	require.NoError(t, err)
	require.Equal(t, []string{
		"BinData/BIN0001.png",
		"BodyText/Section0",
		"BodyText/Section1",
		"DocInfo",
		"FileHeader",
	}, storage.List())

	doc, err := Decode(storage)
	require.NoError(t, err)
	require.NotNil(t, doc)

	require.True(t, doc.Header.Flags.Compressed())
	require.Equal(t, header.DefaultVersion, doc.Header.Version)
	require.Equal(t, uint16(2), doc.DocInfo.Properties.SectionCount)

	face, ok := doc.DocInfo.FaceNameFor(format.LangLatin, 0)
	require.True(t, ok)
	require.Equal(t, "Batang", face.Name)
	cs, ok := doc.DocInfo.CharShape(1)
	require.True(t, ok)
	require.True(t, cs.Bold())

	bin, ok := doc.DocInfo.BinDataByID(1)
	require.True(t, ok)
	require.Equal(t, samplePNG, bin.Data)

	require.Len(t, doc.Sections, 2)
	first := doc.Sections[0]
	require.NotNil(t, first.Def)
	require.Equal(t, uint32(defaultTabStop), first.Def.DefaultTabStop)
	require.False(t, first.Page.Landscape())
	require.Len(t, first.Paragraphs, 3)

	p := first.Paragraphs[0]
	require.Equal(t, "Hello, world", p.Text)
	id, ok := p.ShapeAt(2)
	require.True(t, ok)
	require.Equal(t, uint32(1), id)
	links := p.Hyperlinks()
	require.Len(t, links, 1)
	require.Equal(t, model.LinkEmail, links[0].Type)

	tbl := first.Paragraphs[1].Controls[0].Table
	require.NotNil(t, tbl)
	require.Equal(t, "cell A\tcell B", tbl.Text())

	pic := first.Paragraphs[2].Controls[0].Picture
	require.NotNil(t, pic)
	ref, ok := doc.DocInfo.BinDataByID(pic.BinDataID)
	require.True(t, ok)
	require.Equal(t, "png", ref.Ext)

	second := doc.Sections[1]
	require.Nil(t, second.Def)
	require.True(t, second.Page.Landscape())
	require.Equal(t, "Second section", second.Text())

	require.Equal(t, 4, doc.ParagraphCount())
}

func TestSession_InstanceIDs(t *testing.T) {
	storage, err := buildSampleSession(t).Encode()
	require.NoError(t, err)
	doc, err := Decode(storage)
	require.NoError(t, err)

	seen := make(map[uint32]bool)
	for _, sec := range doc.Sections {
		for _, p := range sec.Paragraphs {
			require.NotZero(t, p.Header.InstanceID)
			require.False(t, seen[p.Header.InstanceID], "instance id %d reused", p.Header.InstanceID)
			seen[p.Header.InstanceID] = true
		}
	}
}

func TestSession_Uncompressed(t *testing.T) {
	storage, err := buildSampleSession(t, WithCompression(false)).Encode()
	require.NoError(t, err)

	raw, err := storage.Open(StreamDocInfo)
	require.NoError(t, err)
	recs, err := record.ReadAll(raw)
	require.NoError(t, err)
	require.Equal(t, format.TagDocumentProperties, recs[0].Tag)

	bin, err := storage.Open("BinData/BIN0001.png")
	require.NoError(t, err)
	require.Equal(t, samplePNG, bin)

	doc, err := Decode(storage)
	require.NoError(t, err)
	require.False(t, doc.Header.Flags.Compressed())
	require.Equal(t, "Second section", doc.Sections[1].Text())
}

func TestSession_BinDataDedup(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)

	a, err := s.AddBinData("png", samplePNG)
	require.NoError(t, err)
	b, err := s.AddBinData("png", bytes.Clone(samplePNG))
	require.NoError(t, err)
	c, err := s.AddBinData("jpg", []byte("other"))
	require.NoError(t, err)

	require.Equal(t, uint16(1), a)
	require.Equal(t, a, b)
	require.Equal(t, uint16(2), c)
	require.Equal(t, 2, s.DocInfo().BinData.Len())

	_, err = s.AddBinData("", []byte("x"))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSession_Lists(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)

	require.ErrorIs(t, s.PopList(), errs.ErrInvalidArgument)
	require.ErrorIs(t, s.PushList(nil), errs.ErrInvalidArgument)

	var outer, inner []model.Paragraph
	require.NoError(t, s.PushList(&outer))
	require.NoError(t, s.PushList(&inner))
	require.Equal(t, 2, s.ListDepth())

	idx, err := s.AppendParagraph(model.Paragraph{Text: "inner"})
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.NoError(t, s.PopList())
	_, err = s.AppendParagraph(model.Paragraph{Text: "outer"})
	require.NoError(t, err)

	require.Len(t, inner, 1)
	require.Len(t, outer, 1)
	require.Equal(t, "outer", outer[0].Text)

	_, err = s.AddSection(model.A4())
	require.NoError(t, err)
	require.Zero(t, s.ListDepth(), "a new section closes open lists")
}

func TestSession_Sealed(t *testing.T) {
	s := buildSampleSession(t)
	_, err := s.Encode()
	require.NoError(t, err)

	_, err = s.Encode()
	require.ErrorIs(t, err, errs.ErrSessionSealed)
	_, err = s.AddCharShape(entity.DefaultCharShape())
	require.ErrorIs(t, err, errs.ErrSessionSealed)
	_, err = s.AppendParagraph(model.Paragraph{Text: "late"})
	require.ErrorIs(t, err, errs.ErrSessionSealed)
	_, err = s.AddBinData("png", []byte{1})
	require.ErrorIs(t, err, errs.ErrSessionSealed)
	require.ErrorIs(t, s.PushList(&[]model.Paragraph{}), errs.ErrSessionSealed)
	_, err = s.NextInstanceID()
	require.ErrorIs(t, err, errs.ErrSessionSealed)
}

func TestSession_NextInstanceID(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)

	first, err := s.NextInstanceID()
	require.NoError(t, err)
	second, err := s.NextInstanceID()
	require.NoError(t, err)
	require.Equal(t, first+1, second)

	_, err = s.AppendParagraph(model.Paragraph{})
	require.NoError(t, err)
	require.Equal(t, second+1, s.sections[0].Paragraphs[0].Header.InstanceID)
}

func TestSession_EncodeRejectsOverlappingCells(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)

	tbl := &model.Table{Rows: 2, Cols: 2, Cells: []model.Cell{
		{Row: 0, Col: 0, RowSpan: 2, ColSpan: 2},
		{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1},
	}}
	_, err = s.AppendParagraph(model.Paragraph{Controls: []model.Control{{ID: format.CtrlTable, Table: tbl}}})
	require.NoError(t, err)

	storage, err := s.Encode()
	require.Nil(t, storage)
	require.ErrorIs(t, err, errs.ErrTableOverlap)
	require.ErrorContains(t, err, "encode section 0")
}

func TestSession_EmptyDocument(t *testing.T) {
	s, err := NewSession()
	require.NoError(t, err)

	storage, err := s.Encode()
	require.NoError(t, err)
	require.Empty(t, s.sections, "encoding does not add sections to the session")

	doc, err := Decode(storage)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	require.Equal(t, model.A4(), *doc.Sections[0].Page)
	require.Empty(t, doc.Sections[0].Paragraphs)
}

func TestSession_Options(t *testing.T) {
	_, err := NewSession(WithVersion(header.Version{Major: 3}))
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)

	_, err = NewSession(WithCompressionLevel(12))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewSession(WithSessionLogger(nil))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	v := header.Version{Major: 5, Minor: 0, Build: 3, Revision: 0}
	s, err := NewSession(WithVersion(v), WithCompressionLevel(9))
	require.NoError(t, err)
	storage, err := s.Encode()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, container.Pack(&out, storage))
	doc, err := OpenReader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Equal(t, v, doc.Header.Version)
}
