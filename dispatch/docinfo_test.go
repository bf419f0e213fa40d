package dispatch

import (
	"testing"

	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
	"github.com/stretchr/testify/require"
)

func newDocInfo() *model.DocInfo {
	di := model.NewDocInfo()
	di.Properties = model.DocumentProperties{SectionCount: 1, PageStart: 1, FootnoteStart: 1}

	di.FaceNames.Add(model.FaceName{Name: "Batang"})
	di.BorderFills.Add(model.BorderFill{FillType: model.FillSolid, Solid: model.SolidFill{Background: format.RGB(255, 255, 255)}})
	bold := entity.DefaultCharShape()
	bold.SetBold(true)
	di.CharShapes.Add(entity.DefaultCharShape())
	di.CharShapes.Add(bold)
	di.ParaShapes.Add(entity.DefaultParaShape())
	di.Styles.Add(model.Style{Name: "바탕글", EnglishName: "Normal"})
	di.BinData.Add(model.BinData{Props: uint16(model.BinDataEmbedding), ID: 1, Ext: "png"})
	di.Raw = append(di.Raw, model.RawRecord{Tag: format.TagCompatibleDocument, Level: 0, Body: []byte{0, 0, 0, 0}})

	return di
}

func TestDocInfo_RoundTrip(t *testing.T) {
	src := newDocInfo()
	data, err := EncodeDocInfo(src)
	require.NoError(t, err)

	di, err := DecodeDocInfo(data, Options{})
	require.NoError(t, err)

	require.Equal(t, src.Properties, di.Properties)
	require.Equal(t, src.ComputeIDMappings(), di.IDMappings)
	require.Equal(t, 1, di.IDMappings.Count(model.MapBinData))
	require.Equal(t, 2, di.IDMappings.Count(model.MapCharShape))

	require.Equal(t, src.CharShapes.Values(), di.CharShapes.Values())
	require.Equal(t, src.ParaShapes.Values(), di.ParaShapes.Values())

	cs, ok := di.CharShape(1)
	require.True(t, ok)
	require.True(t, cs.Bold())

	face, ok := di.FaceNameFor(format.LangHangul, 0)
	require.True(t, ok)
	require.Equal(t, "Batang", face.Name)
	_, ok = di.FaceNameFor(format.LangLatin, 0)
	require.False(t, ok)

	st, ok := di.Style(0)
	require.True(t, ok)
	require.Equal(t, "바탕글", st.Name)
	require.Equal(t, "Normal", st.EnglishName)

	bf, ok := di.BorderFill(1)
	require.True(t, ok)
	require.Equal(t, format.RGB(255, 255, 255), bf.Solid.Background)
	_, ok = di.BorderFill(0)
	require.False(t, ok)

	bd, ok := di.BinDataByID(1)
	require.True(t, ok)
	require.Equal(t, "png", bd.Ext)

	require.Equal(t, src.Raw, di.Raw)
}

func TestDocInfo_ResourceLevels(t *testing.T) {
	data, err := EncodeDocInfo(newDocInfo())
	require.NoError(t, err)

	recs, err := record.ReadAll(data)
	require.NoError(t, err)
	require.Equal(t, format.TagDocumentProperties, recs[0].Tag)
	require.Equal(t, format.TagIDMappings, recs[1].Tag)
	for _, rec := range recs[:2] {
		require.Equal(t, uint16(0), rec.Level)
	}
	for _, rec := range recs[2 : len(recs)-1] {
		require.Equal(t, uint16(1), rec.Level, rec.Tag.String())
	}
}

func TestDocInfo_StopsAtBadResource(t *testing.T) {
	w := record.NewWriter()
	require.NoError(t, w.Write(format.TagCharShape, 1, entity.EncodeCharShape(entity.DefaultCharShape())))
	require.NoError(t, w.Write(format.TagCharShape, 1, make([]byte, 10)))
	require.NoError(t, w.Write(format.TagCharShape, 1, entity.EncodeCharShape(entity.DefaultCharShape())))

	di, err := DecodeDocInfo(w.Bytes(), Options{})
	require.ErrorIs(t, err, errs.ErrShortBuffer)

	var recErr *record.Error
	require.ErrorAs(t, err, &recErr)
	require.Equal(t, format.TagCharShape, recErr.Tag)
	require.Positive(t, recErr.Offset)
	require.Equal(t, 1, di.CharShapes.Len())
}

func TestDocInfo_TruncatedStream(t *testing.T) {
	w := record.NewWriter()
	require.NoError(t, w.Write(format.TagFaceName, 1, mustFace(t, "Gulim")))
	data := append(w.Bytes(), 0x13, 0x00)

	di, err := DecodeDocInfo(data, Options{})
	require.ErrorIs(t, err, errs.ErrShortBuffer)
	require.Equal(t, 1, di.FaceNames.Len())
}

func mustFace(t *testing.T, name string) []byte {
	t.Helper()

	b, err := entity.EncodeFaceName(model.FaceName{Name: name})
	require.NoError(t, err)

	return b
}
