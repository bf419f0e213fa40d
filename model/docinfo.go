package model

import "github.com/arloliu/hwp5/format"

// DocInfo is the document-wide resource table.
type DocInfo struct {
	Properties  DocumentProperties
	IDMappings  IDMappings
	BinData     Arena[BinData]
	FaceNames   Arena[FaceName]
	BorderFills Arena[BorderFill]
	CharShapes  Arena[CharShape]
	TabDefs     Arena[TabDef]
	Numberings  Arena[Numbering]
	Bullets     Arena[Bullet]
	ParaShapes  Arena[ParaShape]
	Styles      Arena[Style]

	// Raw keeps records without a model (DOC_DATA, compatibility settings, ...).
	Raw []RawRecord
}

// NewDocInfo returns an empty resource table.
func NewDocInfo() *DocInfo {
	return &DocInfo{}
}

// CharShape returns the character shape with index id.
func (d *DocInfo) CharShape(id int) (CharShape, bool) {
	return d.CharShapes.Get(id)
}

// ParaShape returns the paragraph shape with index id.
func (d *DocInfo) ParaShape(id int) (ParaShape, bool) {
	return d.ParaShapes.Get(id)
}

// Style returns the style with index id.
func (d *DocInfo) Style(id int) (Style, bool) {
	return d.Styles.Get(id)
}

// BorderFill resolves a border-fill reference. References are 1-based; 0 means none.
func (d *DocInfo) BorderFill(ref uint16) (BorderFill, bool) {
	if ref == 0 {
		return BorderFill{}, false
	}

	return d.BorderFills.Get(int(ref) - 1)
}

// BinDataByID resolves a BinData reference by its storage id.
func (d *DocInfo) BinDataByID(id uint16) (BinData, bool) {
	for _, b := range d.BinData.All() {
		if b.Type() != BinDataLink && b.ID == id {
			return b, true
		}
	}

	return BinData{}, false
}

// FaceNameFor resolves a CharShape face id for a language group.
//
// Face names are stored flat, grouped by language in Lang order; IDMappings gives the
// size of each group. Without IDMappings the id is looked up in the flat table.
func (d *DocInfo) FaceNameFor(lang format.Lang, id uint16) (FaceName, bool) {
	if lang >= format.LangCount {
		return FaceName{}, false
	}
	if len(d.IDMappings.Counts) <= MapFaceUser {
		return d.FaceNames.Get(int(id))
	}

	base := 0
	for l := range int(lang) {
		base += d.IDMappings.Count(MapFaceHangul + l)
	}
	if int(id) >= d.IDMappings.Count(MapFaceHangul+int(lang)) {
		return FaceName{}, false
	}

	return d.FaceNames.Get(base + int(id))
}

// ComputeIDMappings derives the count table from the arenas. A face table whose size is
// a multiple of format.LangCount is split into equal language groups; any other size is
// counted as Hangul faces only.
func (d *DocInfo) ComputeIDMappings() IDMappings {
	counts := make([]int32, MapCount)
	counts[MapBinData] = int32(d.BinData.Len())
	if faces := d.FaceNames.Len(); faces > 0 && faces%format.LangCount == 0 {
		for l := range format.LangCount {
			counts[MapFaceHangul+l] = int32(faces / format.LangCount)
		}
	} else {
		counts[MapFaceHangul] = int32(faces)
	}
	counts[MapBorderFill] = int32(d.BorderFills.Len())
	counts[MapCharShape] = int32(d.CharShapes.Len())
	counts[MapTabDef] = int32(d.TabDefs.Len())
	counts[MapNumbering] = int32(d.Numberings.Len())
	counts[MapBullet] = int32(d.Bullets.Len())
	counts[MapParaShape] = int32(d.ParaShapes.Len())
	counts[MapStyle] = int32(d.Styles.Len())

	return IDMappings{Counts: counts}
}
