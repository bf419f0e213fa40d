package model

import "github.com/arloliu/hwp5/format"

// DocumentProperties is the DocInfo singleton with section count and start numbers.
type DocumentProperties struct {
	SectionCount     uint16
	PageStart        uint16
	FootnoteStart    uint16
	EndnoteStart     uint16
	PictureStart     uint16
	TableStart       uint16
	EquationStart    uint16
	CaretListID      uint32
	CaretParagraphID uint32
	CaretPosition    uint32
}

// IDMappings slots.
const (
	MapBinData = iota
	MapFaceHangul
	MapFaceLatin
	MapFaceHanja
	MapFaceJapanese
	MapFaceOther
	MapFaceSymbol
	MapFaceUser
	MapBorderFill
	MapCharShape
	MapTabDef
	MapNumbering
	MapBullet
	MapParaShape
	MapStyle
	MapMemoShape
	MapTrackChange
	MapTrackChangeAuthor

	// MapCount is the slot count written by current producers. Older files carry fewer.
	MapCount
)

// IDMappings holds the per-table resource counts.
type IDMappings struct {
	Counts []int32
}

// Count returns the count in slot, or 0 when the slot is missing.
func (m IDMappings) Count(slot int) int {
	if slot < 0 || slot >= len(m.Counts) || m.Counts[slot] < 0 {
		return 0
	}

	return int(m.Counts[slot])
}

// BinDataType selects where a binary resource lives.
type BinDataType uint8

const (
	BinDataLink BinDataType = iota
	BinDataEmbedding
	BinDataStorage
)

// BinDataCompression selects how a BinData stream is compressed.
type BinDataCompression uint8

const (
	// BinDataCompressDefault follows the FileHeader compressed flag.
	BinDataCompressDefault BinDataCompression = iota
	BinDataCompressAlways
	BinDataCompressNever
)

// BinData describes a binary resource. Data is filled from the BinData storage for
// embedded items.
type BinData struct {
	Props   uint16
	AbsPath string // link only
	RelPath string // link only
	ID      uint16 // embedding and storage
	Ext     string // embedding only
	Data    []byte
}

func (b BinData) Type() BinDataType {
	return BinDataType(b.Props & 0x000F)
}

func (b BinData) Compression() BinDataCompression {
	return BinDataCompression((b.Props >> 4) & 0x3)
}

// FaceName property bits.
const (
	FaceHasAlternative uint8 = 0x80
	FaceHasPanose      uint8 = 0x40
	FaceHasDefault     uint8 = 0x20
)

// FaceName is a font entry.
type FaceName struct {
	Props       uint8
	Name        string
	AltType     uint8
	AltName     string
	Panose      [10]byte
	DefaultName string
}

// Border is one side of a BorderFill.
type Border struct {
	Type  uint8
	Width uint8
	Color format.ColorRef
}

// SolidFill is the solid colour part of a fill.
type SolidFill struct {
	Background  format.ColorRef
	Pattern     format.ColorRef
	PatternType int32
}

// FillSolid is the fill type bit for a solid fill.
const FillSolid uint32 = 0x1

// BorderFill describes cell and paragraph borders with an optional fill.
// Gradient and image fills are kept undecoded in Extra.
type BorderFill struct {
	Props    uint16
	Borders  [4]Border // left, right, top, bottom
	Diagonal Border
	FillType uint32
	Solid    SolidFill // valid when FillType has FillSolid
	Extra    []byte
}

// CharShape is the 72-byte character format.
type CharShape struct {
	FaceIDs        [format.LangCount]uint16
	Ratios         [format.LangCount]uint8
	Spacings       [format.LangCount]int8
	RelSizes       [format.LangCount]uint8
	Offsets        [format.LangCount]int8
	BaseSize       int32 // 1/100 pt
	Props          uint32
	ShadowX        int8
	ShadowY        int8
	TextColor      format.ColorRef
	UnderlineColor format.ColorRef
	ShadeColor     format.ColorRef
	ShadowColor    format.ColorRef
	BorderFillID   uint16
	Reserved       uint16
	Extra          []byte // trailing bytes written by newer producers
}

func (c CharShape) Bold() bool           { return c.Props&0x1 != 0 }
func (c CharShape) Italic() bool         { return c.Props&0x2 != 0 }
func (c CharShape) UnderlineType() uint8 { return uint8(c.Props>>2) & 0x7 }
func (c CharShape) StrikeType() uint8    { return uint8(c.Props>>5) & 0x7 }
func (c CharShape) OutlineType() uint8   { return uint8(c.Props>>8) & 0x7 }
func (c CharShape) ShadowType() uint8    { return uint8(c.Props>>11) & 0x3 }

// SetBold sets or clears the bold bit.
func (c *CharShape) SetBold(on bool) {
	c.Props = setBits(c.Props, 0x1, on)
}

// SetItalic sets or clears the italic bit.
func (c *CharShape) SetItalic(on bool) {
	c.Props = setBits(c.Props, 0x2, on)
}

// SetUnderlineType stores a 3-bit underline type.
func (c *CharShape) SetUnderlineType(t uint8) {
	c.Props = c.Props&^(0x7<<2) | uint32(t&0x7)<<2
}

func setBits(v, mask uint32, on bool) uint32 {
	if on {
		return v | mask
	}

	return v &^ mask
}

// Tab is one tab stop.
type Tab struct {
	Position int32
	Kind     uint8
	Fill     uint8
	Reserved uint16
}

// TabDef is a tab stop list.
type TabDef struct {
	Props uint32
	Tabs  []Tab
}

// ParaHead is the common head of numbering levels and bullets.
type ParaHead struct {
	Props       uint32
	Width       uint16
	Distance    uint16
	CharShapeID uint32
}

// NumberingLevel is one of the seven outline levels of a Numbering.
type NumberingLevel struct {
	Head   ParaHead
	Format string
}

// Numbering is a numbered-list definition.
type Numbering struct {
	Levels      [7]NumberingLevel
	StartNumber uint16
	Extra       []byte
}

// Bullet is a bulleted-list definition.
type Bullet struct {
	Head  ParaHead
	Char  rune
	Extra []byte
}

// ParaShape is the paragraph format. Extended is set when the three trailing words
// written by 5.0.2.5+ producers are present.
type ParaShape struct {
	Props1        uint32
	LeftMargin    int32
	RightMargin   int32
	Indent        int32
	SpacingTop    int32
	SpacingBottom int32
	LineSpacing   int32
	TabDefID      uint16
	NumberingID   uint16
	BorderFillID  uint16
	BorderOffsets [4]int16

	Extended      bool
	Props2        uint32
	Props3        uint32
	LineSpacingV2 uint32
	Extra         []byte
}

// Alignment returns the paragraph alignment (bits 2-4 of Props1).
func (p ParaShape) Alignment() uint8 {
	return uint8(p.Props1>>2) & 0x7
}

// Style is a named combination of paragraph and character shapes.
type Style struct {
	Name        string
	EnglishName string
	Props       uint8
	NextStyleID uint8
	LangID      int16
	ParaShapeID uint16
	CharShapeID uint16
	Extra       []byte
}

// RawRecord is a DocInfo record kept verbatim.
type RawRecord struct {
	Tag   format.Tag
	Level uint16
	Body  []byte
}
