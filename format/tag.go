package format

import "fmt"

// Tag is a 10-bit record tag id.
type Tag uint16

// TagBegin is the first tag id assigned by the format; lower ids are reserved.
const TagBegin Tag = 0x010

// DocInfo stream tags.
const (
	TagDocumentProperties  Tag = TagBegin + 0
	TagIDMappings          Tag = TagBegin + 1
	TagBinData             Tag = TagBegin + 2
	TagFaceName            Tag = TagBegin + 3
	TagBorderFill          Tag = TagBegin + 4
	TagCharShape           Tag = TagBegin + 5
	TagTabDef              Tag = TagBegin + 6
	TagNumbering           Tag = TagBegin + 7
	TagBullet              Tag = TagBegin + 8
	TagParaShape           Tag = TagBegin + 9
	TagStyle               Tag = TagBegin + 10
	TagDocData             Tag = TagBegin + 11
	TagDistributeDocData   Tag = TagBegin + 12
	TagCompatibleDocument  Tag = TagBegin + 14
	TagLayoutCompatibility Tag = TagBegin + 15
)

// BodyText stream tags.
const (
	TagParaHeader            Tag = TagBegin + 50
	TagParaText              Tag = TagBegin + 51
	TagParaCharShape         Tag = TagBegin + 52
	TagParaLineSeg           Tag = TagBegin + 53
	TagParaRangeTag          Tag = TagBegin + 54
	TagCtrlHeader            Tag = TagBegin + 55
	TagListHeader            Tag = TagBegin + 56
	TagPageDef               Tag = TagBegin + 57
	TagFootnoteShape         Tag = TagBegin + 58
	TagPageBorderFill        Tag = TagBegin + 59
	TagShapeComponent        Tag = TagBegin + 60
	TagTable                 Tag = TagBegin + 61
	TagShapeComponentPicture Tag = TagBegin + 69
	TagCtrlData              Tag = TagBegin + 71
)

// TagSectionBoundary is the tag whose first occurrence in a section stream carries the
// page and section definitions and whose later occurrences mark paragraph boundaries.
const TagSectionBoundary = TagPageDef

// MaxTag is the largest value that fits the 10-bit tag field.
const MaxTag Tag = 0x3FF

var tagNames = map[Tag]string{
	TagDocumentProperties:    "DOCUMENT_PROPERTIES",
	TagIDMappings:            "ID_MAPPINGS",
	TagBinData:               "BIN_DATA",
	TagFaceName:              "FACE_NAME",
	TagBorderFill:            "BORDER_FILL",
	TagCharShape:             "CHAR_SHAPE",
	TagTabDef:                "TAB_DEF",
	TagNumbering:             "NUMBERING",
	TagBullet:                "BULLET",
	TagParaShape:             "PARA_SHAPE",
	TagStyle:                 "STYLE",
	TagDocData:               "DOC_DATA",
	TagDistributeDocData:     "DISTRIBUTE_DOC_DATA",
	TagCompatibleDocument:    "COMPATIBLE_DOCUMENT",
	TagLayoutCompatibility:   "LAYOUT_COMPATIBILITY",
	TagParaHeader:            "PARA_HEADER",
	TagParaText:              "PARA_TEXT",
	TagParaCharShape:         "PARA_CHAR_SHAPE",
	TagParaLineSeg:           "PARA_LINE_SEG",
	TagParaRangeTag:          "PARA_RANGE_TAG",
	TagCtrlHeader:            "CTRL_HEADER",
	TagListHeader:            "LIST_HEADER",
	TagPageDef:               "PAGE_DEF",
	TagFootnoteShape:         "FOOTNOTE_SHAPE",
	TagPageBorderFill:        "PAGE_BORDER_FILL",
	TagShapeComponent:        "SHAPE_COMPONENT",
	TagTable:                 "TABLE",
	TagShapeComponentPicture: "SHAPE_COMPONENT_PICTURE",
	TagCtrlData:              "CTRL_DATA",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TAG_0x%03X", uint16(t))
}

// CtrlID is a four-character control identifier packed big-endian into a uint32,
// as in 'tbl ' = 't'<<24 | 'b'<<16 | 'l'<<8 | ' '.
type CtrlID uint32

// MakeCtrlID packs four characters into a CtrlID.
func MakeCtrlID(a, b, c, d byte) CtrlID {
	return CtrlID(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

var (
	CtrlSectionDef   = MakeCtrlID('s', 'e', 'c', 'd')
	CtrlColumnDef    = MakeCtrlID('c', 'o', 'l', 'd')
	CtrlTable        = MakeCtrlID('t', 'b', 'l', ' ')
	CtrlGenShape     = MakeCtrlID('g', 's', 'o', ' ')
	CtrlHeader       = MakeCtrlID('h', 'e', 'a', 'd')
	CtrlFooter       = MakeCtrlID('f', 'o', 'o', 't')
	CtrlHyperlink    = MakeCtrlID('%', 'h', 'l', 'k')
	CtrlFootnote     = MakeCtrlID('f', 'n', ' ', ' ')
	CtrlEndnote      = MakeCtrlID('e', 'n', ' ', ' ')
	CtrlAutoNumber   = MakeCtrlID('a', 't', 'n', 'o')
	CtrlBookmark     = MakeCtrlID('b', 'o', 'k', 'm')
	CtrlPageHide     = MakeCtrlID('p', 'g', 'h', 'd')
	CtrlFieldUnknown = MakeCtrlID('%', 'u', 'n', 'k')
)

func (c CtrlID) String() string {
	b := [4]byte{byte(c >> 24), byte(c >> 16), byte(c >> 8), byte(c)}
	for _, ch := range b {
		if ch < 0x20 || ch > 0x7E {
			return fmt.Sprintf("0x%08X", uint32(c))
		}
	}

	return string(b[:])
}
