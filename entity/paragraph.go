package entity

import (
	"fmt"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
)

const (
	// ParaHeaderSize is the minimum PARA_HEADER body.
	ParaHeaderSize = 22
	// CharShapeRunSize is one PARA_CHAR_SHAPE entry.
	CharShapeRunSize = 8
	// LineSegSize is one PARA_LINE_SEG entry.
	LineSegSize = 36
	// ListHeaderSize is the minimum LIST_HEADER body.
	ListHeaderSize = 8
	// CtrlIDSize is the control id that opens every CTRL_HEADER body.
	CtrlIDSize = 4
)

// DecodeParaHeader decodes a PARA_HEADER body.
func DecodeParaHeader(b []byte) (model.ParaHeader, error) {
	var h model.ParaHeader
	if err := checkLen("para header", b, ParaHeaderSize); err != nil {
		return h, err
	}

	h.TextLen = le.Uint32(b[0:])
	h.ControlMask = le.Uint32(b[4:])
	h.ParaShapeID = le.Uint16(b[8:])
	h.StyleID = b[10]
	h.BreakType = b[11]
	h.CharShapeCount = le.Uint16(b[12:])
	h.RangeTagCount = le.Uint16(b[14:])
	h.LineSegCount = le.Uint16(b[16:])
	h.InstanceID = le.Uint32(b[18:])
	if len(b) >= ParaHeaderSize+2 {
		h.HasMergeFlag = true
		h.MergeFlag = le.Uint16(b[22:])
	}

	return h, nil
}

// EncodeParaHeader encodes a PARA_HEADER body.
func EncodeParaHeader(h model.ParaHeader) []byte {
	size := ParaHeaderSize
	if h.HasMergeFlag {
		size += 2
	}

	b := make([]byte, size)
	le.PutUint32(b[0:], h.TextLen)
	le.PutUint32(b[4:], h.ControlMask)
	le.PutUint16(b[8:], h.ParaShapeID)
	b[10] = h.StyleID
	b[11] = h.BreakType
	le.PutUint16(b[12:], h.CharShapeCount)
	le.PutUint16(b[14:], h.RangeTagCount)
	le.PutUint16(b[16:], h.LineSegCount)
	le.PutUint32(b[18:], h.InstanceID)
	if h.HasMergeFlag {
		le.PutUint16(b[22:], h.MergeFlag)
	}

	return b
}

// DecodeCharShapeRuns decodes a PARA_CHAR_SHAPE body. Run positions must not decrease.
func DecodeCharShapeRuns(b []byte) ([]model.CharShapeRun, error) {
	if len(b)%CharShapeRunSize != 0 {
		return nil, fmt.Errorf("char shape runs: %w: %d bytes", errs.ErrCountMismatch, len(b))
	}

	runs := make([]model.CharShapeRun, len(b)/CharShapeRunSize)
	for i := range runs {
		off := i * CharShapeRunSize
		runs[i] = model.CharShapeRun{Pos: le.Uint32(b[off:]), CharShapeID: le.Uint32(b[off+4:])}
		if i > 0 && runs[i].Pos < runs[i-1].Pos {
			return nil, fmt.Errorf("char shape runs: %w: position %d after %d",
				errs.ErrUnorderedRuns, runs[i].Pos, runs[i-1].Pos)
		}
	}

	return runs, nil
}

// EncodeCharShapeRuns encodes a PARA_CHAR_SHAPE body.
func EncodeCharShapeRuns(runs []model.CharShapeRun) []byte {
	b := make([]byte, len(runs)*CharShapeRunSize)
	for i, r := range runs {
		le.PutUint32(b[i*CharShapeRunSize:], r.Pos)
		le.PutUint32(b[i*CharShapeRunSize+4:], r.CharShapeID)
	}

	return b
}

// DecodeLineSegs decodes a PARA_LINE_SEG body.
func DecodeLineSegs(b []byte) ([]model.LineSeg, error) {
	if len(b)%LineSegSize != 0 {
		return nil, fmt.Errorf("line segs: %w: %d bytes", errs.ErrCountMismatch, len(b))
	}

	segs := make([]model.LineSeg, len(b)/LineSegSize)
	for i := range segs {
		s := b[i*LineSegSize:]
		segs[i] = model.LineSeg{
			TextStart:     le.Uint32(s[0:]),
			VerticalPos:   int32(le.Uint32(s[4:])),
			Height:        int32(le.Uint32(s[8:])),
			TextHeight:    int32(le.Uint32(s[12:])),
			Baseline:      int32(le.Uint32(s[16:])),
			Spacing:       int32(le.Uint32(s[20:])),
			HorizontalPos: int32(le.Uint32(s[24:])),
			Width:         int32(le.Uint32(s[28:])),
			Flags:         le.Uint32(s[32:]),
		}
	}

	return segs, nil
}

// EncodeLineSegs encodes a PARA_LINE_SEG body.
func EncodeLineSegs(segs []model.LineSeg) []byte {
	b := make([]byte, len(segs)*LineSegSize)
	for i, seg := range segs {
		s := b[i*LineSegSize:]
		le.PutUint32(s[0:], seg.TextStart)
		le.PutUint32(s[4:], uint32(seg.VerticalPos))
		le.PutUint32(s[8:], uint32(seg.Height))
		le.PutUint32(s[12:], uint32(seg.TextHeight))
		le.PutUint32(s[16:], uint32(seg.Baseline))
		le.PutUint32(s[20:], uint32(seg.Spacing))
		le.PutUint32(s[24:], uint32(seg.HorizontalPos))
		le.PutUint32(s[28:], uint32(seg.Width))
		le.PutUint32(s[32:], seg.Flags)
	}

	return b
}

// DecodeListHeader decodes a LIST_HEADER body.
func DecodeListHeader(b []byte) (model.ListHeader, error) {
	var h model.ListHeader
	if err := checkLen("list header", b, ListHeaderSize); err != nil {
		return h, err
	}

	h.ParaCount = le.Uint16(b[0:])
	h.Reserved = le.Uint16(b[2:])
	h.Props = le.Uint32(b[4:])
	h.Extra = tail(b, ListHeaderSize)

	return h, nil
}

// EncodeListHeader encodes a LIST_HEADER body.
func EncodeListHeader(h model.ListHeader) []byte {
	b := make([]byte, ListHeaderSize, ListHeaderSize+len(h.Extra))
	le.PutUint16(b[0:], h.ParaCount)
	le.PutUint16(b[2:], h.Reserved)
	le.PutUint32(b[4:], h.Props)

	return append(b, h.Extra...)
}

// DecodeCtrlID returns the control id opening a CTRL_HEADER body.
func DecodeCtrlID(b []byte) (format.CtrlID, error) {
	if err := checkLen("ctrl header", b, CtrlIDSize); err != nil {
		return 0, err
	}

	return format.CtrlID(le.Uint32(b)), nil
}

// EncodeCtrlHeader builds a CTRL_HEADER body from a control id and the bytes after it.
func EncodeCtrlHeader(id format.CtrlID, rest []byte) []byte {
	b := make([]byte, CtrlIDSize, CtrlIDSize+len(rest))
	le.PutUint32(b, uint32(id))

	return append(b, rest...)
}
