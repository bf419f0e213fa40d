package entity

import (
	"fmt"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/stream"
)

const tabSize = 8

// DecodeTabDef decodes a TAB_DEF body. The declared tab count is checked against the
// body length before the tab list is allocated.
func DecodeTabDef(b []byte) (model.TabDef, error) {
	var td model.TabDef
	r := newFieldReader(b)

	td.Props = r.u32()
	count := r.i16()
	if err := r.fail("tab def"); err != nil {
		return td, err
	}
	if count < 0 || int(count)*tabSize > r.remaining() {
		return td, fmt.Errorf("tab def: %w: %d tabs in %d bytes", errs.ErrCountMismatch, count, r.remaining())
	}

	if count > 0 {
		td.Tabs = make([]model.Tab, count)
	}
	for i := range td.Tabs {
		td.Tabs[i] = model.Tab{Position: r.i32(), Kind: r.u8(), Fill: r.u8(), Reserved: r.u16()}
	}

	return td, r.fail("tab def")
}

// EncodeTabDef encodes a TAB_DEF body.
func EncodeTabDef(td model.TabDef) ([]byte, error) {
	if len(td.Tabs) > 0x7FFF {
		return nil, fmt.Errorf("tab def: %w: %d tabs", errs.ErrInvalidArgument, len(td.Tabs))
	}

	w := stream.NewWriter()
	w.WriteU32(td.Props)
	w.WriteI16(int16(len(td.Tabs)))
	for _, t := range td.Tabs {
		w.WriteI32(t.Position)
		w.WriteU8(t.Kind)
		w.WriteU8(t.Fill)
		w.WriteU16(t.Reserved)
	}

	return w.Bytes(), nil
}
