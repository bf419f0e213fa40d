package entity

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/stream"
)

var le = binary.LittleEndian

// fieldReader reads consecutive fields from a body, remembering the first failure so
// a decoder can read a whole layout and check once.
type fieldReader struct {
	c   *stream.Cursor
	err error
}

func newFieldReader(body []byte) *fieldReader {
	return &fieldReader{c: stream.NewCursor(body)}
}

func (r *fieldReader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadU8()
	r.err = err

	return v
}

func (r *fieldReader) i8() int8 {
	return int8(r.u8())
}

func (r *fieldReader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadU16()
	r.err = err

	return v
}

func (r *fieldReader) i16() int16 {
	return int16(r.u16())
}

func (r *fieldReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadU32()
	r.err = err

	return v
}

func (r *fieldReader) i32() int32 {
	return int32(r.u32())
}

func (r *fieldReader) color() format.ColorRef {
	return format.ColorRef(r.u32())
}

func (r *fieldReader) wstring() string {
	if r.err != nil {
		return ""
	}
	v, err := r.c.ReadWString()
	r.err = err

	return v
}

func (r *fieldReader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	v, err := r.c.ReadBytes(n)
	r.err = err

	return v
}

// rest returns a copy of the unread tail, or nil when nothing is left.
func (r *fieldReader) rest() []byte {
	if r.err != nil || r.c.Remaining() == 0 {
		return nil
	}

	return append([]byte(nil), r.c.Rest()...)
}

func (r *fieldReader) remaining() int {
	return r.c.Remaining()
}

// fail wraps the latched error with the entity name.
func (r *fieldReader) fail(entity string) error {
	if r.err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", entity, r.err)
}

// checkLen fails when a fixed layout has fewer than want bytes.
func checkLen(entity string, body []byte, want int) error {
	if len(body) < want {
		return fmt.Errorf("%s: %w: %d bytes, need %d", entity, errs.ErrShortBuffer, len(body), want)
	}

	return nil
}

// writeWString writes a length-prefixed string, wrapping the error with entity.
func writeWString(w *stream.Writer, entity, s string) error {
	if err := w.WriteWString(s); err != nil {
		return fmt.Errorf("%s: %w", entity, err)
	}

	return nil
}

// tail returns a copy of body[n:], or nil when there is none.
func tail(body []byte, n int) []byte {
	if len(body) <= n {
		return nil
	}

	return append([]byte(nil), body[n:]...)
}
