package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/internal/pool"
)

// Writer appends little-endian primitives to a pooled buffer.
//
// The zero value is not usable; create one with NewWriter and finish it with Bytes,
// which detaches the result and returns the buffer to its pool.
type Writer struct {
	buf *pool.ByteBuffer
}

// NewWriter creates a writer backed by a pooled record buffer.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetRecordBuffer()}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	_ = w.buf.WriteByte(v)
}

// WriteI8 appends one signed byte.
func (w *Writer) WriteI8(v int8) {
	_ = w.buf.WriteByte(byte(v))
}

// WriteU16 appends a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	w.buf.B = binary.LittleEndian.AppendUint16(w.buf.B, v)
}

// WriteI16 appends a little-endian int16.
func (w *Writer) WriteI16(v int16) {
	w.WriteU16(uint16(v)) //nolint:gosec
}

// WriteU32 appends a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.buf.B = binary.LittleEndian.AppendUint32(w.buf.B, v)
}

// WriteI32 appends a little-endian int32.
func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v)) //nolint:gosec
}

// WriteU64 appends a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	w.buf.B = binary.LittleEndian.AppendUint64(w.buf.B, v)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(p []byte) {
	w.buf.MustWrite(p)
}

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	w.buf.Grow(n)
	for range n {
		_ = w.buf.WriteByte(0)
	}
}

// WriteUnits appends UTF-16 code units.
func (w *Writer) WriteUnits(units []uint16) {
	w.buf.Grow(2 * len(units))
	for _, u := range units {
		w.WriteU16(u)
	}
}

// WriteUTF16 appends s as UTF-16 code units without a length prefix.
func (w *Writer) WriteUTF16(s string) {
	w.WriteUnits(EncodeUTF16(s))
}

// WriteWString appends a 16-bit code-unit count followed by the UTF-16 text.
func (w *Writer) WriteWString(s string) error {
	units := EncodeUTF16(s)
	if len(units) > math.MaxUint16 {
		return fmt.Errorf("%w: %d units", errs.ErrTextTooLong, len(units))
	}
	w.WriteU16(uint16(len(units)))
	w.WriteUnits(units)

	return nil
}

// Bytes detaches the written bytes and releases the pooled buffer. The writer must not
// be used afterwards.
func (w *Writer) Bytes() []byte {
	out := w.buf.Detach()
	pool.PutRecordBuffer(w.buf)
	w.buf = nil

	return out
}
