package record

import (
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/internal/pool"
)

// Writer accumulates framed records into a pooled stream buffer.
type Writer struct {
	buf   *pool.ByteBuffer
	count int
}

// NewWriter creates an empty record stream writer.
func NewWriter() *Writer {
	return &Writer{buf: pool.GetStreamBuffer()}
}

// Write frames body and appends it to the stream.
//
// Parameters:
//   - tag: Record tag id
//   - level: Nesting level; children of a record are written one level deeper
//   - body: Record body, copied into the stream
//
// Returns:
//   - error: errs.ErrInvalidArgument when the header fields do not fit
func (w *Writer) Write(tag format.Tag, level uint16, body []byte) error {
	h := Header{Size: uint32(len(body))} //nolint:gosec
	w.buf.Grow(h.EncodedSize() + len(body))
	b, err := Append(w.buf.B, tag, level, body)
	if err != nil {
		return err
	}
	w.buf.B = b
	w.count++

	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int { return w.count }

// Len returns the stream length in bytes.
func (w *Writer) Len() int { return w.buf.Len() }

// Bytes detaches the stream and releases the pooled buffer. The writer must not be used
// afterwards.
func (w *Writer) Bytes() []byte {
	out := w.buf.Detach()
	pool.PutStreamBuffer(w.buf)
	w.buf = nil

	return out
}
