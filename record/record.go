package record

import (
	"fmt"
	"iter"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/stream"
)

// Record is one framed record. Body aliases the stream buffer.
type Record struct {
	Header
	Body []byte
	// Offset is the stream offset of the record header.
	Offset int
}

// Read reads one record from c.
//
// The declared size is checked against the remaining bytes before the body is sliced,
// so an adversarial size never causes an allocation or an out-of-bounds read.
//
// Parameters:
//   - c: Cursor positioned at a record header
//
// Returns:
//   - Record: Framed record; Body aliases the cursor's buffer
//   - error: errs.ErrShortBuffer when fewer than four bytes remain for the header, or
//     errs.ErrRecordTooLarge when the declared size exceeds the remaining bytes. In both
//     cases the cursor is not advanced.
func Read(c *stream.Cursor) (Record, error) {
	start := c.Pos()
	h, err := ReadHeader(c)
	if err != nil {
		return Record{}, err
	}
	if uint64(h.Size) > uint64(c.Remaining()) {
		_ = c.Seek(start)
		return Record{}, fmt.Errorf("%w: %s at offset %d declares %d bytes, %d remain",
			errs.ErrRecordTooLarge, h.Tag, start, h.Size, c.Remaining())
	}
	body, _ := c.ReadBytes(int(h.Size))

	return Record{Header: h, Body: body, Offset: start}, nil
}

// Append frames body under tag and level and appends the record to dst. Bodies of 4095
// bytes or more take the extended-size header.
//
// Parameters:
//   - dst: Destination slice, usually a stream buffer
//   - tag: Record tag id (10 bits)
//   - level: Nesting level (10 bits)
//   - body: Record body
//
// Returns:
//   - []byte: dst with the framed record appended, or dst unchanged on error
//   - error: errs.ErrInvalidArgument for an out-of-range tag or level, or a body that
//     does not fit a 32-bit size
func Append(dst []byte, tag format.Tag, level uint16, body []byte) ([]byte, error) {
	if err := checkBodyLen(len(body)); err != nil {
		return dst, err
	}
	h := Header{Tag: tag, Level: level, Size: uint32(len(body))} //nolint:gosec
	if err := h.Validate(); err != nil {
		return dst, err
	}
	dst = h.AppendTo(dst)

	return append(dst, body...), nil
}

// Encode frames body as a standalone record.
func Encode(tag format.Tag, level uint16, body []byte) ([]byte, error) {
	h := Header{Size: uint32(len(body))} //nolint:gosec

	return Append(make([]byte, 0, h.EncodedSize()+len(body)), tag, level, body)
}

// Error describes a record that could not be decoded by a higher layer.
type Error struct {
	Tag    format.Tag
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("record %s at offset %d: %v", e.Tag, e.Offset, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reader iterates over the records of a stream.
//
// Iteration stops at the end of the stream or at the first record that cannot be
// framed; Err distinguishes the two.
type Reader struct {
	c   *stream.Cursor
	rec Record
	err error
}

// NewReader creates a Reader over a whole decoded stream, already decrypted and
// inflated.
//
// Example:
//
//	r := record.NewReader(data)
//	for r.Next() {
//		rec := r.Record()
//		handle(rec)
//	}
//	if err := r.Err(); err != nil {
//		return err
//	}
func NewReader(data []byte) *Reader {
	return &Reader{c: stream.NewCursor(data)}
}

// Next advances to the next record.
func (r *Reader) Next() bool {
	if r.err != nil || r.c.EOF() {
		return false
	}
	rec, err := Read(r.c)
	if err != nil {
		r.err = err
		return false
	}
	r.rec = rec

	return true
}

// Record returns the record loaded by the last successful Next.
func (r *Reader) Record() Record { return r.rec }

// Err returns the framing error that stopped iteration, or nil at a clean end.
func (r *Reader) Err() error { return r.err }

// Offset returns the current stream offset.
func (r *Reader) Offset() int { return r.c.Pos() }

// All returns an iterator over the remaining records. A framing error is yielded once,
// as the final element, with a zero Record.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for r.Next() {
			if !yield(r.rec, nil) {
				return
			}
		}
		if r.err != nil {
			yield(Record{}, r.err)
		}
	}
}

// ReadAll frames every record of data. It returns the records framed before the first
// failure together with that failure.
//
// Example:
//
//	recs, err := record.ReadAll(stream)
//	for _, rec := range recs {
//		fmt.Println(rec.Tag, rec.Level, len(rec.Body))
//	}
//	if err != nil {
//		// recs holds everything before the damaged record
//	}
func ReadAll(data []byte) ([]Record, error) {
	r := NewReader(data)
	var out []Record
	for r.Next() {
		out = append(out, r.Record())
	}

	return out, r.Err()
}
