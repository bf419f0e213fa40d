// Package stream provides the little-endian primitive reader (Cursor) and writer used by
// every record and entity codec.
//
// A Cursor never copies: ReadBytes returns a subslice of the underlying buffer. Every
// read checks the remaining length first and fails with errs.ErrShortBuffer without
// moving the position, so a declared length can never trigger an allocation or an
// out-of-bounds access.
//
// Note: a Cursor is NOT safe for concurrent use; independent cursors over the same
// immutable buffer are.
package stream

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hwp5/errs"
)

// Cursor reads little-endian primitives from an in-memory buffer.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// EOF reports whether every byte has been consumed.
func (c *Cursor) EOF() bool { return c.pos >= len(c.data) }

// Rest returns the unread bytes without advancing.
func (c *Cursor) Rest() []byte { return c.data[c.pos:] }

// need validates that n more bytes are available.
func (c *Cursor) need(n int) error {
	if n < 0 || n > len(c.data)-c.pos {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", errs.ErrShortBuffer, n, c.pos, len(c.data)-c.pos)
	}

	return nil
}

// Seek moves to an absolute offset within [0, Len].
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("%w: seek to %d outside [0, %d]", errs.ErrShortBuffer, pos, len(c.data))
	}
	c.pos = pos

	return nil
}

// Skip advances by n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// ReadBytes returns the next n bytes as a subslice of the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n

	return b, nil
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++

	return v, nil
}

// ReadI8 reads one signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err //nolint:gosec
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2

	return v, nil
}

// ReadI16 reads a little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err //nolint:gosec
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4

	return v, nil
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err //nolint:gosec
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.data[c.pos:])
	c.pos += 8

	return v, nil
}

// ReadUnits reads n UTF-16 code units.
func (c *Cursor) ReadUnits(n int) ([]uint16, error) {
	if n < 0 || n > (len(c.data)-c.pos)/2 {
		return nil, fmt.Errorf("%w: need %d code units at offset %d, have %d bytes", errs.ErrShortBuffer, n, c.pos, len(c.data)-c.pos)
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(c.data[c.pos+2*i:])
	}
	c.pos += 2 * n

	return units, nil
}

// ReadUTF16 reads n code units and decodes them leniently: unpaired surrogates become
// U+FFFD.
func (c *Cursor) ReadUTF16(n int) (string, error) {
	units, err := c.ReadUnits(n)
	if err != nil {
		return "", err
	}

	return DecodeUTF16(units), nil
}

// ReadWString reads a 16-bit length prefix followed by that many UTF-16 code units.
func (c *Cursor) ReadWString() (string, error) {
	start := c.pos
	n, err := c.ReadU16()
	if err != nil {
		return "", err
	}
	s, err := c.ReadUTF16(int(n))
	if err != nil {
		c.pos = start
		return "", err
	}

	return s, nil
}

// ReadWStringStrict is ReadWString failing with errs.ErrUnpairedSurrogate on malformed
// text.
func (c *Cursor) ReadWStringStrict() (string, error) {
	start := c.pos
	n, err := c.ReadU16()
	if err != nil {
		return "", err
	}
	units, err := c.ReadUnits(int(n))
	if err != nil {
		c.pos = start
		return "", err
	}
	s, err := DecodeUTF16Strict(units)
	if err != nil {
		c.pos = start
		return "", err
	}

	return s, nil
}
