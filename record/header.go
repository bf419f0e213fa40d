// Package record implements the record framing codec: the bit-packed 32-bit record
// header with its extended-size escape, and framing/deframing of record bodies.
//
// Header word layout (little-endian):
//
//	bits  0-9   tag id
//	bits 10-19  nesting level
//	bits 20-31  size, or 0xFFF meaning "a second 32-bit word holds the size"
//
// The package knows nothing about tag semantics. The level is carried through verbatim;
// hierarchy is enforced by the dispatch engine.
package record

import (
	"fmt"
	"math"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/stream"
)

const (
	tagMask   = 0x3FF
	levelMask = 0x3FF
	sizeMask  = 0xFFF

	levelShift = 10
	sizeShift  = 20

	// ExtendedSize is the reserved size value announcing a trailing 32-bit size word.
	ExtendedSize = sizeMask
	// MaxLevel is the largest nesting level that fits the header.
	MaxLevel = levelMask
	// HeaderSize is the size of a header without the extended-size word.
	HeaderSize = 4
	// ExtendedHeaderSize is the size of a header carrying the extended-size word.
	ExtendedHeaderSize = 8
)

// Header is a decoded record header.
type Header struct {
	Tag   format.Tag
	Level uint16
	Size  uint32
}

// Extended reports whether encoding h needs the extended-size word.
func (h Header) Extended() bool {
	return h.Size >= ExtendedSize
}

// EncodedSize returns the number of header bytes h occupies on the wire.
func (h Header) EncodedSize() int {
	if h.Extended() {
		return ExtendedHeaderSize
	}

	return HeaderSize
}

// Validate checks that the tag and level fit their bit fields.
//
// Returns:
//   - error: errs.ErrInvalidArgument when the tag or level needs more than 10 bits
func (h Header) Validate() error {
	if h.Tag > format.MaxTag {
		return fmt.Errorf("%w: tag 0x%X exceeds 10 bits", errs.ErrInvalidArgument, uint16(h.Tag))
	}
	if h.Level > MaxLevel {
		return fmt.Errorf("%w: level %d exceeds 10 bits", errs.ErrInvalidArgument, h.Level)
	}

	return nil
}

// AppendTo appends the wire form of h to dst.
func (h Header) AppendTo(dst []byte) []byte {
	size := h.Size
	if h.Extended() {
		size = ExtendedSize
	}
	word := uint32(h.Tag)&tagMask | (uint32(h.Level)&levelMask)<<levelShift | size<<sizeShift
	dst = append(dst, byte(word), byte(word>>8), byte(word>>16), byte(word>>24))
	if h.Extended() {
		dst = append(dst, byte(h.Size), byte(h.Size>>8), byte(h.Size>>16), byte(h.Size>>24))
	}

	return dst
}

// UnpackHeaderWord splits a header word into its fields. The returned size is the raw
// 12-bit value, which may be ExtendedSize.
func UnpackHeaderWord(word uint32) Header {
	return Header{
		Tag:   format.Tag(word & tagMask),
		Level: uint16((word >> levelShift) & levelMask),
		Size:  word >> sizeShift,
	}
}

// ReadHeader reads a header, including the extended-size word when present. On failure
// the cursor is left where it was.
//
// Parameters:
//   - c: Cursor positioned at the first byte of a header word
//
// Returns:
//   - Header: Decoded header with the true body size (never ExtendedSize)
//   - error: errs.ErrShortBuffer when the header word or the extended-size word is cut off
func ReadHeader(c *stream.Cursor) (Header, error) {
	start := c.Pos()
	word, err := c.ReadU32()
	if err != nil {
		return Header{}, fmt.Errorf("record header at offset %d: %w", start, err)
	}
	h := UnpackHeaderWord(word)
	if h.Size == ExtendedSize {
		size, err := c.ReadU32()
		if err != nil {
			_ = c.Seek(start)
			return Header{}, fmt.Errorf("extended record size at offset %d: %w", start, err)
		}
		h.Size = size
	}

	return h, nil
}

// checkBodyLen rejects bodies that cannot be described by a 32-bit size.
func checkBodyLen(n int) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: body of %d bytes", errs.ErrInvalidArgument, n)
	}

	return nil
}
