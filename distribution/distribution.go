// Package distribution recovers the per-document key of distribution documents and
// decrypts their streams.
//
// A distribution stream starts with a control record whose body hides the AES-128 key
// behind a linear-congruential XOR scramble. The rest of the stream is AES-128
// encrypted one 16-byte block at a time, with no chaining.
package distribution

import (
	"crypto/aes"
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/record"
	"github.com/arloliu/hwp5/stream"
)

const (
	// ControlSize is the minimum control record size: a 4-byte record header followed by
	// the 256-byte scrambled block.
	ControlSize = 4 + BlockSize
	// BlockSize is the size of the scrambled working block.
	BlockSize = 256
	// KeySize is the AES-128 key length.
	KeySize = 16
	// seedSize is the block prefix that seeds the generator and is never scrambled.
	seedSize = 4
)

// Key is a recovered AES-128 document key.
type Key [KeySize]byte

// lcg is the generator used by the scramble: the classic MSVC rand().
type lcg struct {
	seed uint32
}

func (g *lcg) next() uint32 {
	g.seed = g.seed*214013 + 2531011
	return (g.seed >> 16) & 0x7FFF
}

// Descramble reverses the XOR scramble of a 256-byte working block in place.
//
// The scramble is its own inverse, so Descramble also scrambles.
func Descramble(block []byte) error {
	if len(block) < BlockSize {
		return fmt.Errorf("%w: distribution block is %d bytes, need %d", errs.ErrShortBuffer, len(block), BlockSize)
	}

	g := lcg{seed: binary.LittleEndian.Uint32(block[:seedSize])}

	var xor byte
	run := 0
	for i := range BlockSize {
		if run == 0 {
			xor = byte(g.next() & 0xFF)
			run = int(g.next()&0x0F) + 1
		}
		if i >= seedSize {
			block[i] ^= xor
		}
		run--
	}

	return nil
}

// DeriveKey recovers the document key from a control record. ctrl is the complete
// record, header included, and must be at least ControlSize bytes. ctrl is not modified.
func DeriveKey(ctrl []byte) (Key, error) {
	var key Key
	if len(ctrl) < ControlSize {
		return key, fmt.Errorf("%w: distribution control record is %d bytes, need %d",
			errs.ErrInvalidControlRecord, len(ctrl), ControlSize)
	}

	block := make([]byte, BlockSize)
	copy(block, ctrl[4:ControlSize])
	if err := Descramble(block); err != nil {
		return key, err
	}

	offset := seedSize + int(block[0]&0x0F)
	if offset+KeySize > BlockSize {
		return key, fmt.Errorf("%w: key offset %d", errs.ErrKeyOffset, offset)
	}
	copy(key[:], block[offset:offset+KeySize])

	return key, nil
}

// Decrypt decrypts data block by block under key.
//
// data is zero-padded to a whole number of blocks for decryption and the result is
// truncated back to len(data). Empty input yields empty output.
func Decrypt(key Key, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	cipher, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	padded := (len(data) + aes.BlockSize - 1) / aes.BlockSize * aes.BlockSize
	out := make([]byte, padded)
	copy(out, data)
	for off := 0; off < padded; off += aes.BlockSize {
		cipher.Decrypt(out[off:off+aes.BlockSize], out[off:off+aes.BlockSize])
	}

	return out[:len(data)], nil
}

// Encrypt is the inverse of Decrypt for block-aligned data. Documents are never
// re-encrypted on write; Encrypt exists to build fixtures.
func Encrypt(key Key, data []byte) ([]byte, error) {
	if len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: encrypt length %d is not a multiple of %d",
			errs.ErrInvalidArgument, len(data), aes.BlockSize)
	}

	cipher, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	for off := 0; off < len(data); off += aes.BlockSize {
		cipher.Encrypt(out[off:off+aes.BlockSize], data[off:off+aes.BlockSize])
	}

	return out, nil
}

// DecryptStream splits a distribution stream into its control record and payload,
// derives the key and returns the decrypted payload.
//
// The control record must be a DISTRIBUTE_DOC_DATA record with a 256-byte body.
func DecryptStream(data []byte) ([]byte, error) {
	if len(data) < ControlSize {
		return nil, fmt.Errorf("%w: distribution stream is %d bytes, need %d",
			errs.ErrInvalidControlRecord, len(data), ControlSize)
	}

	h, err := record.ReadHeader(stream.NewCursor(data))
	if err != nil {
		return nil, err
	}
	if h.Tag != format.TagDistributeDocData || h.Size != BlockSize {
		return nil, fmt.Errorf("%w: got %s with %d bytes", errs.ErrInvalidControlRecord, h.Tag, h.Size)
	}

	key, err := DeriveKey(data[:ControlSize])
	if err != nil {
		return nil, err
	}

	return Decrypt(key, data[ControlSize:])
}
