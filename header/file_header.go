package header

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hwp5/errs"
)

// FileHeader is the decoded FileHeader stream.
type FileHeader struct {
	Version  Version // byte offset 32-35
	Flags    Flags   // byte offset 36-39
	Reserved [ReservedSize]byte
}

// New returns a header for a freshly written document.
func New(version Version, compressed bool) FileHeader {
	return FileHeader{
		Version: version,
		Flags:   Flags(0).With(FlagCompressed, compressed),
	}
}

// Parse decodes a FileHeader.
//
// Parameters:
//   - data: header stream bytes; anything past Size is ignored
//
// Returns:
//   - FileHeader: decoded header
//   - error: ErrShortBuffer if data is shorter than Size, ErrInvalidSignature on a bad
//     magic string
func Parse(data []byte) (FileHeader, error) {
	var h FileHeader
	if len(data) < Size {
		return h, fmt.Errorf("%w: file header is %d bytes, need %d", errs.ErrShortBuffer, len(data), Size)
	}
	if !bytes.Equal(data[:len(Signature)], []byte(Signature)) {
		return h, fmt.Errorf("%w: %q", errs.ErrInvalidSignature, bytes.TrimRight(data[:len(Signature)], "\x00"))
	}

	h.Version = VersionFromUint32(binary.LittleEndian.Uint32(data[versionOffset:]))
	h.Flags = Flags(binary.LittleEndian.Uint32(data[flagsOffset:]))
	copy(h.Reserved[:], data[reservedOffset:Size])

	return h, nil
}

// Bytes serializes h into a Size-byte stream.
func (h FileHeader) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, Signature)
	binary.LittleEndian.PutUint32(b[versionOffset:], h.Version.Uint32())
	binary.LittleEndian.PutUint32(b[flagsOffset:], uint32(h.Flags))
	copy(b[reservedOffset:], h.Reserved[:])

	return b
}

// CheckSupported rejects documents this codec cannot read: password-encrypted documents
// (encrypted but not distribution) fail with ErrPasswordEncrypted.
func (h FileHeader) CheckSupported() error {
	if h.Flags.Encrypted() && !h.Flags.Distribution() {
		return errs.ErrPasswordEncrypted
	}

	return nil
}

// License returns the license word stored in the reserved area.
func (h FileHeader) License() uint32 {
	return binary.LittleEndian.Uint32(h.Reserved[0:4])
}

// EncryptVersion returns the encryption scheme version stored in the reserved area.
func (h FileHeader) EncryptVersion() uint32 {
	return binary.LittleEndian.Uint32(h.Reserved[4:8])
}

// KOGLCountry returns the public-license country code; 0 when unset.
func (h FileHeader) KOGLCountry() uint8 {
	return h.Reserved[8]
}
