package header

const (
	// Size is the exact length of the FileHeader stream.
	Size = 256
	// SignatureSize is the width of the signature field.
	SignatureSize = 32
	// ReservedSize is the width of the trailing reserved area.
	ReservedSize = 216

	// Signature is the magic string that must open the header.
	Signature = "HWP Document File"

	versionOffset  = 32
	flagsOffset    = 36
	reservedOffset = 40

	// StreamName is the container path of the header stream.
	StreamName = "FileHeader"
)
