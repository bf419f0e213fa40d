package compress

import (
	"fmt"

	"github.com/arloliu/hwp5/format"
)

// DefaultMaxOutput caps the decompressed size of a single payload.
const DefaultMaxOutput = 512 << 20 // 512 MiB

// Compressor compresses a whole payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations reject output larger than their configured limit, so a small
// adversarial payload cannot expand without bound.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a codec for compressionType configured by opts.
//
// Parameters:
//   - compressionType: codec selector
//   - target: description of the payload, used in error messages
//   - opts: level and output bound, see WithLevel and WithMaxOutput
//
// Returns:
//   - Codec: codec for the given type
//   - error: unsupported compression type
func CreateCodec(compressionType format.CompressionType, target string, opts ...Option) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(opts...), nil
	case format.CompressionZstd:
		return NewZstdCompressor(opts...), nil
	case format.CompressionS2:
		return NewS2Compressor(opts...), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(opts...), nil
	case format.CompressionBrotli:
		return NewBrotliCompressor(opts...), nil
	case format.CompressionDeflate:
		return NewDeflateCodec(opts...), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:    NewNoOpCompressor(),
	format.CompressionZstd:    NewZstdCompressor(),
	format.CompressionS2:      NewS2Compressor(),
	format.CompressionLZ4:     NewLZ4Compressor(),
	format.CompressionBrotli:  NewBrotliCompressor(),
	format.CompressionDeflate: NewDeflateCodec(),
}

// GetCodec returns the shared default-configured codec for compressionType.
//
// Parameters:
//   - compressionType: codec selector
//
// Returns:
//   - Codec: shared codec instance, safe for concurrent use
//   - error: unsupported compression type
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionLZ4)
//	if err != nil {
//		return err
//	}
//	stored, err := codec.Compress(raw)
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
