package compress

import (
	"fmt"

	"github.com/arloliu/hwp5/errs"
	"github.com/klauspost/compress/s2"
)

// S2Compressor writes S2 blocks, the fastest pack codec.
type S2Compressor struct {
	maxOutput int64
}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 block codec.
func NewS2Compressor(opts ...Option) S2Compressor {
	return S2Compressor{maxOutput: newConfig(opts).maxOutput}
}

// Compress encodes data as one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block after checking its declared length against the
// configured bound, so the output buffer is never allocated for an oversized block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if int64(n) > c.maxOutput {
		return nil, fmt.Errorf("%w: s2 block expands to %d bytes", errs.ErrLimitExceeded, n)
	}

	return s2.Decode(nil, data)
}
