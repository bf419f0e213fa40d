package compress

import (
	"fmt"

	"github.com/arloliu/hwp5/errs"
)

// NoOpCompressor stores pack entries as-is.
type NoOpCompressor struct {
	maxOutput int64
}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor(opts ...Option) NoOpCompressor {
	return NoOpCompressor{maxOutput: newConfig(opts).maxOutput}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, or errs.ErrLimitExceeded when it is larger than the
// configured bound.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	if int64(len(data)) > c.maxOutput {
		return nil, fmt.Errorf("%w: stored entry of %d bytes", errs.ErrLimitExceeded, len(data))
	}

	return data, nil
}
