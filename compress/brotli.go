package compress

import (
	"bytes"

	"github.com/andybalholm/brotli"
)

// BrotliCompressor favors ratio over speed; suited to archiving pack bundles.
type BrotliCompressor struct {
	level     int
	maxOutput int64
}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a Brotli codec, by default at the library's default quality.
func NewBrotliCompressor(opts ...Option) BrotliCompressor {
	cfg := newConfig(opts)

	return BrotliCompressor{
		level:     cfg.levelIn(brotli.BestSpeed, brotli.BestCompression, brotli.DefaultCompression),
		maxOutput: cfg.maxOutput,
	}
}

// Compress compresses data with Brotli.
func (c BrotliCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, c.level)
	if _, err := bw.Write(data); err != nil {
		_ = bw.Close()
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decodes Brotli data, refusing to expand past the configured bound.
func (c BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return readLimited(brotli.NewReader(bytes.NewReader(data)), c.maxOutput, "brotli")
}
