package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/hwp5/errs"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor provides Zstandard compression for pack bundles.
//
// Default-level encoders and all decoders are pooled; klauspost/compress/zstd runs
// without allocations once warmed up.
type ZstdCompressor struct {
	// level is zero for the pooled default encoder.
	level     zstd.EncoderLevel
	maxOutput int64
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec. WithLevel takes a zstd level 1..22.
func NewZstdCompressor(opts ...Option) ZstdCompressor {
	cfg := newConfig(opts)
	c := ZstdCompressor{maxOutput: cfg.maxOutput}
	if level := cfg.levelIn(1, 22, 0); level != 0 {
		c.level = zstd.EncoderLevelFromZstd(level)
	}

	return c
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(DefaultMaxOutput),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses data as one zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if c.level == 0 {
		encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
		defer zstdEncoderPool.Put(encoder)

		return encoder.EncodeAll(data, nil), nil
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(c.level), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses data with a pooled decoder. A frame whose header declares
// more than the configured bound is rejected before decoding.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var h zstd.Header
	if err := h.Decode(data); err == nil && h.HasFCS && h.FrameContentSize > uint64(c.maxOutput) { //nolint:gosec
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes", errs.ErrLimitExceeded, h.FrameContentSize)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if int64(len(decompressed)) > c.maxOutput {
		return nil, fmt.Errorf("%w: zstd expanded to %d bytes", errs.ErrLimitExceeded, len(decompressed))
	}

	return decompressed, nil
}
