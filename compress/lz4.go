package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/hwp5/errs"
	"github.com/pierrec/lz4/v4"
)

// LZ4Compressor uses the LZ4 frame format, which records its own content size, so
// decompression needs no buffer-size guessing.
type LZ4Compressor struct {
	maxOutput int64
}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 frame codec.
func NewLZ4Compressor(opts ...Option) LZ4Compressor {
	return LZ4Compressor{maxOutput: newConfig(opts).maxOutput}
}

// Compress writes data as one LZ4 frame.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress reads one LZ4 frame, refusing to expand past the configured bound.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return readLimited(lz4.NewReader(bytes.NewReader(data)), c.maxOutput, "lz4")
}

// readLimited drains r, failing once more than limit bytes are produced.
func readLimited(r io.Reader, limit int64, name string) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", name, err)
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", errs.ErrLimitExceeded, name, limit)
	}

	return out, nil
}
