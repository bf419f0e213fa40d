package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// DeflateCodec is the document stream adapter.
//
// Writers produce zlib-wrapped data. Readers accept what real documents contain: raw
// deflate streams (the common case), zlib-wrapped streams, and uncompressed data whose
// header flag lies. Decompress never fails; input that decodes under neither framing is
// returned unchanged.
type DeflateCodec struct {
	level     int
	maxOutput int64
}

var _ Codec = (*DeflateCodec)(nil)

// NewDeflateCodec creates the stream adapter. WithMaxOutput bounds each decoding tier;
// a tier whose output exceeds the bound counts as failed.
func NewDeflateCodec(opts ...Option) DeflateCodec {
	cfg := newConfig(opts)

	return DeflateCodec{
		level:     cfg.levelIn(zlib.HuffmanOnly, zlib.BestCompression, zlib.DefaultCompression),
		maxOutput: cfg.maxOutput,
	}
}

var zlibWriterPool = sync.Pool{
	New: func() any {
		return zlib.NewWriter(nil)
	},
}

// Compress returns data as a zlib stream at the codec's level.
//
// Returns:
//   - []byte: Newly allocated zlib stream owned by the caller
//   - error: Writer failure from the underlying zlib encoder
func (c DeflateCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 16)

	var zw *zlib.Writer
	if c.level == zlib.DefaultCompression {
		zw, _ = zlibWriterPool.Get().(*zlib.Writer)
		zw.Reset(&buf)
		defer zlibWriterPool.Put(zw)
	} else {
		var err error
		if zw, err = zlib.NewWriterLevel(&buf, c.level); err != nil {
			return nil, err
		}
	}

	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress satisfies Decompressor; the error is always nil.
func (c DeflateCodec) Decompress(data []byte) ([]byte, error) {
	out, _ := c.Inflate(data)
	return out, nil
}

// Inflate decodes data as raw deflate, then as zlib, and otherwise returns data itself.
//
// Parameters:
//   - data: Stream bytes as stored in the container
//
// Returns:
//   - []byte: Inflated bytes, or data itself when no tier succeeds
//   - bool: Whether one of the decoding tiers succeeded
//
// An empty input inflates to an empty, non-nil slice.
func (c DeflateCodec) Inflate(data []byte) ([]byte, bool) {
	if len(data) == 0 {
		return []byte{}, true
	}

	if out, ok := c.tryRaw(data); ok {
		return out, true
	}
	if out, ok := c.tryZlib(data); ok {
		return out, true
	}

	return data, false
}

func (c DeflateCodec) tryRaw(data []byte) ([]byte, bool) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	return c.drain(fr)
}

func (c DeflateCodec) tryZlib(data []byte) ([]byte, bool) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	defer zr.Close()

	return c.drain(zr)
}

func (c DeflateCodec) drain(r io.Reader) ([]byte, bool) {
	out, err := io.ReadAll(io.LimitReader(r, c.maxOutput+1))
	if err != nil || int64(len(out)) > c.maxOutput {
		return nil, false
	}

	return out, true
}

var defaultDeflate = NewDeflateCodec()

// Inflate runs the default stream adapter over data. It never fails.
func Inflate(data []byte) []byte {
	out, _ := defaultDeflate.Inflate(data)
	return out
}

// Deflate encodes data with the default stream adapter.
func Deflate(data []byte) ([]byte, error) {
	return defaultDeflate.Compress(data)
}
