package container

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/hwp5/compress"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/internal/options"
	"github.com/richardlehane/mscfb"
)

// DefaultMaxStreamSize bounds a single stream read from a compound file.
const DefaultMaxStreamSize int64 = compress.DefaultMaxOutput

// LoadConfig configures LoadCFB.
type LoadConfig struct {
	maxStreamSize int64
}

// LoadOption configures LoadCFB.
type LoadOption = options.Option[*LoadConfig]

// WithMaxStreamSize rejects compound files holding a stream larger than n bytes.
func WithMaxStreamSize(n int64) LoadOption {
	return options.Named("max stream size", func(c *LoadConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidArgument, n)
		}
		c.maxStreamSize = n

		return nil
	})
}

// LoadCFB reads every stream of a compound file into a read-only Storage.
//
// Stream sizes are checked against the limit before any stream is read.
func LoadCFB(r io.ReaderAt, opts ...LoadOption) (*Storage, error) {
	cfg := &LoadConfig{maxStreamSize: DefaultMaxStreamSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	doc, err := mscfb.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: compound file: %w", errs.ErrInvalidFormat, err)
	}

	s := NewStorage()
	for {
		entry, err := doc.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("compound file directory: %w", err)
		}
		if entry.FileInfo().IsDir() {
			continue
		}

		path := strings.Join(append(append([]string(nil), entry.Path...), entry.Name), "/")
		if entry.Size < 0 || entry.Size > cfg.maxStreamSize {
			return nil, fmt.Errorf("%w: stream %s declares %d bytes, limit %d",
				errs.ErrLimitExceeded, path, entry.Size, cfg.maxStreamSize)
		}

		data := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, data); err != nil {
			return nil, fmt.Errorf("read stream %s: %w", path, err)
		}
		if err := s.Create(path, data); err != nil {
			return nil, err
		}
	}
	s.readOnly = true

	return s, nil
}
