package hwp5

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/hwp5/compress"
	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/internal/options"
)

// Default reader limits.
const (
	DefaultMaxSections    = 1024
	DefaultMaxBinDataSize = 256 << 20 // 256 MiB
)

// Limits bounds the resources a single Decode may consume. Zero fields take defaults.
type Limits struct {
	// MaxStreamSize bounds a raw container stream.
	MaxStreamSize int64
	// MaxDecompressedSize bounds the inflated size of one stream.
	MaxDecompressedSize int64
	// MaxSections bounds the number of section streams read.
	MaxSections int
	// MaxBinDataSize bounds one embedded binary after decompression.
	MaxBinDataSize int64
}

func (l Limits) withDefaults() Limits {
	if l.MaxStreamSize <= 0 {
		l.MaxStreamSize = container.DefaultMaxStreamSize
	}
	if l.MaxDecompressedSize <= 0 {
		l.MaxDecompressedSize = compress.DefaultMaxOutput
	}
	if l.MaxSections <= 0 {
		l.MaxSections = DefaultMaxSections
	}
	if l.MaxBinDataSize <= 0 {
		l.MaxBinDataSize = DefaultMaxBinDataSize
	}

	return l
}

// ReaderConfig holds the settings of Open and Decode.
type ReaderConfig struct {
	logger     *slog.Logger
	limits     Limits
	strictText bool
}

// ReaderOption configures Open and Decode.
type ReaderOption = options.Option[*ReaderConfig]

func newReaderConfig(opts []ReaderOption) (*ReaderConfig, error) {
	cfg := &ReaderConfig{logger: slog.New(slog.DiscardHandler)}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	cfg.limits = cfg.limits.withDefaults()

	return cfg, nil
}

// WithLogger sets the logger that receives scan diagnostics.
func WithLogger(logger *slog.Logger) ReaderOption {
	return options.Named("logger", func(c *ReaderConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidArgument)
		}
		c.logger = logger

		return nil
	})
}

// WithLimits replaces the default resource limits. Zero fields keep their defaults.
func WithLimits(limits Limits) ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.limits = limits
	})
}

// WithStrictText leaves paragraph text empty when it holds unpaired surrogates instead
// of substituting U+FFFD.
func WithStrictText() ReaderOption {
	return options.NoError(func(c *ReaderConfig) {
		c.strictText = true
	})
}
