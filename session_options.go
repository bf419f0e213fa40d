package hwp5

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/header"
	"github.com/arloliu/hwp5/internal/options"
)

// SessionConfig holds the settings of an authoring session.
type SessionConfig struct {
	logger     *slog.Logger
	compressed bool
	level      int
	version    header.Version
}

// SessionOption configures NewSession.
type SessionOption = options.Option[*SessionConfig]

// WithSessionLogger sets the logger that receives encode diagnostics.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return options.Named("session logger", func(c *SessionConfig) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidArgument)
		}
		c.logger = logger

		return nil
	})
}

// WithCompression turns stream compression on or off. Compression is on by default.
func WithCompression(on bool) SessionOption {
	return options.NoError(func(c *SessionConfig) {
		c.compressed = on
	})
}

// WithCompressionLevel sets the deflate level used when compression is on.
func WithCompressionLevel(level int) SessionOption {
	return options.Named("compression level", func(c *SessionConfig) error {
		if level < 1 || level > 9 {
			return fmt.Errorf("%w: level %d outside 1..9", errs.ErrInvalidArgument, level)
		}
		c.level = level

		return nil
	})
}

// WithVersion sets the format version written to the FileHeader.
func WithVersion(v header.Version) SessionOption {
	return options.Named("version", func(c *SessionConfig) error {
		if v.Major != 5 {
			return fmt.Errorf("%w: version %s", errs.ErrUnsupportedVersion, v)
		}
		c.version = v

		return nil
	})
}
