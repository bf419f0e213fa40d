package compress

// Option configures a codec.
type Option func(*config)

type config struct {
	level     int
	hasLevel  bool
	maxOutput int64
}

func newConfig(opts []Option) config {
	c := config{maxOutput: DefaultMaxOutput}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// levelIn returns the configured level when it lies in [lo, hi], otherwise def.
func (c config) levelIn(lo, hi, def int) int {
	if c.hasLevel && c.level >= lo && c.level <= hi {
		return c.level
	}

	return def
}

// WithMaxOutput bounds the decompressed size of one payload. Values <= 0 keep
// DefaultMaxOutput.
func WithMaxOutput(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxOutput = n
		}
	}
}

// WithLevel sets the compression level. The range is codec specific: zlib -2..9,
// zstd 1..22, brotli 0..11. Out-of-range values keep the codec default; S2, LZ4 and
// None ignore it.
func WithLevel(level int) Option {
	return func(c *config) {
		c.level = level
		c.hasLevel = true
	}
}
