package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type readerConfig struct {
	maxSize int
	strict  bool
	calls   []string
}

func withMaxSize(n int) Option[*readerConfig] {
	return Named("max-size", func(c *readerConfig) error {
		if n < 0 {
			return errors.New("must not be negative")
		}
		c.maxSize = n
		c.calls = append(c.calls, "max-size")

		return nil
	})
}

func withStrict(v bool) Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.strict = v
		c.calls = append(c.calls, "strict")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &readerConfig{}
		require.NoError(t, Apply(cfg, withMaxSize(10), withStrict(true)))
		require.Equal(t, 10, cfg.maxSize)
		require.True(t, cfg.strict)
		require.Equal(t, []string{"max-size", "strict"}, cfg.calls)
	})

	t.Run("stops at first error and names the option", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withStrict(true), withMaxSize(-1), withStrict(false))
		require.Error(t, err)
		require.Contains(t, err.Error(), "option max-size: must not be negative")
		require.True(t, cfg.strict)
		require.Equal(t, []string{"strict"}, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &readerConfig{}
		require.NoError(t, Apply[*readerConfig](cfg, nil, withStrict(true)))
		require.True(t, cfg.strict)
	})

	t.Run("unnamed errors pass through", func(t *testing.T) {
		sentinel := errors.New("boom")
		err := Apply(&readerConfig{}, New(func(*readerConfig) error { return sentinel }))
		require.ErrorIs(t, err, sentinel)
		require.Equal(t, "boom", err.Error())
	})
}

func TestApplyAndValidate(t *testing.T) {
	validate := func(c *readerConfig) error {
		if c.strict && c.maxSize == 0 {
			return errors.New("strict mode needs a size")
		}
		return nil
	}

	require.NoError(t, ApplyAndValidate(&readerConfig{}, validate, withMaxSize(4), withStrict(true)))
	require.Error(t, ApplyAndValidate(&readerConfig{}, validate, withStrict(true)))
	require.NoError(t, ApplyAndValidate(&readerConfig{}, nil, withStrict(true)))
}
