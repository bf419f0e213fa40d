package dispatch

import "log/slog"

// Options configures decoding.
type Options struct {
	// Logger receives scan diagnostics. Nil discards them.
	Logger *slog.Logger
	// StrictText rejects paragraph text with unpaired surrogates. The paragraph keeps
	// its other parts and the text is left empty.
	StrictText bool
	// Stream names the stream in log records, e.g. "BodyText/Section0".
	Stream string
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger.With("stream", o.Stream)
}
