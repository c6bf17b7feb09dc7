package vector

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a Vector at construction time.
type Option func(*options)

// WithLogger sets the logger used for growth and disposal events.
// They are emitted at debug level. If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
