package solver

import "log/slog"

// Option configures a solve.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
}

func defaultOptions() options {
	return options{logger: slog.New(slog.DiscardHandler)}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes warnings and debug output to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records solve counters and durations into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
