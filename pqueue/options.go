package pqueue

import (
	"log/slog"

	"github.com/amp-labs/amp-pq/logger"
)

const defaultName = "default"

type options struct {
	name    string
	log     *slog.Logger
	metrics bool
}

// Option configures a Queue at construction time.
type Option func(*options)

// WithName labels the queue in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger used for debug output. Defaults to logger.Get().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithMetrics enables Prometheus metrics for the queue, labelled by its name.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

func buildOptions(opts []Option) options {
	o := options{name: defaultName}

	for _, opt := range opts {
		opt(&o)
	}

	if o.name == "" {
		o.name = defaultName
	}

	if o.log == nil {
		o.log = logger.Get()
	}

	return o
}
