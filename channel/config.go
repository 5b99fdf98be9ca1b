package channel

import (
	"bchan/log"
	"bchan/metrics"
)

// Config carries the optional ambient attachments for a Channel:
// a logger and a metrics recorder. The zero value is safe and leaves
// both nil, matching spec's "process-wide logging or configuration"
// being out of the core's scope.
type Config struct {
	Logger  log.Logger
	Metrics *metrics.Recorder
	name    string
}

// NewConfig returns the default Config: no logger, no metrics.
func NewConfig() *Config {
	return &Config{}
}

// Option configures a Channel at construction time.
type Option func(*Config)

// WithLogger attaches a logger used for diagnostic messages (close,
// destroy-on-open, select-registration-on-closed). Never affects the
// Status a call returns.
func WithLogger(l log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics attaches r and sets name as the channel's name in log
// messages. Metric samples carry the name r was created with
// (metrics.New), not this name.
func WithMetrics(name string, r *metrics.Recorder) Option {
	return func(c *Config) {
		c.Metrics = r
		c.name = name
	}
}
