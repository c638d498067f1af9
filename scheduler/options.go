package scheduler

import (
	"io"

	"github.com/sirupsen/logrus"
)

// options defines all configuration options for the scheduler.
type options struct {
	maxConcurrency int                // Maximum number of jobs running at once
	logger         logrus.FieldLogger // Destination for job failure logs
}

// Option is a function that configures the scheduler options.
type Option func(*options)

// WithMaxConcurrency sets the maximum number of concurrently running jobs.
func WithMaxConcurrency(m int) Option {
	return func(o *options) {
		o.maxConcurrency = m
	}
}

// WithLogger sets the logger used to report job failures.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return options{
		maxConcurrency: 10,
		logger:         l,
	}
}
