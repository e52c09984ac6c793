package rls

import "github.com/sirupsen/logrus"

// Option configures an Estimator.
type Option func(*Estimator)

// WithLogger attaches a logger for debug progress entries.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Estimator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTrace records per-sample diagnostics, retrievable with Trace.
func WithTrace() Option {
	return func(e *Estimator) {
		e.trace = &trace{}
	}
}
