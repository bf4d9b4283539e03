// Package home provides the receivers a remote control drives (lights, fans
// and stereos) and the concrete commands bound to them.
//
// Receivers are plain stateful values. Every mutator is total: values outside
// the receiver's legal state space are ignored and logged at debug level, so
// a receiver can never be driven into an unrepresentable state.
package home

import "github.com/sirupsen/logrus"

// Option configures a receiver.
type Option func(*options)

type options struct {
	logger *logrus.Entry
}

// WithLogger sets the logger a receiver reports its state changes to.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(kind, location string, opts []Option) *options {
	o := &options{logger: logrus.NewEntry(logrus.StandardLogger())}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = o.logger.WithFields(logrus.Fields{
		"device":   kind,
		"location": location,
	})
	return o
}
