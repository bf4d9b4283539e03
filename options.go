package remotecontrol

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option defines a function type that modifies remoteOptions.
// These options are applied when constructing a NewRemoteControl.
type Option func(*remoteOptions)

// remoteOptions defines configuration for a RemoteControl.
type remoteOptions struct {
	// Slots is the size of the slot table.
	Slots int

	// History records dispatched commands. Defaults to an unbounded stack.
	History History

	// Logger receives the remote's own log lines, such as empty undos.
	Logger *logrus.Entry
}

func defaultOptions() *remoteOptions {
	return &remoteOptions{
		Slots:  DefaultSlots,
		Logger: discardLogger(),
	}
}

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// WithSlots sets the size of the slot table. Values <= 0 are ignored.
func WithSlots(n int) Option {
	return func(o *remoteOptions) {
		if n > 0 {
			o.Slots = n
		}
	}
}

// WithHistory sets the history implementation.
//
// Usage:
//
//	remote := NewRemoteControl(WithHistory(NewLastCommandHistory()))
func WithHistory(h History) Option {
	return func(o *remoteOptions) {
		if h != nil {
			o.History = h
		}
	}
}

// WithLogger sets the logger used by the remote.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *remoteOptions) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
