package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

const defaultOperation = "remote"

// config holds the options for tracing a Remote.
type config struct {
	// Operation prefixes every span name, e.g. "remote.dispatch_on".
	Operation string

	// GetOperation is an optional function that can set the span name based on the
	// default span name and information in the context.
	//
	// If the function is nil, or the returned name is empty, the default span name is used.
	GetOperation func(ctx context.Context, name string) string

	// Attributes holds the default attributes for each span created by this middleware.
	Attributes []attribute.KeyValue

	// GetAttributes is an optional function that can extract trace attributes
	// from the context and add them to the span.
	GetAttributes func(ctx context.Context) []attribute.KeyValue
}

// Option configures WithRemoteTelemetry.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (o optionFunc) apply(c *config) {
	o(c)
}

// WithOperation sets the span name prefix.
// Use this when several remotes are instrumented in one process.
func WithOperation(operation string) Option {
	return optionFunc(func(o *config) {
		o.Operation = operation
	})
}

// WithOperationGetter sets a span name getter function in config.
func WithOperationGetter(fn func(ctx context.Context, name string) string) Option {
	return optionFunc(func(o *config) {
		o.GetOperation = fn
	})
}

// WithAttributes sets the default attributes for the spans created by the Remote tracer.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return optionFunc(func(o *config) {
		o.Attributes = attrs
	})
}

// WithAttributeGetter extracts additional attributes from the context.
func WithAttributeGetter(fn func(ctx context.Context) []attribute.KeyValue) Option {
	return optionFunc(func(o *config) {
		o.GetAttributes = fn
	})
}

func newConfig(opts []Option) *config {
	cfg := &config{Operation: defaultOperation}
	for _, opt := range opts {
		opt.apply(cfg)
	}
	if cfg.Operation == "" {
		cfg.Operation = defaultOperation
	}
	return cfg
}

func (c *config) spanName(ctx context.Context, method string) string {
	name := c.Operation + "." + method
	if c.GetOperation != nil {
		if n := c.GetOperation(ctx, name); n != "" {
			return n
		}
	}
	return name
}

func (c *config) attributes(ctx context.Context, extra ...attribute.KeyValue) []attribute.KeyValue {
	attr := make([]attribute.KeyValue, 0, len(c.Attributes)+len(extra))
	attr = append(attr, c.Attributes...)
	if c.GetAttributes != nil {
		attr = append(attr, c.GetAttributes(ctx)...)
	}
	return append(attr, extra...)
}
