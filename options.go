package multivec

import (
	"github.com/hupe1980/multivec/internal/mem"
	"github.com/hupe1980/multivec/internal/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	allocator        mem.Allocator
	controller       *resource.Controller
}

// Option configures a vector at construction.
//
// Options are remembered: a vector handed off through IntoIter is reset
// with the same configuration.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger for storage events.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of storage events.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithAllocator places every column in byte buffers from a.
//
// Byte buffers are invisible to the garbage collector, so every column type
// must be pointer-free; constructing a vector with a string, slice, map,
// pointer or interface column panics with ErrPointerType. The default (nil)
// keeps columns in ordinary typed Go slices.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithMemoryController charges every column buffer against c. A refused
// reservation is an allocation failure and panics.
func WithMemoryController(c *MemoryController) Option {
	return func(o *options) {
		o.controller = c
	}
}
