package jsonresource

import (
	"github.com/oarkflow/jsonresource/node"
)

type Options struct {
	parseOnly      bool
	structType     node.ObjectFactory
	implementation Implementation
	logger         Logger
}

type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		parseOnly:      true,
		structType:     node.NewOrderedObject,
		implementation: ImplementationAuto,
	}
}

// WithParseOnly controls whether JSONToData leaves the root untouched.
func WithParseOnly(parseOnly bool) Option {
	return func(o *Options) {
		o.parseOnly = parseOnly
	}
}

// WithStructType selects the object container built while decoding. A nil
// factory is ignored.
func WithStructType(factory node.ObjectFactory) Option {
	return func(o *Options) {
		if factory != nil {
			o.structType = factory
		}
	}
}

func WithImplementation(impl Implementation) Option {
	return func(o *Options) {
		o.implementation = impl
	}
}

func WithLogger(logger Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
