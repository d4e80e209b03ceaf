package parse

import (
	"log/slog"

	"github.com/0xalexb/edat/convert"
)

// Option configures a Parser.
type Option func(*Parser)

// WithRegistry sets the converters used for typed fields.
// Defaults to convert.Default().
func WithRegistry(reg *convert.Registry) Option {
	return func(p *Parser) {
		p.registry = reg
	}
}

// WithSink sets the receiver of diagnostics. Defaults to Discard.
func WithSink(sink Sink) Option {
	return func(p *Parser) {
		p.sink = sink
	}
}

// WithLogger sets the logger used for debug tracing of table scopes.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithName sets the document name reported in diagnostics.
func WithName(name string) Option {
	return func(p *Parser) {
		p.name = name
	}
}
