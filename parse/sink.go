package parse

import (
	"context"
	"log/slog"
)

// Sink receives diagnostics while a document is parsed.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(d Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

// Discard is a Sink that drops every diagnostic.
//
//nolint:gochecknoglobals // stateless sink.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector is a Sink that keeps every diagnostic in order.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HasErrors reports whether an error-severity diagnostic was collected.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Kinds returns the kinds of the collected diagnostics in order.
func (c *Collector) Kinds() []Kind {
	kinds := make([]Kind, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		kinds[i] = d.Kind
	}

	return kinds
}

type multiSink []Sink

func (m multiSink) Report(d Diagnostic) {
	for _, s := range m {
		s.Report(d)
	}
}

// MultiSink reports every diagnostic to each of sinks.
//
//nolint:ireturn // sinks are consumed through the interface.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

// LogSink returns a Sink writing diagnostics to logger, warnings at
// slog.LevelWarn and errors at slog.LevelError.
//
//nolint:ireturn // sinks are consumed through the interface.
func LogSink(logger *slog.Logger) Sink {
	return SinkFunc(func(d Diagnostic) {
		level := slog.LevelWarn
		if d.Severity == SeverityError {
			level = slog.LevelError
		}

		attrs := []slog.Attr{
			slog.String("kind", d.Kind.String()),
			slog.String("source", d.Source),
			slog.Int("line", d.Line),
			slog.Int("column", d.Column),
		}

		if d.Err != nil {
			attrs = append(attrs, slog.String("error", d.Err.Error()))
		}

		logger.LogAttrs(context.Background(), level, d.Message, attrs...)
	})
}
