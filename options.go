package edat

import (
	"io"

	"github.com/0xalexb/edat/config"
	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	edatparser "github.com/0xalexb/edat/config/parser/edat"
	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/listener"
	"github.com/0xalexb/edat/service"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
	Registry  *convert.Registry
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithHTTPListener adds a listener called name; see listener.NewModule.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithParseService serves the parse API on a listener called name.
func WithParseService(name string, cfg service.Config, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules,
			service.Module(name, cfg),
			listener.NewModule(name, opts...),
		)
	}
}

// WithConfigFile provides a config.Parser for edat documents and a
// config.DataFetcher reading path, for use with config.Provider.
func WithConfigFile(path string) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Module("config",
			fx.Provide(
				fx.Annotate(
					func() *edatparser.Parser { return edatparser.NewParser() },
					fx.As(new(config.Parser)),
				),
				fx.Annotate(
					filefetcher.NewFetcher(path),
					fx.As(new(config.DataFetcher)),
				),
			),
		))
	}
}

// WithLogLevel sets the log level: "debug", "info", "warn" or "error".
// Anything else means "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" records.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sends log records to w instead of os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithRegistry replaces the default converters.
func WithRegistry(reg *convert.Registry) Option {
	return func(opts *Options) {
		opts.Registry = reg
	}
}
