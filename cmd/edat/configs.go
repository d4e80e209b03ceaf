package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/parse"
	"github.com/0xalexb/edat/render"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='always color output'"`
	NoColor bool `cli:"name=no-color desc='never color output'"`
	Quiet   bool `cli:"name=q aliases=quiet desc='do not print warnings'"`

	// Env holds the identifiers visible to expr fields, set with -e.
	Env map[string]any
	// Stderr receives diagnostics.
	Stderr io.Writer

	Main *cli.Command
}

func (cfg *MainConfig) envOpt(_ *cli.Context, a string) (any, error) {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: -e expects name=value, got %q", cli.ErrUsage, a)
	}

	if f, err := strconv.ParseFloat(val, 64); err == nil {
		cfg.Env[name] = f
	} else {
		cfg.Env[name] = val
	}

	return 0, nil
}

func (cfg *MainConfig) stderr() io.Writer {
	if cfg.Stderr == nil {
		return os.Stderr
	}

	return cfg.Stderr
}

// colors picks the palette for w: forced by -color or -no-color,
// otherwise colored only when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *render.Colors {
	switch {
	case cfg.NoColor:
		return render.NoColors()
	case cfg.Color:
		return render.NewColors()
	}

	f, ok := w.(*os.File)
	if !ok {
		return render.NoColors()
	}

	return render.AutoColor(f)
}

func (cfg *MainConfig) registry() *convert.Registry {
	reg := convert.Default()
	if len(cfg.Env) > 0 {
		_ = reg.Register("expr", convert.Expr(cfg.Env))
	}

	return reg
}

// diagnosticSink prints diagnostics to stderr, skipping warnings with -q.
//
//nolint:ireturn // sinks are consumed through the interface.
func (cfg *MainConfig) diagnosticSink() parse.Sink {
	w := cfg.stderr()
	colors := cfg.colors(w)

	return parse.SinkFunc(func(d parse.Diagnostic) {
		if cfg.Quiet && d.Severity == parse.SeverityWarning {
			return
		}

		_ = render.Diagnostic(w, &d, colors)
	})
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ExportConfig struct {
	*MainConfig

	Y bool `cli:"name=y aliases=yaml desc='export yaml (default)'"`
	J bool `cli:"name=j aliases=json desc='export json'"`

	Export *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Strict bool `cli:"name=strict desc='treat warnings as errors'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Addr      string `cli:"name=addr desc='listen address, overrides the config document'"`
	Config    string `cli:"name=config desc='edat document with server and log sections'"`
	LogLevel  string `cli:"name=log-level desc='debug, info, warn or error'"`
	LogFormat string `cli:"name=log-format desc='json or text'"`

	Serve *cli.Command
}
