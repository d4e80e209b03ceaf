package edat_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/0xalexb/edat"
	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func startApp(t *testing.T, opts ...edat.Option) *edat.App {
	t.Helper()

	app := edat.NewApp(opts...)
	require.NotNil(t, app)
	require.NoError(t, app.Start())
	t.Cleanup(func() { _ = app.Stop() })

	return app
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	startApp(t, edat.WithLogOutput(&bytes.Buffer{}), edat.WithModules(fx.Module("test",
		fx.Invoke(func() { invoked = true }),
	)))

	require.True(t, invoked)
}

func TestNewApp_ContainerProvidesLoggerAndRegistry(t *testing.T) {
	t.Parallel()

	var (
		logger   *slog.Logger
		logCfg   logging.LoggerConfig
		registry *convert.Registry
	)

	startApp(t,
		edat.WithLogLevel("warn"),
		edat.WithLogFormat("text"),
		edat.WithLogOutput(&bytes.Buffer{}),
		edat.WithModules(fx.Invoke(func(l *slog.Logger, c logging.LoggerConfig, r *convert.Registry) {
			logger, logCfg, registry = l, c, r
		})),
	)

	require.NotNil(t, logger)
	assert.Equal(t, logging.LoggerConfig{Level: "warn", Format: "text"}, logCfg)
	require.NotNil(t, registry)
	assert.Equal(t, convert.Default().Names(), registry.Names())
}

func TestNewApp_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := convert.NewRegistry()

	var got *convert.Registry

	startApp(t,
		edat.WithLogOutput(&bytes.Buffer{}),
		edat.WithRegistry(reg),
		edat.WithModules(fx.Invoke(func(r *convert.Registry) { got = r })),
	)

	assert.Same(t, reg, got)
}

func TestNewApp_LoggerWritesToOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	startApp(t,
		edat.WithLogLevel("debug"),
		edat.WithLogOutput(&buf),
		edat.WithModules(fx.Invoke(func(l *slog.Logger) {
			l.LogAttrs(context.Background(), slog.LevelDebug, "probe", slog.String("k", "v"))
		})),
	)

	var found bool

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any

		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}

		if entry["msg"] == "probe" {
			found = true

			assert.Equal(t, "v", entry["k"])
		}
	}

	assert.True(t, found, "probe record should be logged as JSON")
}

func TestNewApp_BuildError(t *testing.T) {
	t.Parallel()

	app := edat.NewApp(
		edat.WithLogOutput(&bytes.Buffer{}),
		edat.WithModules(fx.Invoke(func(*struct{ Missing int }) {})),
	)

	require.Error(t, app.Err())
	require.Error(t, app.Start())
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	app := edat.NewApp(edat.WithLogOutput(&bytes.Buffer{}), edat.WithModules(fx.Invoke(func(lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				stopCalled = true

				return nil
			},
		})
	})))

	require.NoError(t, app.Start())
	require.NoError(t, app.Stop())
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var app *edat.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())
	require.Error(t, app.Err())
	require.NotPanics(t, app.Run)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	app := edat.NewApp(edat.WithLogOutput(&bytes.Buffer{}), edat.WithModules(fx.Invoke(func(s fx.Shutdowner) {
		go func() { _ = s.Shutdown() }()
	})))

	require.NotPanics(t, app.Run)
}
