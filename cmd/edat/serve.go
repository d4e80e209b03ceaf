package main

import (
	"errors"
	"fmt"

	"github.com/0xalexb/edat"
	"github.com/0xalexb/edat/config"
	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	edatparser "github.com/0xalexb/edat/config/parser/edat"
	"github.com/0xalexb/edat/listener"
	"github.com/0xalexb/edat/logging"
	"github.com/0xalexb/edat/parse"
	"github.com/0xalexb/edat/service"
)

// listenerName names the HTTP listener of the parse service.
const listenerName = "edat"

// serveSettings is what serve reads from its config document.
type serveSettings struct {
	HTTP    listener.Config
	Service service.Config
	Log     logging.LoggerConfig
}

func serve(cfg *ServeConfig) error {
	opts, err := serveOptions(cfg)
	if err != nil {
		return err
	}

	app := edat.NewApp(opts...)

	err = app.Err()
	if err != nil {
		return fmt.Errorf("could not build server: %w", err)
	}

	app.Run()

	return nil
}

func serveOptions(cfg *ServeConfig) ([]edat.Option, error) {
	settings, err := loadServeSettings(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Addr != "" {
		settings.HTTP.Address = cfg.Addr
	}

	if cfg.LogLevel != "" {
		settings.Log.Level = cfg.LogLevel
	}

	if cfg.LogFormat != "" {
		settings.Log.Format = cfg.LogFormat
	}

	settings.Log.SetDefaults()

	return []edat.Option{
		edat.WithLogLevel(settings.Log.Level),
		edat.WithLogFormat(settings.Log.Format),
		edat.WithLogOutput(cfg.stderr()),
		edat.WithRegistry(cfg.registry()),
		edat.WithParseService(listenerName, settings.Service, listener.WithConfig(settings.HTTP)),
	}, nil
}

func loadServeSettings(cfg *ServeConfig) (*serveSettings, error) {
	settings := &serveSettings{}

	if cfg.Config == "" {
		return settings, nil
	}

	fetcher, err := filefetcher.NewFetcher(cfg.Config)()
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	parser := edatparser.NewParser(
		parse.WithName(fetcher.Path()),
		parse.WithRegistry(cfg.registry()),
	)

	err = loadSection(&settings.HTTP, "server:http", parser, fetcher)
	if err != nil {
		return nil, err
	}

	err = loadSection(&settings.Service, "server:parse", parser, fetcher)
	if err != nil {
		return nil, err
	}

	err = loadSection(&settings.Log, "log", parser, fetcher)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

// loadSection loads one optional section; a missing section keeps the
// zero value.
func loadSection[T any](target *T, path string, parser config.Parser, fetcher config.DataFetcher) error {
	_, err := config.Load(target, path, parser, fetcher)
	if errors.Is(err, edatparser.ErrPathNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("config section %q: %w", path, err)
	}

	return nil
}
