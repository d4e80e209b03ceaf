package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.uber.org/fx"
)

// NameTag returns the fx tag that binds the handler and Config of the
// listener called name.
func NameTag(name string) string {
	return fmt.Sprintf(`name:%q`, name)
}

// NewModule creates an fx module for the listener called name. With
// options the module supplies its own Config; without, a Config tagged
// with NameTag(name) must be provided elsewhere.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	moduleOpts := make([]fx.Option, 0, 2) //nolint:mnd // config and invoke

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(NameTag(name)))))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		fx.Annotate(register(name), fx.ParamTags("", "", NameTag(name), NameTag(name))),
	))

	return fx.Module(name, moduleOpts...)
}

func register(name string) func(fx.Lifecycle, fx.Shutdowner, http.Handler, Config) error {
	return func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, handler http.Handler, cfg Config) error {
		srv, err := NewServer(name, handler, cfg, func() {
			shutdownErr := shutdowner.Shutdown()
			if shutdownErr != nil {
				slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
			}
		})
		if err != nil {
			return err
		}

		lifecycle.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})

		return nil
	}
}
