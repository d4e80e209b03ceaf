package service

import (
	"net/http"

	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/listener"

	"go.uber.org/fx"
)

// Module provides the service handler to fx under the listener called
// name. A *convert.Registry in the container replaces the default
// converters.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name string, cfg Config) fx.Option {
	if name == "" {
		return fx.Error(listener.ErrEmptyName)
	}

	return fx.Module(name+"-service",
		fx.Provide(fx.Annotate(
			func(registry *convert.Registry) (http.Handler, error) {
				return NewHandler(registry, cfg)
			},
			fx.ParamTags(`optional:"true"`),
			fx.ResultTags(listener.NameTag(name)),
		)),
	)
}
