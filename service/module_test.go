package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/listener"
	"github.com/0xalexb/edat/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func freeAddr(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func TestModule_ServesThroughListener(t *testing.T) {
	t.Parallel()

	addr := freeAddr(t)

	app := fxtest.New(t,
		service.Module("edat", service.Config{}),
		listener.NewModule("edat", listener.WithAddress(addr)),
	)

	app.RequireStart()
	defer app.RequireStop()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"http://"+addr+"/v1/parse", strings.NewReader(`n : int = 7`))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // G704: test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed service.ParseResponse

	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.JSONEq(t, `{"n":7}`, string(parsed.Table))
}

func TestModule_UsesRegistryFromContainer(t *testing.T) {
	t.Parallel()

	reg := convert.NewRegistry()
	require.NoError(t, reg.Register("only", convert.Func(func(s string) (string, error) { return s, nil })))

	var h http.Handler

	app := fxtest.New(t,
		fx.Supply(reg),
		service.Module("edat", service.Config{}),
		fx.Invoke(fx.Annotate(func(handler http.Handler) { h = handler }, fx.ParamTags(listener.NameTag("edat")))),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, h)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/types", nil))

	assert.JSONEq(t, `{"types":["only"]}`, rec.Body.String())
}

func TestModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(service.Module("", service.Config{}), fx.NopLogger)

	require.ErrorIs(t, app.Err(), listener.ErrEmptyName)
}
