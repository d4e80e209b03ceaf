package edat

import (
	"testing"
	"time"

	"github.com/0xalexb/edat/convert"
	"github.com/0xalexb/edat/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
name : str = "test-app"
version : str = "1.0"
api = {
    host : str = localhost
    port : int = 8080
    timeout : duration = 1m30s
    permissions = {
        admin = { read : bool = true; write : bool = true }
        user = { read : bool = true; write : bool = false }
    }
}
peers : str[] = [ "a.example.com", "b.example.com" ]
`

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	var result struct {
		Name    string   `yaml:"name"`
		Version string   `yaml:"version"`
		Peers   []string `yaml:"peers"`
	}

	err := NewParser().Parse([]byte(document), &result, "")

	require.NoError(t, err)
	assert.Equal(t, "test-app", result.Name)
	assert.Equal(t, "1.0", result.Version)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, result.Peers)
}

func TestParser_Parse_SingleLevelPath(t *testing.T) {
	t.Parallel()

	var result struct {
		Host    string        `yaml:"host"`
		Port    int           `yaml:"port"`
		Timeout time.Duration `yaml:"timeout"`
	}

	err := NewParser().Parse([]byte(document), &result, "api")

	require.NoError(t, err)
	assert.Equal(t, "localhost", result.Host)
	assert.Equal(t, 8080, result.Port)
	assert.Equal(t, 90*time.Second, result.Timeout)
}

func TestParser_Parse_MultiLevelPath(t *testing.T) {
	t.Parallel()

	var result struct {
		Read  bool `yaml:"read"`
		Write bool `yaml:"write"`
	}

	err := NewParser().Parse([]byte(document), &result, "api:permissions:user")

	require.NoError(t, err)
	assert.True(t, result.Read)
	assert.False(t, result.Write)
}

func TestParser_Parse_PrototypeCopy(t *testing.T) {
	t.Parallel()

	data := []byte(`
base = { host : str = "h"; port : int = 1 }
prod <- base = { port : int = 443 }
`)

	var result struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}

	require.NoError(t, NewParser().Parse(data, &result, "prod"))
	assert.Equal(t, "h", result.Host)
	assert.Equal(t, 443, result.Port)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		path   string
		wantIs []error
	}{
		{name: "empty data", data: "", wantIs: []error{ErrEmptyData}},
		{name: "missing path", data: document, path: "api:missing", wantIs: []error{ErrPathNotFound}},
		{
			name:   "malformed document",
			data:   "a : int 1\n",
			wantIs: []error{ErrInvalidDocument, parse.ErrMalformedSyntax},
		},
		{
			name:   "invalid value",
			data:   "a : int = x\n",
			wantIs: []error{ErrInvalidDocument, parse.ErrInvalidValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var target map[string]any

			err := NewParser().Parse([]byte(tt.data), &target, tt.path)

			require.Error(t, err)

			for _, want := range tt.wantIs {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestParser_Parse_WarningsDoNotFail(t *testing.T) {
	t.Parallel()

	var sink parse.Collector

	var result struct {
		A int `yaml:"a"`
	}

	err := NewParser(parse.WithSink(&sink)).Parse([]byte("v : vec3 = 1\na : int = 2\n"), &result, "")

	require.NoError(t, err)
	assert.Equal(t, 2, result.A)
	assert.Equal(t, []parse.Kind{parse.KindUnknownTypeName}, sink.Kinds())
}

func TestParser_Parse_CustomRegistry(t *testing.T) {
	t.Parallel()

	reg := convert.Default()
	require.NoError(t, reg.Register("upper", convert.Func(func(s string) (string, error) {
		return "UP:" + s, nil
	})))

	var result struct {
		Name string `yaml:"name"`
	}

	err := NewParser(parse.WithRegistry(reg)).Parse([]byte(`name : upper = x`), &result, "")

	require.NoError(t, err)
	assert.Equal(t, "UP:x", result.Name)
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$.key", convertToYAMLPath("key"))
	assert.Equal(t, "$.api.permissions", convertToYAMLPath("api:permissions"))
}
