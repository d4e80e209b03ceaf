package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xalexb/edat/config"
	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	edatparser "github.com/0xalexb/edat/config/parser/edat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPConfig is a listener section.
type HTTPConfig struct {
	Address string        `yaml:"address"`
	Timeout time.Duration `yaml:"timeout"`
}

func (c *HTTPConfig) SetDefaults() bool {
	changed := false

	if c.Address == "" {
		c.Address = ":8080"
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
		changed = true
	}

	return changed
}

func (c *HTTPConfig) Validate() error {
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}

	return nil
}

const serverDoc = `
server = {
    http = {
        address : str = "0.0.0.0:9090"
    }
    admin = {
        address : str = "127.0.0.1:9091"
        timeout : duration = -1s
    }
}
`

func ExampleLoad() {
	fetcher := config.FetcherFunc(func() ([]byte, error) { return []byte(serverDoc), nil })

	cfg, err := config.Load(&HTTPConfig{}, "server:http", edatparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Address: %s, Timeout: %s\n", cfg.Address, cfg.Timeout)
	// Output: Address: 0.0.0.0:9090, Timeout: 10s
}

func TestLoad_EdatDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server.edat")
	require.NoError(t, os.WriteFile(path, []byte(serverDoc), 0o600))

	fetcher, err := filefetcher.NewFetcher(path)()
	require.NoError(t, err)

	parser := edatparser.NewParser()

	t.Run("section with defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Provider(&HTTPConfig{}, "server:http")(parser, fetcher)
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9090", cfg.Address)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(&HTTPConfig{}, "server:admin", parser, fetcher)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating error")
	})

	t.Run("missing section", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(&HTTPConfig{}, "server:grpc", parser, fetcher)
		require.ErrorIs(t, err, edatparser.ErrPathNotFound)
	})
}
