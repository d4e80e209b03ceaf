package service

import (
	"errors"
	"time"

	"github.com/0xalexb/edat/listener/middleware"
)

// DefaultTimeout bounds one request.
const DefaultTimeout = 10 * time.Second

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid service config")

// Config holds the service settings.
type Config struct {
	// MaxBodySize limits a document in bytes.
	MaxBodySize int64         `yaml:"max_body_size"`
	Timeout     time.Duration `yaml:"timeout"`
}

// SetDefaults fills zero fields.
func (c *Config) SetDefaults() bool {
	changed := false

	if c.MaxBodySize == 0 {
		c.MaxBodySize = middleware.DefaultMaxBodySize
		changed = true
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
		changed = true
	}

	return changed
}

// Validate rejects negative limits.
func (c *Config) Validate() error {
	if c.MaxBodySize < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("max_body_size must not be negative"))
	}

	if c.Timeout < 0 {
		return errors.Join(ErrInvalidConfig, errors.New("timeout must not be negative"))
	}

	return nil
}
