package listener

import "time"

// Option configures a listener created by NewModule.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithReadTimeout limits the time to read a whole request.
func WithReadTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.ReadTimeout = d
	}
}

// WithWriteTimeout limits the time to write a response.
func WithWriteTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.WriteTimeout = d
	}
}

// WithShutdownTimeout limits a graceful stop.
func WithShutdownTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.ShutdownTimeout = d
	}
}

// WithConfig replaces every setting with cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
