package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes a document into target.
//
// path selects a nested section with ':' separated keys:
//   - "server:http" decodes config["server"]["http"]
//   - "" decodes the whole document
//
// See config/parser/edat for the edat implementation.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(data []byte, target any, path string) error

// Parse calls f.
func (f ParserFunc) Parse(data []byte, target any, path string) error {
	return f(data, target, path)
}

// DataFetcher reads raw document bytes.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// FetcherFunc adapts a function to DataFetcher.
type FetcherFunc func() ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch() ([]byte, error) {
	return f()
}

// Validator is implemented by targets that check themselves after decoding.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill unset fields after decoding.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches, decodes, defaults and validates
// target. Its signature fits fx.Provide.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		return Load(target, path, parser, fetcher)
	}
}

// Load fetches, decodes, defaults and validates target in one call.
func Load[T any](target *T, path string, parser Parser, fetcher DataFetcher) (*T, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	if defaulter, ok := any(target).(Defaulter); ok {
		if defaulter.SetDefaults() {
			slog.Debug("defaults applied", slog.String("path", path))
		}
	}

	if validator, ok := any(target).(Validator); ok {
		err = validator.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}
	}

	return target, nil
}
