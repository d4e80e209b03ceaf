package config

import (
	"errors"
	"testing"
)

type listenerSettings struct {
	Address  string
	defaults int
	err      error
}

func (c *listenerSettings) SetDefaults() bool {
	c.defaults++

	if c.Address == "" {
		c.Address = ":8080"

		return true
	}

	return false
}

func (c *listenerSettings) Validate() error {
	return c.err
}

func staticFetcher(data string) FetcherFunc {
	return func() ([]byte, error) { return []byte(data), nil }
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	var gotPath string

	parser := ParserFunc(func(data []byte, target any, path string) error {
		gotPath = path

		cfg, ok := target.(*listenerSettings)
		if !ok {
			return errors.New("invalid target type")
		}

		cfg.Address = string(data)

		return nil
	})

	target := &listenerSettings{}

	result, err := Load(target, "server:http", parser, staticFetcher(":9000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Address != ":9000" {
		t.Errorf("expected Address ':9000', got %q", result.Address)
	}

	if gotPath != "server:http" {
		t.Errorf("expected path 'server:http', got %q", gotPath)
	}

	if result.defaults != 1 {
		t.Errorf("expected SetDefaults to run once, ran %d times", result.defaults)
	}
}

func TestLoad_DefaultsAppliedBeforeValidation(t *testing.T) {
	t.Parallel()

	target := &listenerSettings{}
	noop := ParserFunc(func([]byte, any, string) error { return nil })

	result, err := Provider(target, "")(noop, staticFetcher(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Address != ":8080" {
		t.Errorf("expected default address, got %q", result.Address)
	}
}

func TestLoad_PlainTarget(t *testing.T) {
	t.Parallel()

	target := &struct{ Name string }{}
	noop := ParserFunc(func([]byte, any, string) error { return nil })

	result, err := Load(target, "", noop, staticFetcher("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name      string
		fetcher   FetcherFunc
		parser    ParserFunc
		targetErr error
		wantErr   error
	}{
		{
			name:    "fetch error",
			fetcher: func() ([]byte, error) { return nil, fetchErr },
			parser:  func([]byte, any, string) error { return nil },
			wantErr: fetchErr,
		},
		{
			name:    "parse error",
			fetcher: staticFetcher("data"),
			parser:  func([]byte, any, string) error { return parseErr },
			wantErr: parseErr,
		},
		{
			name:      "validation error",
			fetcher:   staticFetcher("data"),
			parser:    func([]byte, any, string) error { return nil },
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &listenerSettings{err: testInfo.targetErr}

			result, err := Provider(target, "server")(testInfo.parser, testInfo.fetcher)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}
