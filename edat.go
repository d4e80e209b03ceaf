package edat

import (
	"fmt"

	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	"github.com/0xalexb/edat/parse"
	"github.com/0xalexb/edat/table"
)

// ParseFile reads and parses the document at path. Diagnostics name the
// cleaned path unless opts set another name. As with parse.Parse the table
// is returned even when err reports error diagnostics; it is nil only when
// the file cannot be read.
func ParseFile(path string, opts ...parse.Option) (*table.Table, error) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	opts = append([]parse.Option{parse.WithName(fetcher.Path())}, opts...)

	return parse.Parse(data, opts...) //nolint:wrapcheck
}
