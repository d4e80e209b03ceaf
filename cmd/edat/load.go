package main

import (
	"fmt"
	"io"

	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	"github.com/0xalexb/edat/parse"
	"github.com/0xalexb/edat/table"
)

// document is one parsed input with its diagnostics.
type document struct {
	name  string
	table *table.Table
	diags parse.Collector
	// err joins the error diagnostics; the table is still usable.
	err error
}

func (d *document) counts() (errs, warnings int) {
	for _, diag := range d.diags.Diagnostics {
		if diag.Severity == parse.SeverityError {
			errs++
		} else {
			warnings++
		}
	}

	return errs, warnings
}

// load reads path, or in when path is "-", and parses it. Diagnostics are
// printed as they are reported. The error is only for unreadable input.
func (cfg *MainConfig) load(in io.Reader, path string) (*document, error) {
	fetcher, err := filefetcher.NewSourceFetcher(path, in)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}

	doc := &document{name: fetcher.Path()}

	doc.table, doc.err = parse.Parse(data,
		parse.WithName(doc.name),
		parse.WithRegistry(cfg.registry()),
		parse.WithSink(parse.MultiSink(&doc.diags, cfg.diagnosticSink())),
	)

	return doc, nil
}

// inputs returns args, or "-" for standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{filefetcher.StdinName}
	}

	return args
}
