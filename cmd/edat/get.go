package main

import (
	"fmt"
	"io"
	"strings"

	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	"github.com/0xalexb/edat/render"
	"github.com/0xalexb/edat/table"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, w io.Writer, in io.Reader, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: usage: edat get <field.path> [file]", cli.ErrUsage)
	}

	path := args[0]
	file := filefetcher.StdinName

	if len(args) == 2 {
		file = args[1]
	}

	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("%w: invalid field path %q", cli.ErrUsage, path)
		}
	}

	doc, err := cfg.load(in, file)
	if err != nil {
		return err
	}

	v, ok := lookupValue(doc.table, parts)
	if !ok {
		return fmt.Errorf("field %q not found in %s", path, doc.name)
	}

	if sub, isTable := v.(*table.Table); isTable {
		return render.Table(w, sub, cfg.colors(w)) //nolint:wrapcheck
	}

	if s, isString := v.(string); isString {
		_, err = fmt.Fprintln(w, s)
	} else {
		_, err = fmt.Fprintln(w, render.FormatValue(v))
	}

	return err //nolint:wrapcheck
}

func lookupValue(t *table.Table, parts []string) (any, bool) {
	parent, ok := t.Lookup(parts[:len(parts)-1]...)
	if !ok {
		return nil, false
	}

	return parent.Value(parts[len(parts)-1])
}
