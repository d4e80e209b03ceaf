package main

import (
	"fmt"
	"io"

	"github.com/0xalexb/edat/render"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, w io.Writer, in io.Reader, args []string) error {
	files := inputs(args)
	colors := cfg.colors(w)
	failed := false

	for i, file := range files {
		doc, err := cfg.load(in, file)
		if err != nil {
			return err
		}

		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "# %s\n", doc.name)
		}

		err = render.Table(w, doc.table, colors)
		if err != nil {
			return err //nolint:wrapcheck
		}

		failed = failed || doc.err != nil
	}

	if failed {
		return cli.ExitCodeErr(1)
	}

	return nil
}
