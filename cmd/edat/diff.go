package main

import (
	"fmt"
	"io"

	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	"github.com/0xalexb/edat/render"
	"github.com/0xalexb/edat/tablediff"

	"github.com/scott-cotton/cli"
)

// exitTrouble is the exit status of diff when an input has errors.
const exitTrouble = 2

func diff(cfg *DiffConfig, w io.Writer, in io.Reader, args []string) error {
	if len(args) != 2 { //nolint:mnd // from and to
		return fmt.Errorf("%w: usage: edat diff <from> <to>", cli.ErrUsage)
	}

	if args[0] == filefetcher.StdinName && args[1] == filefetcher.StdinName {
		return fmt.Errorf("%w: only one side may be standard input", cli.ErrUsage)
	}

	from, err := cfg.load(in, args[0])
	if err != nil {
		return err
	}

	to, err := cfg.load(in, args[1])
	if err != nil {
		return err
	}

	if from.err != nil || to.err != nil {
		return cli.ExitCodeErr(exitTrouble)
	}

	changes := tablediff.Diff(from.table, to.table)
	colors := cfg.colors(w)

	for _, c := range changes {
		fmt.Fprintln(w, formatChange(c, colors))
	}

	if len(changes) > 0 {
		return cli.ExitCodeErr(1)
	}

	return nil
}

func formatChange(c tablediff.Change, colors *render.Colors) string {
	switch c.Kind {
	case tablediff.Added:
		return colors.Caret("+ %s = %s", c.Path, render.FormatValue(c.To))
	case tablediff.Removed:
		return colors.Error("- %s = %s", c.Path, render.FormatValue(c.From))
	default:
		return colors.Warning("~ %s: %s -> %s", c.Path, render.FormatValue(c.From), render.FormatValue(c.To))
	}
}
