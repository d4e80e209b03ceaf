package main

import (
	"fmt"
	"io"

	filefetcher "github.com/0xalexb/edat/config/fetcher/file"
	"github.com/0xalexb/edat/encode"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, w io.Writer, in io.Reader, args []string) error {
	if cfg.Y && cfg.J {
		return fmt.Errorf("%w: must specify at most one of -y[aml] -j[son]", cli.ErrUsage)
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: usage: edat export [-y|-j] [file]", cli.ErrUsage)
	}

	file := filefetcher.StdinName
	if len(args) == 1 {
		file = args[0]
	}

	doc, err := cfg.load(in, file)
	if err != nil {
		return err
	}

	if doc.err != nil {
		return cli.ExitCodeErr(1)
	}

	var out []byte

	if cfg.J {
		out, err = encode.JSON(doc.table)
		out = append(out, '\n')
	} else {
		out, err = encode.YAML(doc.table)
	}

	if err != nil {
		return fmt.Errorf("error encoding %s: %w", doc.name, err)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck
}
