package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, w io.Writer, in io.Reader, args []string) error {
	failed := false

	for _, file := range inputs(args) {
		doc, err := cfg.load(in, file)
		if err != nil {
			return err
		}

		errs, warnings := doc.counts()

		if errs == 0 && warnings == 0 {
			fmt.Fprintf(w, "%s: ok\n", doc.name)

			continue
		}

		fmt.Fprintf(w, "%s: %s, %s\n", doc.name, plural(errs, "error"), plural(warnings, "warning"))

		if errs > 0 || (cfg.Strict && warnings > 0) {
			failed = true
		}
	}

	if failed {
		return cli.ExitCodeErr(1)
	}

	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
