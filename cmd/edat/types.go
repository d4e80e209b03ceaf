package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/0xalexb/edat"
	"github.com/0xalexb/edat/render"
)

func types(cfg *TypesConfig, w io.Writer) error {
	reg := cfg.registry()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0) //nolint:mnd // column layout

	fmt.Fprintln(tw, "NAME\tGO TYPE")

	for _, name := range reg.Names() {
		conv, _ := reg.Resolve(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, render.TypeName(conv.Type()))
	}

	return tw.Flush() //nolint:wrapcheck
}

func version(_ *MainConfig, w io.Writer) error {
	_, err := fmt.Fprintln(w, edat.VersionString())

	return err //nolint:wrapcheck
}
