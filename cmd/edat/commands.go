package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Env: map[string]any{}}

	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	opts := append(sOpts, &cli.Opt{
		Name:        "e",
		Description: "bind an identifier for expr fields",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.envOpt), "(name=value)"),
	})

	return cli.NewCommandAt(&cfg.Main, "edat").
		WithSynopsis("edat [opts] command [opts]").
		WithDescription("edat reads, checks and converts edat documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edatMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			GetCommand(cfg),
			ExportCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			TypesCommand(cfg),
			ServeCommand(cfg),
			VersionCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("print the fields of documents with their Go types").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Dump.Parse(cc, args)
			if err != nil {
				return err
			}

			return dump(cfg, cc.Out, cc.In, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <field.path> [file]").
		WithDescription("print one field; dots separate nested tables").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Get.Parse(cc, args)
			if err != nil {
				return err
			}

			return get(cfg, cc.Out, cc.In, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}

	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-y|-j] [file]").
		WithDescription("convert a document to yaml or json").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Export.Parse(cc, args)
			if err != nil {
				return err
			}

			return export(cfg, cc.Out, cc.In, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}

	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-strict] [files]").
		WithDescription("report diagnostics; exit status 1 when a document has errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Check.Parse(cc, args)
			if err != nil {
				return err
			}

			return check(cfg, cc.Out, cc.In, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <from> <to>").
		WithDescription("list fields added, removed or changed; exit status 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Diff.Parse(cc, args)
			if err != nil {
				return err
			}

			return diff(cfg, cc.Out, cc.In, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}

	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list the type names fields may use").
		WithRun(func(cc *cli.Context, args []string) error {
			_, err := cfg.Types.Parse(cc, args)
			if err != nil {
				return err
			}

			return types(cfg, cc.Out)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}

	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithAliases("s").
		WithSynopsis("serve [-addr host:port] [-config file]").
		WithDescription("serve the parse API over HTTP until interrupted").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			_, err := cfg.Serve.Parse(cc, args)
			if err != nil {
				return err
			}

			return serve(cfg)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	var cmd *cli.Command

	return cli.NewCommandAt(&cmd, "version").
		WithSynopsis("version").
		WithDescription("print build information").
		WithRun(func(cc *cli.Context, args []string) error {
			_, err := cmd.Parse(cc, args)
			if err != nil {
				return err
			}

			return version(mainCfg, cc.Out)
		})
}
