package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "gn").
		WithSynopsis("gn [opts] command [opts]").
		WithDescription("gn is a tool for working with geometry node snapshots.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gnMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			DemoCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view snapshot files, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff before after").
		WithDescription("diff two snapshot files as change records").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("demo").
		WithSynopsis("demo").
		WithDescription("build a small collection and show its diffs").
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc)
		})
	cfg.Demo = cmd
	return cmd
}
