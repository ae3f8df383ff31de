package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt", "from"},
			Description: "input format: json/j, csv/c, xml/x, yaml/y (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt", "to"},
			Description: "output format: json/j, csv/c, xml/x, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dataconvert").
		WithSynopsis("dataconvert -to <format> [opts] [file]").
		WithDescription("dataconvert converts documents between json, csv, xml, and yaml.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convertMain(cfg, cc, args)
		})
}
