package main

import (
	"fmt"
	"os"

	"github.com/dataconvert/go-dataconvert/format"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Pretty bool   `cli:"name=pretty aliases=p desc='pretty-print the output'"`
	Quiet  bool   `cli:"name=q aliases=quiet desc='suppress status output'"`
	Root   string `cli:"name=root desc='xml root element name'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
