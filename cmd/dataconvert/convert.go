package main

import (
	"fmt"
	"io"
	"os"

	dataconvert "github.com/dataconvert/go-dataconvert"
	"github.com/dataconvert/go-dataconvert/format"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func convertMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.OutFormat == nil {
		return fmt.Errorf("%w: -to is required", cli.ErrUsage)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file, got %d", cli.ErrUsage, len(args))
	}
	in := "-"
	if len(args) == 1 {
		in = args[0]
	}
	src, err := inputFormat(cfg, in)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	data, err := readInput(in)
	if err != nil {
		status(cfg, "%v", err)
		return cli.ExitCodeErr(1)
	}
	status(cfg, "converting %s from %s to %s", in, src, *cfg.OutFormat)
	cOpts := []dataconvert.Option{dataconvert.Pretty(cfg.Pretty)}
	if cfg.Root != "" {
		cOpts = append(cOpts, dataconvert.Root(cfg.Root))
	}
	out, err := dataconvert.Convert(data, src, *cfg.OutFormat, cOpts...)
	if err != nil {
		status(cfg, "%v", err)
		return cli.ExitCodeErr(2)
	}
	if _, err := cc.Out.Write(out); err != nil {
		status(cfg, "%v", err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Out != "" && cfg.Out != "-" {
		status(cfg, "saved to %s", cfg.Out)
	}
	return nil
}

// inputFormat resolves -I, then the file suffix. Stdin has no suffix,
// so it needs the flag.
func inputFormat(cfg *MainConfig, in string) (format.Format, error) {
	if cfg.InFormat != nil {
		return *cfg.InFormat, nil
	}
	if in == "-" {
		return 0, fmt.Errorf("%w: reading stdin needs -I", format.ErrBadFormat)
	}
	return format.FromPath(in)
}

func readInput(in string) ([]byte, error) {
	if in == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(in)
}

// status writes a human progress line to stderr, colorized only when
// stderr is a terminal. Document output never goes through here.
func status(cfg *MainConfig, msg string, args ...any) {
	if cfg.Quiet {
		return
	}
	line := fmt.Sprintf(msg, args...)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		line = color.New(color.FgCyan).Sprint(line)
	}
	fmt.Fprintln(os.Stderr, line)
}
