package main

import (
	"context"

	"github.com/spf13/pflag"
)

const UseHelp = `nrs use -- Switch the registry

Usage: nrs use [OPTIONS...] [NAME]

Asks which registry to use if NAME is omitted.

Options:
  -h, --help  Show this help message and exit.
`

func (cmd *NrsCommand) RunUse(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("nrs use", pflag.ContinueOnError)

	if help, err := cmd.parseFlags(flags, args, UseHelp); help || err != nil {
		return err
	}
	if err := checkArgCount("use", flags.Args(), 1); err != nil {
		return err
	}

	var name string
	if flags.NArg() > 0 {
		name = flags.Arg(0)
	} else {
		var err error
		name, err = cmd.Prompter.SelectOne("Which registry do you want to use?", cmd.Catalog.Names())
		if err != nil {
			return err
		}
	}

	r, err := cmd.Catalog.Get(name)
	if err != nil {
		return err
	}

	cmd.printer.Debugf("switching registry to %s", r.URL)
	if err := cmd.Manager.Use(ctx, r.URL); err != nil {
		return err
	}

	cmd.printer.Successf("switched registry to %s (%s)", r.Name, r.URL)

	return nil
}
