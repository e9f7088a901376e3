package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

const CurrentHelp = `nrs current -- Show the registry currently in use

Usage: nrs current [OPTIONS...]

Options:
  -u, --url   Print only the URL.
  -h, --help  Show this help message and exit.
`

func (cmd *NrsCommand) RunCurrent(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("nrs current", pflag.ContinueOnError)
	onlyURL := flags.BoolP("url", "u", false, "Print only the URL")

	if help, err := cmd.parseFlags(flags, args, CurrentHelp); help || err != nil {
		return err
	}
	if err := checkArgCount("current", flags.Args(), 0); err != nil {
		return err
	}

	active, err := cmd.Manager.Current(ctx)
	if err != nil {
		return err
	}

	if *onlyURL {
		fmt.Fprintln(cmd.OutStream, active)
		return nil
	}

	if r, ok := cmd.Catalog.FindByURL(active); ok {
		cmd.printer.Infof("current registry: %s (%s)", r.Name, r.URL)
	} else {
		cmd.printer.Infof("current registry: %s", active)
	}

	return nil
}
