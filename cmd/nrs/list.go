package main

import (
	"context"

	"github.com/macrat/nrs/internal/report"
	"github.com/spf13/pflag"
)

const ListHelp = `nrs list -- List all registries

Usage: nrs list [OPTIONS...]

The registry currently in use is marked with '*'.

Options:
  -j, --json  Print as JSON.
  -h, --help  Show this help message and exit.
`

func (cmd *NrsCommand) RunList(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("nrs list", pflag.ContinueOnError)
	asJSON := flags.BoolP("json", "j", false, "Print as JSON")

	if help, err := cmd.parseFlags(flags, args, ListHelp); help || err != nil {
		return err
	}
	if err := checkArgCount("list", flags.Args(), 0); err != nil {
		return err
	}

	active, err := cmd.Manager.Current(ctx)
	if err != nil {
		return err
	}

	if *asJSON {
		return report.WriteCatalogJSON(cmd.OutStream, cmd.Catalog.All(), active)
	}

	f := report.Formatter{Color: cmd.printer.Color}
	cmd.printer.Lines(f.List(cmd.Catalog.All(), active))

	return nil
}
