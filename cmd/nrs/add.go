package main

import (
	"context"

	"github.com/macrat/nrs/internal/registry"
	"github.com/spf13/pflag"
)

const AddHelp = `nrs add -- Add a custom registry

Usage: nrs add [OPTIONS...] [NAME URL [HOME]]

Asks the name and the URL if they are omitted.
The registry is saved to the custom registry file.

Options:
  -h, --help  Show this help message and exit.
`

func (cmd *NrsCommand) RunAdd(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("nrs add", pflag.ContinueOnError)

	if help, err := cmd.parseFlags(flags, args, AddHelp); help || err != nil {
		return err
	}
	if err := checkArgCount("add", flags.Args(), 3); err != nil {
		return err
	}

	name, url, home := flags.Arg(0), flags.Arg(1), flags.Arg(2)

	var err error
	if flags.NArg() < 1 {
		if name, err = cmd.Prompter.ReadText("Name of the registry", cmd.Catalog.ValidateName); err != nil {
			return err
		}
	}
	if flags.NArg() < 2 {
		if url, err = cmd.Prompter.ReadText("URL of the registry", registry.ValidateURL); err != nil {
			return err
		}
	}

	r, err := cmd.Catalog.Add(name, url, home)
	if err != nil {
		return err
	}

	cmd.printer.Debugf("saving registries to %s", cmd.Catalog.Path())
	if err := cmd.Catalog.Save(); err != nil {
		return err
	}

	cmd.printer.Successf("added registry %s (%s)", r.Name, r.URL)

	return nil
}
