package main

import (
	"context"

	"github.com/macrat/nrs/internal/nrserr"
	"github.com/macrat/nrs/internal/registry"
	"github.com/spf13/pflag"
)

const DeleteHelp = `nrs delete -- Delete a custom registry

Usage: nrs delete [OPTIONS...] [NAME]

Asks which registry to delete if NAME is omitted.
The registry currently in use can not be deleted.

Options:
  -h, --help  Show this help message and exit.
`

func (cmd *NrsCommand) RunDelete(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("nrs delete", pflag.ContinueOnError)

	if help, err := cmd.parseFlags(flags, args, DeleteHelp); help || err != nil {
		return err
	}
	if err := checkArgCount("delete", flags.Args(), 1); err != nil {
		return err
	}

	custom := cmd.Catalog.Custom()

	var name string
	if flags.NArg() > 0 {
		name = flags.Arg(0)
	} else {
		if len(custom) == 0 {
			cmd.printer.Warnf("there is no custom registry to delete")
			return nil
		}

		names := make([]string, len(custom))
		for i, r := range custom {
			names[i] = r.Name
		}

		var err error
		if name, err = cmd.Prompter.SelectOne("Which registry do you want to delete?", names); err != nil {
			return err
		}
	}

	r, err := cmd.Catalog.Get(name)
	if err != nil {
		return err
	}
	if r.Builtin {
		return nrserr.New(nrserr.ErrValidation, nil, "can not delete the builtin registry '%s'", r.Name)
	}

	active, err := cmd.Manager.Current(ctx)
	if err != nil {
		return err
	}
	if registry.SameURL(r.URL, active) {
		return nrserr.New(nrserr.ErrConflict, nil, "the registry '%s' is in use (%s): please switch to another registry before deleting", r.Name, r.URL)
	}

	if _, err := cmd.Catalog.Delete(r.Name); err != nil {
		return err
	}

	cmd.printer.Debugf("saving registries to %s", cmd.Catalog.Path())
	if err := cmd.Catalog.Save(); err != nil {
		return err
	}

	cmd.printer.Successf("deleted registry %s", r.Name)

	return nil
}
