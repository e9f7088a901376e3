package main

import (
	"context"
	"errors"
	"time"

	"github.com/macrat/nrs/internal/probe"
	"github.com/macrat/nrs/internal/registry"
	"github.com/macrat/nrs/internal/report"
	"github.com/spf13/pflag"
)

const TestHelp = `nrs test -- Test response time of the registries

Usage: nrs test [OPTIONS...] [NAME]

Tests all registries and highlights the fastest one if NAME is omitted.

Options:
  -t, --timeout DURATION  Time limit of each request. (default $NRS_TIMEOUT or 5s)
  -p, --package NAME      Package name to request. (default npm)
  -n, --concurrency N     Max number of requests at the same time. (default unlimited)
  -j, --json              Print as JSON.
  -h, --help              Show this help message and exit.
`

var errInvalidTimeout = errors.New("timeout must be greater than zero")

func defaultTestTimeout() time.Duration {
	if d, err := time.ParseDuration(envOr("NRS_TIMEOUT", "")); err == nil && d > 0 {
		return d
	}
	return probe.DefaultTimeout
}

func (cmd *NrsCommand) RunTest(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("nrs test", pflag.ContinueOnError)
	timeout := flags.DurationP("timeout", "t", defaultTestTimeout(), "Time limit of each request")
	pkg := flags.StringP("package", "p", probe.DefaultPackage, "Package name to request")
	concurrency := flags.IntP("concurrency", "n", 0, "Max number of requests at the same time")
	asJSON := flags.BoolP("json", "j", false, "Print as JSON")

	if help, err := cmd.parseFlags(flags, args, TestHelp); help || err != nil {
		return err
	}
	if err := checkArgCount("test", flags.Args(), 1); err != nil {
		return err
	}
	if *timeout <= 0 {
		return newUsageError("test", errInvalidTimeout)
	}

	targets := cmd.Catalog.All()
	single := flags.NArg() > 0
	if single {
		r, err := cmd.Catalog.Get(flags.Arg(0))
		if err != nil {
			return err
		}
		targets = []registry.Registry{r}
	}

	for _, t := range targets {
		cmd.printer.Debugf("probing %s", probe.RequestURL(t, *pkg))
	}

	results := probe.Probe(ctx, targets, probe.Options{
		Timeout:     *timeout,
		Package:     *pkg,
		Concurrency: *concurrency,
	})

	active, err := cmd.Manager.Current(ctx)
	if err != nil {
		cmd.printer.Warnf("failed to get current registry: %s", err)
		active = ""
	}

	lines := report.Rank(results, active, !single)

	if *asJSON {
		return report.WriteJSON(cmd.OutStream, lines)
	}

	f := report.Formatter{Color: cmd.printer.Color}
	cmd.printer.Lines(f.Test(lines))

	return nil
}
