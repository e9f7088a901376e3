package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/macrat/nrs/internal/console"
	"github.com/macrat/nrs/internal/manager"
	"github.com/macrat/nrs/internal/meta"
	"github.com/macrat/nrs/internal/nrserr"
	"github.com/macrat/nrs/internal/prompt"
	"github.com/macrat/nrs/internal/registry"
	"github.com/spf13/pflag"
)

// RegistryManager reads and switches the registry of the package manager.
type RegistryManager interface {
	Current(ctx context.Context) (string, error)
	Use(ctx context.Context, url string) error
}

type NrsCommand struct {
	InStream  io.Reader
	OutStream io.Writer
	ErrStream io.Writer

	ConfigPath  string
	ManagerName string
	NoColor     bool
	Verbose     bool
	ShowVersion bool
	ShowHelp    bool

	// These are prepared by Run if nil.
	Catalog  *registry.Catalog
	Manager  RegistryManager
	Prompter prompt.Prompter

	printer *console.Printer
}

var defaultNrsCommand = &NrsCommand{
	InStream:  os.Stdin,
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

const NrsHelp = `nrs -- Switch and test the package registry mirrors

Usage: nrs [OPTIONS...] COMMAND [ARGS...]

Commands:
  list, ls               List all registries.
  current                Show the registry currently in use.
  use [NAME]             Switch the registry.
  test [NAME]            Test response time of the registries.
  add [NAME URL [HOME]]  Add a custom registry.
  delete, rm [NAME]      Delete a custom registry.
  version                Show version and exit.

Options:
  -c, --config PATH     Path to the custom registry file. (default $NRS_CONFIG or user config directory)
  -m, --manager NAME    Package manager to configure: npm, yarn, or pnpm. (default $NRS_MANAGER or npm)
      --no-color        Disable colored output.
  -v, --verbose         Show debug messages.
  -V, --version         Show version and exit.
  -h, --help            Show this help message and exit.

Run 'nrs COMMAND -h' to see options of each command.
`

// usageError is an error in the command line arguments.
type usageError struct {
	command string
	err     error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func newUsageError(command string, err error) error {
	return usageError{command, nrserr.New(nrserr.ErrValidation, err, "")}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (cmd *NrsCommand) ParseArgs(args []string) (rest []string, exitCode int) {
	flags := pflag.NewFlagSet("nrs", pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.StringVarP(&cmd.ConfigPath, "config", "c", "", "Path to the custom registry file")
	flags.StringVarP(&cmd.ManagerName, "manager", "m", envOr("NRS_MANAGER", "npm"), "Package manager")
	flags.BoolVar(&cmd.NoColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&cmd.Verbose, "verbose", "v", false, "Show debug messages")
	flags.BoolVarP(&cmd.ShowVersion, "version", "V", false, "Show version")
	flags.BoolVarP(&cmd.ShowHelp, "help", "h", false, "Show help message")

	if err := flags.Parse(args[1:]); err != nil {
		fmt.Fprintln(cmd.ErrStream, err)
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return nil, 2
	}

	return flags.Args(), 0
}

func (cmd *NrsCommand) PrintVersion() {
	fmt.Fprintf(cmd.OutStream, "nrs version %s (%s)\n", meta.Version, meta.Commit)
}

func (cmd *NrsCommand) colorEnabled(w io.Writer) bool {
	if cmd.NoColor {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return console.ShouldColor(f)
	}
	return false
}

func (cmd *NrsCommand) prepare() error {
	if cmd.Catalog == nil {
		path := cmd.ConfigPath
		if path == "" {
			var err error
			if path, err = registry.DefaultPath(); err != nil {
				return err
			}
		}
		cmd.printer.Debugf("loading registries from %s", path)

		c, err := registry.Load(path)
		if err != nil {
			return err
		}
		cmd.Catalog = c
	}

	if cmd.Manager == nil {
		m, err := manager.New(cmd.ManagerName)
		if err != nil {
			return err
		}
		cmd.printer.Debugf("using package manager: %s", m.Command)
		cmd.Manager = m
	}

	if cmd.Prompter == nil {
		cmd.Prompter = prompt.New(cmd.InStream, cmd.OutStream)
	}

	return nil
}

func (cmd *NrsCommand) Run(args []string) (exitCode int) {
	rest, code := cmd.ParseArgs(args)
	if code != 0 {
		return code
	}

	if cmd.ShowVersion {
		cmd.PrintVersion()
		return 0
	}

	if cmd.ShowHelp || len(rest) == 0 {
		fmt.Fprint(cmd.OutStream, NrsHelp)
		if len(rest) == 0 && !cmd.ShowHelp {
			return 2
		}
		return 0
	}

	cmd.printer = &console.Printer{
		Out:      cmd.OutStream,
		Err:      cmd.ErrStream,
		Color:    cmd.colorEnabled(cmd.OutStream),
		ErrColor: cmd.colorEnabled(cmd.ErrStream),
		Verbose:  cmd.Verbose,
	}

	var run func(context.Context, []string) error
	switch rest[0] {
	case "list", "ls":
		run = cmd.RunList
	case "current":
		run = cmd.RunCurrent
	case "use":
		run = cmd.RunUse
	case "test":
		run = cmd.RunTest
	case "add":
		run = cmd.RunAdd
	case "delete", "del", "rm":
		run = cmd.RunDelete
	case "version":
		cmd.PrintVersion()
		return 0
	case "help":
		fmt.Fprint(cmd.OutStream, NrsHelp)
		return 0
	default:
		fmt.Fprintf(cmd.ErrStream, "unknown command: %s\n", rest[0])
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
		return 2
	}

	ctx := context.Background()

	err := cmd.prepare()
	if err == nil {
		err = run(ctx, rest)
	}

	return cmd.handleError(args[0], err)
}

func (cmd *NrsCommand) handleError(program string, err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, prompt.ErrAborted) {
		cmd.printer.Warnf("aborted")
		return 1
	}

	cmd.printer.Errorf("%s", err)

	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s %s -h` for more information.\n", program, uerr.command)
		return 2
	}
	if errors.Is(err, nrserr.ErrValidation) {
		return 2
	}
	return 1
}

// parseFlags parses arguments of a sub command.
// It returns showHelp=true if -h was passed, and the help was already printed.
func (cmd *NrsCommand) parseFlags(flags *pflag.FlagSet, args []string, help string) (showHelp bool, err error) {
	showHelp = false
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")

	if err := flags.Parse(args[1:]); err != nil {
		return false, newUsageError(args[0], err)
	}

	if showHelp {
		fmt.Fprint(cmd.OutStream, help)
	}

	return showHelp, nil
}

func checkArgCount(command string, args []string, max int) error {
	if len(args) > max {
		return newUsageError(command, fmt.Errorf("too many arguments: %s", strings.Join(args[max:], " ")))
	}
	return nil
}

func main() {
	os.Exit(defaultNrsCommand.Run(os.Args))
}
