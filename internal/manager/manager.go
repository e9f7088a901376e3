// Package manager reads and switches the registry that the package manager uses.
package manager

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/macrat/nrs/internal/nrserr"
	"github.com/macrat/nrs/internal/textdecode"
)

// DefaultTimeout is the time limit for a single package manager command.
const DefaultTimeout = 30 * time.Second

// Commands is the list of supported package managers.
var Commands = []string{"npm", "yarn", "pnpm"}

// Runner runs an external command and returns its outputs.
type Runner interface {
	Run(ctx context.Context, command string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner is a Runner that executes a real process.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, command string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}

// Manager is the package manager that owns the active registry setting.
type Manager struct {
	Command string
	Runner  Runner
	Timeout time.Duration
}

// New creates a Manager for the command.
// The command should be one of Commands.
func New(command string) (*Manager, error) {
	for _, c := range Commands {
		if c == command {
			return &Manager{
				Command: command,
				Runner:  ExecRunner{},
				Timeout: DefaultTimeout,
			}, nil
		}
	}
	return nil, nrserr.New(nrserr.ErrValidation, nil, "unsupported package manager '%s': please use %s", command, strings.Join(Commands, ", "))
}

func (m *Manager) run(ctx context.Context, args ...string) (string, error) {
	if m.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.Timeout)
		defer cancel()
	}

	rawOut, rawErr, err := m.Runner.Run(ctx, m.Command, args...)

	output, decodeErr := textdecode.Bytes(rawOut)
	output = strings.TrimSpace(output)

	// stderr is used only in the error message.
	message, _ := textdecode.Bytes(rawErr)
	message = strings.TrimSpace(message)
	if message == "" {
		message = output
	}

	commandLine := m.Command + " " + strings.Join(args, " ")

	switch {
	case errors.Is(err, exec.ErrNotFound):
		return "", nrserr.New(nrserr.ErrManager, nil, "%s: command not found", m.Command)
	case ctx.Err() == context.DeadlineExceeded:
		return "", nrserr.New(nrserr.ErrManager, nil, "%s: timed out", commandLine)
	case err != nil && message != "":
		return "", nrserr.New(nrserr.ErrManager, errors.New(message), "%s", commandLine)
	case err != nil:
		return "", nrserr.New(nrserr.ErrManager, err, "%s", commandLine)
	case decodeErr != nil:
		return "", nrserr.New(nrserr.ErrManager, decodeErr, "%s: failed to decode output", commandLine)
	}

	return output, nil
}

// Current returns the URL of the registry that currently used.
func (m *Manager) Current(ctx context.Context) (string, error) {
	output, err := m.run(ctx, "config", "get", "registry")
	if err != nil {
		return "", err
	}

	// Some package managers print a banner before the value.
	lines := strings.Split(output, "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}

// Use switches the registry.
func (m *Manager) Use(ctx context.Context, url string) error {
	_, err := m.run(ctx, "config", "set", "registry", url)
	return err
}
