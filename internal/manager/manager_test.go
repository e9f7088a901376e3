package manager_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/macrat/nrs/internal/manager"
	"github.com/macrat/nrs/internal/nrserr"
)

type FakeRunner struct {
	Output string
	Stderr string
	Err    error
	Calls  []string
}

func (r *FakeRunner) Run(ctx context.Context, command string, args ...string) ([]byte, []byte, error) {
	r.Calls = append(r.Calls, command+" "+strings.Join(args, " "))
	return []byte(r.Output), []byte(r.Stderr), r.Err
}

func NewManager(t *testing.T, r *FakeRunner) *manager.Manager {
	t.Helper()

	m, err := manager.New("npm")
	if err != nil {
		t.Fatalf("failed to create manager: %s", err)
	}
	m.Runner = r
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, c := range manager.Commands {
		if _, err := manager.New(c); err != nil {
			t.Errorf("%s: unexpected error: %s", c, err)
		}
	}

	_, err := manager.New("bower")
	if !errors.Is(err, nrserr.ErrValidation) {
		t.Errorf("expected validation error but got %v", err)
	}
}

func TestManager_Current(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name   string
		Output string
		Stderr string
		Expect string
	}{
		{"plain", "https://registry.npmjs.org/\n", "", "https://registry.npmjs.org/"},
		{"crlf", "https://registry.npmmirror.com/\r\n", "", "https://registry.npmmirror.com/"},
		{"with-banner", "yarn config v1.22.22\nhttps://registry.yarnpkg.com/\n", "", "https://registry.yarnpkg.com/"},
		{"warning-on-stderr", "https://registry.npmmirror.com/\n", "npm warn config production Use `--omit=dev` instead.\n", "https://registry.npmmirror.com/"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			r := &FakeRunner{Output: tt.Output, Stderr: tt.Stderr}
			m := NewManager(t, r)

			actual, err := m.Current(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if actual != tt.Expect {
				t.Errorf("expected %#v but got %#v", tt.Expect, actual)
			}

			if diff := cmp.Diff([]string{"npm config get registry"}, r.Calls); diff != "" {
				t.Errorf("unexpected calls:\n%s", diff)
			}
		})
	}
}

func TestManager_Use(t *testing.T) {
	t.Parallel()

	r := &FakeRunner{}
	m := NewManager(t, r)

	if err := m.Use(context.Background(), "https://registry.npmmirror.com/"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if diff := cmp.Diff([]string{"npm config set registry https://registry.npmmirror.com/"}, r.Calls); diff != "" {
		t.Errorf("unexpected calls:\n%s", diff)
	}
}

func TestManager_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name    string
		Runner  *FakeRunner
		Message string
	}{
		{
			"not-found",
			&FakeRunner{Err: fmt.Errorf("exec: \"npm\": %w", exec.ErrNotFound)},
			"npm: command not found",
		},
		{
			"with-output",
			&FakeRunner{Output: "npm ERR! something broken\n", Err: errors.New("exit status 1")},
			"npm config get registry: npm ERR! something broken",
		},
		{
			"with-stderr",
			&FakeRunner{Output: "partial\n", Stderr: "npm error code E401\n", Err: errors.New("exit status 1")},
			"npm config get registry: npm error code E401",
		},
		{
			"without-output",
			&FakeRunner{Err: errors.New("exit status 1")},
			"npm config get registry: exit status 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			m := NewManager(t, tt.Runner)

			_, err := m.Current(context.Background())
			if !errors.Is(err, nrserr.ErrManager) {
				t.Fatalf("expected manager error but got %v", err)
			}
			if err.Error() != tt.Message {
				t.Errorf("unexpected message:\nexpected: %s\n but got: %s", tt.Message, err)
			}
		})
	}
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script is not available on windows")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\n" +
		"if [ \"$1 $2 $3\" = \"config get registry\" ]; then\n" +
		"  echo https://registry.npmmirror.com/\n" +
		"  echo 'npm warn config production Use `--omit=dev` instead.' >&2\n" +
		"  exit 0\n" +
		"fi\n" +
		"echo 'npm error something broken' >&2\n" +
		"exit 1\n"
	if err := os.WriteFile(filepath.Join(dir, "npm"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to prepare fake npm: %s", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	m, err := manager.New("npm")
	if err != nil {
		t.Fatalf("failed to create manager: %s", err)
	}

	actual, err := m.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if actual != "https://registry.npmmirror.com/" {
		t.Errorf("unexpected registry: %#v", actual)
	}

	err = m.Use(context.Background(), "https://registry.npmjs.org/")
	if !errors.Is(err, nrserr.ErrManager) {
		t.Fatalf("expected manager error but got %v", err)
	}
	if err.Error() != "npm config set registry https://registry.npmjs.org/: npm error something broken" {
		t.Errorf("unexpected message: %s", err)
	}
}
