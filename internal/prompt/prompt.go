// Package prompt asks questions to the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrAborted means the input closed before the user answered.
	ErrAborted = errors.New("prompt aborted")

	// ErrNoOptions means SelectOne called without options.
	ErrNoOptions = errors.New("no options to select")
)

// Prompter asks the user and waits for the answer.
type Prompter interface {
	// SelectOne asks to choose one of options, and returns the chosen one.
	SelectOne(message string, options []string) (string, error)

	// ReadText asks for a text. It asks again until validate returns nil.
	ReadText(message string, validate func(string) error) (string, error)
}

// Terminal is a line based Prompter.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal that reads answers from in and writes questions to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *Terminal) readLine() (string, error) {
	s, err := t.in.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			fmt.Fprintln(t.out)
			return "", ErrAborted
		}
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (t *Terminal) SelectOne(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	fmt.Fprintf(t.out, "? %s\n", message)
	for i, o := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, o)
	}

	for {
		fmt.Fprintf(t.out, "  answer [1-%d]: ", len(options))

		answer, err := t.readLine()
		if err != nil {
			return "", err
		}

		if n, err := strconv.Atoi(answer); err == nil && 1 <= n && n <= len(options) {
			return options[n-1], nil
		}
		for _, o := range options {
			if o == answer {
				return o, nil
			}
		}

		fmt.Fprintf(t.out, "  please enter a number between 1 and %d.\n", len(options))
	}
}

func (t *Terminal) ReadText(message string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(t.out, "? %s: ", message)

		answer, err := t.readLine()
		if err != nil {
			return "", err
		}

		if validate == nil {
			return answer, nil
		}
		if err := validate(answer); err != nil {
			fmt.Fprintf(t.out, "  %s\n", err)
			continue
		}
		return answer, nil
	}
}
