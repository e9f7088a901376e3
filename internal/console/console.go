// Package console prints messages for the user.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ShouldColor reports whether ANSI colors should be used for the file.
// NO_COLOR environment variable disables colors.
func ShouldColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes messages to the output streams.
type Printer struct {
	Out io.Writer
	Err io.Writer

	// Color enables ANSI colors on Out, and ErrColor on Err.
	Color    bool
	ErrColor bool

	Verbose bool
}

func paint(enabled bool, attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func badge(w io.Writer, colored bool, label string, attrs, text []color.Attribute, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)
	if len(text) > 0 {
		msg = paint(colored, text...)(msg)
	}
	fmt.Fprintln(w, paint(colored, attrs...)(" "+label+" ")+" "+msg)
}

// Successf prints a success message to Out.
func (p *Printer) Successf(format string, args ...interface{}) {
	badge(p.Out, p.Color, "SUCCESS", []color.Attribute{color.BgHiGreen, color.FgBlack}, nil, format, args)
}

// Errorf prints an error message to Err.
func (p *Printer) Errorf(format string, args ...interface{}) {
	badge(p.Err, p.ErrColor, "ERROR", []color.Attribute{color.BgRed, color.FgWhite}, []color.Attribute{color.FgRed}, format, args)
}

// Warnf prints a warning message to Err.
func (p *Printer) Warnf(format string, args ...interface{}) {
	badge(p.Err, p.ErrColor, "WARN", []color.Attribute{color.BgYellow, color.FgBlack}, []color.Attribute{color.FgYellow}, format, args)
}

// Infof prints a message to Out.
func (p *Printer) Infof(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, paint(p.Color, color.FgBlue)(fmt.Sprintf(format, args...)))
}

// Debugf prints a message to Err only in the verbose mode.
func (p *Printer) Debugf(format string, args ...interface{}) {
	if !p.Verbose {
		return
	}
	fmt.Fprintln(p.Err, paint(p.ErrColor, color.Faint)("debug: "+fmt.Sprintf(format, args...)))
}

// Lines prints each line to Out.
func (p *Printer) Lines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(p.Out, l)
	}
}
