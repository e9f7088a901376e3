package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/macrat/nrs/internal/registry"
)

// Padding is the extra width added to the longest name.
const Padding = 3

// Formatter renders lines as text.
type Formatter struct {
	// Color enables ANSI escape sequences.
	Color bool
}

type painter func(a ...interface{}) string

func (f Formatter) paint(attrs ...color.Attribute) painter {
	c := color.New(attrs...)
	if f.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func (f Formatter) marker(active bool) string {
	if active {
		return f.paint(color.FgGreen)("* ")
	}
	return "  "
}

func (f Formatter) separator(name string, width int) string {
	n := width - utf8.RuneCountInString(name) + 1
	if n < 1 {
		n = 1
	}
	return " " + f.paint(color.Faint)(strings.Repeat("-", n)) + " "
}

func columnWidth(names []string) int {
	w := 0
	for _, n := range names {
		if l := utf8.RuneCountInString(n); l > w {
			w = l
		}
	}
	return w + Padding
}

// Test renders the result of the test command.
func (f Formatter) Test(lines []Line) []string {
	names := make([]string, len(lines))
	for i, l := range lines {
		names[i] = l.Name
	}
	width := columnWidth(names)

	out := make([]string, len(lines))
	for i, l := range lines {
		suffix := fmt.Sprintf("%d ms", l.Elapsed())
		if l.Fastest {
			suffix = f.paint(color.BgHiGreen, color.FgBlack)(suffix)
		}

		if !l.Success {
			if l.TimedOut {
				suffix += f.paint(color.FgYellow)(" (timeout)")
			} else {
				suffix += f.paint(color.FgRed)(" (request failed)")
			}
		}

		out[i] = f.marker(l.Active) + l.Name + f.separator(l.Name, width) + suffix
	}

	return out
}

// List renders the registries with their URL.
func (f Formatter) List(registries []registry.Registry, active string) []string {
	names := make([]string, len(registries))
	for i, r := range registries {
		names[i] = r.Name
	}
	width := columnWidth(names)

	out := make([]string, len(registries))
	for i, r := range registries {
		out[i] = f.marker(registry.SameURL(r.URL, active)) + r.Name + f.separator(r.Name, width) + r.URL
	}

	return out
}
