// Package report ranks probe results and renders them for humans or machines.
package report

import (
	"github.com/macrat/nrs/internal/probe"
	"github.com/macrat/nrs/internal/registry"
)

// Line is a probe result with its ranking.
type Line struct {
	probe.Result

	// Active is true if the registry is the one the package manager uses now.
	Active bool

	// Fastest is true if this is the fastest successful result and highlighting was requested.
	Fastest bool
}

// Rank marks the fastest result and the active registry.
//
// The lines are in the same order as results; ranking never reorders them.
// The fastest result is marked only if highlightFastest is true.
func Rank(results []probe.Result, active string, highlightFastest bool) []Line {
	fastest, ok := probe.Fastest(results)

	lines := make([]Line, len(results))
	for i, r := range results {
		lines[i] = Line{
			Result:  r,
			Active:  registry.SameURL(r.URL, active),
			Fastest: highlightFastest && ok && i == fastest,
		}
	}

	return lines
}
