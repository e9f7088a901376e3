package report

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/macrat/nrs/internal/registry"
)

type jsonResult struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Active     bool   `json:"active"`
	Success    bool   `json:"success"`
	Elapsed    int64  `json:"elapsed_ms"`
	TimedOut   bool   `json:"timed_out"`
	Fastest    bool   `json:"fastest"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

type jsonRegistry struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Home    string `json:"home,omitempty"`
	Builtin bool   `json:"builtin"`
	Active  bool   `json:"active"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes the ranked lines as a JSON array.
func WriteJSON(w io.Writer, lines []Line) error {
	rs := make([]jsonResult, len(lines))
	for i, l := range lines {
		rs[i] = jsonResult{
			Name:       l.Name,
			URL:        l.URL,
			Active:     l.Active,
			Success:    l.Success,
			Elapsed:    l.Elapsed(),
			TimedOut:   l.TimedOut,
			Fastest:    l.Fastest,
			StatusCode: l.StatusCode,
			Message:    l.Message,
		}
	}
	return writeJSON(w, rs)
}

// WriteCatalogJSON writes the registries as a JSON array.
func WriteCatalogJSON(w io.Writer, registries []registry.Registry, active string) error {
	rs := make([]jsonRegistry, len(registries))
	for i, r := range registries {
		rs[i] = jsonRegistry{
			Name:    r.Name,
			URL:     r.URL,
			Home:    r.Home,
			Builtin: r.Builtin,
			Active:  registry.SameURL(r.URL, active),
		}
	}
	return writeJSON(w, rs)
}
