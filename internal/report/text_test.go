package report_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/macrat/nrs/internal/probe"
	"github.com/macrat/nrs/internal/registry"
	"github.com/macrat/nrs/internal/report"
)

func paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func TestFormatter_Test(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name      string
		Results   []probe.Result
		Active    string
		Highlight bool
		Color     bool
		Output    []string
	}{
		{
			Name: "fast-and-slow",
			Results: []probe.Result{
				{Name: "fast", URL: "https://fast.example/", Success: true, Latency: 50 * ms},
				{Name: "slow", URL: "https://slow.example/", Success: true, Latency: 400 * ms},
			},
			Highlight: true,
			Output: []string{
				"  fast ---- 50 ms",
				"  slow ---- 400 ms",
			},
		},
		{
			Name: "fast-and-slow-colored",
			Results: []probe.Result{
				{Name: "fast", URL: "https://fast.example/", Success: true, Latency: 50 * ms},
				{Name: "slow", URL: "https://slow.example/", Success: true, Latency: 400 * ms},
			},
			Highlight: true,
			Color:     true,
			Output: []string{
				"  fast " + paint("----", color.Faint) + " " + paint("50 ms", color.BgHiGreen, color.FgBlack),
				"  slow " + paint("----", color.Faint) + " 400 ms",
			},
		},
		{
			Name: "timeout",
			Results: []probe.Result{
				{Name: "dead", URL: "https://dead.example/", Latency: 5000 * ms, TimedOut: true},
			},
			Output: []string{
				"  dead ---- 5000 ms (timeout)",
			},
		},
		{
			Name: "failures-and-active",
			Results: []probe.Result{
				{Name: "npm", URL: "https://registry.npmjs.org/", Success: true, Latency: 120 * ms},
				{Name: "company", URL: "https://npm.example.com/", Latency: 8 * ms, StatusCode: 500},
				{Name: "dead", URL: "https://dead.example/", Latency: 5001 * ms, TimedOut: true},
			},
			Active:    "https://registry.npmjs.org/",
			Highlight: true,
			Output: []string{
				"* npm -------- 120 ms",
				"  company ---- 8 ms (request failed)",
				"  dead ------- 5001 ms (timeout)",
			},
		},
		{
			Name: "single-target",
			Results: []probe.Result{
				{Name: "npm", URL: "https://registry.npmjs.org/", Success: true, Latency: 120 * ms},
			},
			Highlight: false,
			Color:     true,
			Output: []string{
				"  npm " + paint("----", color.Faint) + " 120 ms",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			f := report.Formatter{Color: tt.Color}

			lines := report.Rank(tt.Results, tt.Active, tt.Highlight)
			output := f.Test(lines)

			if diff := cmp.Diff(tt.Output, output); diff != "" {
				t.Errorf("unexpected output:\n%s", diff)
			}

			if diff := cmp.Diff(output, f.Test(lines)); diff != "" {
				t.Errorf("output changed in second call:\n%s", diff)
			}
		})
	}
}

func TestFormatter_List(t *testing.T) {
	t.Parallel()

	c := registry.New("")
	if _, err := c.Add("company", "https://npm.example.com/", ""); err != nil {
		t.Fatalf("failed to prepare: %s", err)
	}

	output := report.Formatter{}.List(c.All(), "https://registry.npmmirror.com")

	expected := []string{
		"  npm ---------- https://registry.npmjs.org/",
		"  yarn --------- https://registry.yarnpkg.com/",
		"  tencent ------ https://mirrors.cloud.tencent.com/npm/",
		"  cnpm --------- https://r.cnpmjs.org/",
		"* taobao ------- https://registry.npmmirror.com/",
		"  npmMirror ---- https://skimdb.npmjs.com/registry/",
		"  company ------ https://npm.example.com/",
	}

	if diff := cmp.Diff(expected, output); diff != "" {
		t.Errorf("unexpected output:\n%s", diff)
	}

	column := -1
	for _, l := range output {
		i := strings.Index(l, "https://")
		if column >= 0 && i != column {
			t.Errorf("URL is not aligned: %s", l)
		}
		column = i
	}
}
