package report_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/macrat/nrs/internal/probe"
	"github.com/macrat/nrs/internal/report"
)

const ms = time.Millisecond

func TestRank(t *testing.T) {
	t.Parallel()

	results := []probe.Result{
		{Name: "slow", URL: "https://slow.example/", Success: true, Latency: 400 * ms},
		{Name: "dead", URL: "https://dead.example/", Latency: 5000 * ms, TimedOut: true},
		{Name: "fast", URL: "https://fast.example/", Success: true, Latency: 50 * ms},
	}

	t.Run("highlight", func(t *testing.T) {
		lines := report.Rank(results, "https://slow.example", true)

		for i, l := range lines {
			if l.Name != results[i].Name {
				t.Errorf("%d: order changed: %s", i, l.Name)
			}
			if l.Active != (l.Name == "slow") {
				t.Errorf("%s: unexpected active=%v", l.Name, l.Active)
			}
			if l.Fastest != (l.Name == "fast") {
				t.Errorf("%s: unexpected fastest=%v", l.Name, l.Fastest)
			}
		}
	})

	t.Run("no-highlight", func(t *testing.T) {
		for _, l := range report.Rank(results, "", false) {
			if l.Fastest {
				t.Errorf("%s: marked as fastest", l.Name)
			}
			if l.Active {
				t.Errorf("%s: marked as active", l.Name)
			}
		}
	})

	t.Run("all-failed", func(t *testing.T) {
		failed := []probe.Result{
			{Name: "a", Latency: 3 * ms},
			{Name: "b", Latency: 5000 * ms, TimedOut: true},
		}
		for _, l := range report.Rank(failed, "", true) {
			if l.Fastest {
				t.Errorf("%s: failed result marked as fastest", l.Name)
			}
		}
	})

	t.Run("pure", func(t *testing.T) {
		before := append([]probe.Result(nil), results...)

		a := report.Rank(results, "https://fast.example/", true)
		b := report.Rank(results, "https://fast.example/", true)

		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("Rank is not idempotent:\n%s", diff)
		}
		if diff := cmp.Diff(before, results); diff != "" {
			t.Errorf("Rank modified the input:\n%s", diff)
		}
	})
}
