package observ

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")
	err := tm.Measure("render", func() (string, error) { return "", errors.New("boom") })
	if err == nil || err.Error() != "boom" {
		t.Fatalf("Measure returned %v", err)
	}

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Detail != "3 files" || report.Phases[1].Detail != "failed" {
		t.Fatalf("details = %q, %q", report.Phases[0].Detail, report.Phases[1].Detail)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("total %v smaller than a phase", report.TotalMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "load", "(3 files)", "render", "total"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	report := NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("empty report = %+v", report)
	}
}
