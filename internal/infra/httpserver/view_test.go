package httpserver

import (
	"context"
	"testing"
	"time"

	appanalysis "github.com/bryanwahyu/clarity-analyzer/internal/application/analysis"
	"github.com/bryanwahyu/clarity-analyzer/internal/infra/analyzer/mock"
)

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func runFor(t *testing.T, text string) *appanalysis.RunResult {
	t.Helper()
	svc := &appanalysis.Service{Analyzer: mock.New(), Clock: stubClock{}}
	res, err := svc.Run(context.Background(), appanalysis.RunCommand{Text: text})
	if err != nil {
		t.Fatalf("Run(%q) errored: %v", text, err)
	}
	return res
}

func TestBuildViewModelEmpty(t *testing.T) {
	vm := BuildViewModel("Demo", "  ", "", nil)
	if vm.HasResults {
		t.Error("nil run produced results view")
	}
	if vm.InputText != "  " {
		t.Error("input text not carried into the form")
	}
	if len(vm.Rows) != 0 || len(vm.Bars) != 0 || vm.Detail != nil {
		t.Error("empty view model carries result fragments")
	}
}

func TestBuildViewModelMetrics(t *testing.T) {
	res := runFor(t, "https://x.com")
	vm := BuildViewModel("Demo", "https://x.com", "", res)

	if !vm.HasResults {
		t.Fatal("run result did not produce results view")
	}
	if len(vm.Rows) != 1 {
		t.Errorf("summary table has %d rows, want 1", len(vm.Rows))
	}
	if len(vm.Metrics) != 4 {
		t.Fatalf("got %d metrics, want 4", len(vm.Metrics))
	}
	// mock constants are High/Medium/Pass, so the ratios are all 1/1
	wantValues := []string{"1", "1/1", "1/1", "1/1"}
	for i, m := range vm.Metrics {
		if m.Value != wantValues[i] {
			t.Errorf("metric %q = %q, want %q", m.Label, m.Value, wantValues[i])
		}
	}
	if vm.Status != "Running demo analysis for 1 URL(s)…" {
		t.Errorf("status = %q", vm.Status)
	}
}

func TestBuildViewModelBars(t *testing.T) {
	res := runFor(t, "https://a.com\nhttps://b.com")
	vm := BuildViewModel("Demo", "", "", res)

	if len(vm.Bars) != 2 {
		t.Fatalf("got %d bar groups, want one per URL", len(vm.Bars))
	}
	for _, b := range vm.Bars {
		if !b.HasClarity || b.ClarityPct != 99 { // High → 3 → 99%
			t.Errorf("bar %q clarity = %d (has=%v), want 99", b.Label, b.ClarityPct, b.HasClarity)
		}
		if !b.HasEmpathy || b.EmpathyPct != 66 { // Medium → 2 → 66%
			t.Errorf("bar %q empathy = %d (has=%v), want 66", b.Label, b.EmpathyPct, b.HasEmpathy)
		}
	}
}

func TestBuildViewModelSelection(t *testing.T) {
	res := runFor(t, "https://a.com\nhttps://b.com")

	t.Run("defaults to first URL", func(t *testing.T) {
		vm := BuildViewModel("Demo", "", "", res)
		if vm.SelectedURL != "https://a.com" {
			t.Errorf("selected = %q, want first URL", vm.SelectedURL)
		}
		if vm.Detail == nil || vm.Detail.URL != "https://a.com" {
			t.Error("detail panel does not show the first record")
		}
	})

	t.Run("explicit selection", func(t *testing.T) {
		vm := BuildViewModel("Demo", "", "https://b.com", res)
		if vm.SelectedURL != "https://b.com" || vm.Detail.URL != "https://b.com" {
			t.Errorf("selected = %q detail = %v", vm.SelectedURL, vm.Detail)
		}
	})

	t.Run("unknown selection falls back to first", func(t *testing.T) {
		vm := BuildViewModel("Demo", "", "https://nope.com", res)
		if vm.SelectedURL != "https://a.com" {
			t.Errorf("selected = %q, want fallback to first URL", vm.SelectedURL)
		}
	})
}

func TestBuildViewModelDuplicateURLs(t *testing.T) {
	res := runFor(t, "https://x.com\nhttps://x.com")
	vm := BuildViewModel("Demo", "", "https://x.com", res)

	if len(vm.Rows) != 2 {
		t.Errorf("duplicates collapsed in the table: %d rows", len(vm.Rows))
	}
	if len(vm.URLs) != 1 {
		t.Errorf("selector lists %d entries, want distinct URLs once", len(vm.URLs))
	}
	if vm.Detail == nil || vm.Detail.URL != "https://x.com" {
		t.Error("detail lookup did not resolve to a record with the selected URL")
	}
	if vm.Detail != res.Records[0] {
		t.Error("duplicate URL did not resolve to the first matching record")
	}
}
