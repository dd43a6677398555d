package mock

import (
	"context"
	"testing"

	domain "github.com/bryanwahyu/clarity-analyzer/internal/domain/analysis"
)

func TestAnalyzeEchoesURL(t *testing.T) {
	a := New()
	for _, url := range []string{
		"https://example.com/page-1",
		"not-a-url",
		"  spaced  ", // collector trims, the analyzer does not second-guess
		"",
	} {
		rec, err := a.Analyze(context.Background(), url)
		if err != nil {
			t.Fatalf("Analyze(%q) returned error: %v", url, err)
		}
		if rec.URL != url {
			t.Errorf("Analyze(%q).URL = %q, want exact echo", url, rec.URL)
		}
	}
}

func TestAnalyzeConstantFields(t *testing.T) {
	a := New()
	rec, err := a.Analyze(context.Background(), "https://a.com")
	if err != nil {
		t.Fatal(err)
	}

	if rec.EmpathyScore != domain.ScoreMedium {
		t.Errorf("EmpathyScore = %q, want Medium", rec.EmpathyScore)
	}
	if rec.ClarityScore != domain.ScoreHigh {
		t.Errorf("ClarityScore = %q, want High", rec.ClarityScore)
	}
	if rec.WCAGStatus != "Pass (AA demo)" {
		t.Errorf("WCAGStatus = %q", rec.WCAGStatus)
	}
	if rec.VisualSchema != "Content-heavy layout" {
		t.Errorf("VisualSchema = %q", rec.VisualSchema)
	}
	for name, s := range map[string]string{
		"Summary":           rec.Summary,
		"RewriteSuggestion": rec.RewriteSuggestion,
		"LowLiteracyNote":   rec.LowLiteracyNote,
		"ToneSafetyNote":    rec.ToneSafetyNote,
		"HierarchyNote":     rec.HierarchyNote,
		"VisualStressNote":  rec.VisualStressNote,
	} {
		if s == "" {
			t.Errorf("%s is empty, want fixed demo text", name)
		}
	}
	if len(rec.Recommendations) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(rec.Recommendations))
	}
	if rec.Recommendations[0] != "Break long paragraphs into 2–3 shorter ones." {
		t.Errorf("recommendation order changed: %q first", rec.Recommendations[0])
	}

	// two calls, identical output apart from the URL
	other, _ := a.Analyze(context.Background(), "https://b.com")
	if other.Summary != rec.Summary || other.WCAGStatus != rec.WCAGStatus {
		t.Error("analyzer output varies with input beyond the URL field")
	}
}
