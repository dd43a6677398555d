package analysis

import (
	"reflect"
	"testing"
)

func demoRecord(url string) *Record {
	return &Record{
		URL:          url,
		EmpathyScore: ScoreMedium,
		ClarityScore: ScoreHigh,
		WCAGStatus:   "Pass (AA demo)",
		VisualSchema: "Content-heavy layout",
	}
}

func TestBuildReportCounts(t *testing.T) {
	testCases := []struct {
		name    string
		records []*Record
		want    SummaryCounts
	}{
		{
			name:    "single demo record scores across the board",
			records: []*Record{demoRecord("https://x.com")},
			want:    SummaryCounts{Total: 1, HighClarity: 1, GoodEmpathy: 1, WCAGPass: 1},
		},
		{
			name: "mixed scores",
			records: []*Record{
				{URL: "a", ClarityScore: ScoreHigh, EmpathyScore: ScoreLow, WCAGStatus: "Pass"},
				{URL: "b", ClarityScore: ScoreLow, EmpathyScore: ScoreHigh, WCAGStatus: "Fail"},
				{URL: "c", ClarityScore: ScoreMedium, EmpathyScore: ScoreMedium, WCAGStatus: "Partial Pass"},
			},
			want: SummaryCounts{Total: 3, HighClarity: 1, GoodEmpathy: 2, WCAGPass: 2},
		},
		{
			name: "wcag substring match is case-sensitive",
			records: []*Record{
				{URL: "a", WCAGStatus: "pass"},
				{URL: "b", WCAGStatus: "PASS"},
			},
			want: SummaryCounts{Total: 2},
		},
		{
			name:    "no records",
			records: nil,
			want:    SummaryCounts{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildReport(tc.records).Counts
			if got != tc.want {
				t.Errorf("Counts = %+v, want %+v", got, tc.want)
			}
			if got.HighClarity < 0 || got.HighClarity > got.Total ||
				got.GoodEmpathy < 0 || got.GoodEmpathy > got.Total ||
				got.WCAGPass < 0 || got.WCAGPass > got.Total {
				t.Errorf("count out of [0, total] range: %+v", got)
			}
		})
	}
}

func TestBuildReportRowsPreserveOrder(t *testing.T) {
	records := []*Record{demoRecord("https://b.com"), demoRecord("https://a.com"), demoRecord("https://b.com")}
	rep := BuildReport(records)

	if len(rep.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rep.Rows))
	}
	wantOrder := []string{"https://b.com", "https://a.com", "https://b.com"}
	for i, row := range rep.Rows {
		if row.URL != wantOrder[i] {
			t.Errorf("row %d URL = %q, want %q", i, row.URL, wantOrder[i])
		}
	}
	if rep.Rows[0].Clarity != ScoreHigh || rep.Rows[0].Empathy != ScoreMedium {
		t.Errorf("row projection lost scores: %+v", rep.Rows[0])
	}
	if rep.Rows[0].WCAG != "Pass (AA demo)" || rep.Rows[0].VisualSchema != "Content-heavy layout" {
		t.Errorf("row projection lost status fields: %+v", rep.Rows[0])
	}
}

func TestBuildReportChartPoints(t *testing.T) {
	records := []*Record{
		{URL: "a", ClarityScore: ScoreHigh, EmpathyScore: ScoreLow},
		{URL: "b", ClarityScore: ScoreMedium, EmpathyScore: ScoreMedium},
		{URL: "c", ClarityScore: "Unknown", EmpathyScore: ""},
	}
	rep := BuildReport(records)

	if len(rep.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(rep.Points))
	}
	if v := rep.Points[0].Clarity; v == nil || *v != 3 {
		t.Errorf("point a clarity = %v, want 3", v)
	}
	if v := rep.Points[0].Empathy; v == nil || *v != 1 {
		t.Errorf("point a empathy = %v, want 1", v)
	}
	if v := rep.Points[1].Clarity; v == nil || *v != 2 {
		t.Errorf("point b clarity = %v, want 2", v)
	}
	// scores outside the Low/Medium/High set must project to missing,
	// not panic or error
	if rep.Points[2].Clarity != nil || rep.Points[2].Empathy != nil {
		t.Errorf("unknown scores should be nil, got %+v", rep.Points[2])
	}
}

func TestFirstMatch(t *testing.T) {
	first := demoRecord("https://x.com")
	first.Summary = "first"
	second := demoRecord("https://x.com")
	second.Summary = "second"
	records := []*Record{first, demoRecord("https://y.com"), second}

	got := FirstMatch(records, "https://x.com")
	if got == nil {
		t.Fatal("FirstMatch returned nil for existing URL")
	}
	if got.Summary != "first" {
		t.Errorf("duplicate URL resolved to %q, want first occurrence", got.Summary)
	}
	if got.URL != "https://x.com" {
		t.Errorf("resolved record URL = %q, want the selected string", got.URL)
	}

	if miss := FirstMatch(records, "https://nope.com"); miss != nil {
		t.Errorf("FirstMatch for absent URL = %+v, want nil", miss)
	}
}

func TestDistinctURLs(t *testing.T) {
	records := []*Record{
		demoRecord("https://x.com"),
		demoRecord("https://y.com"),
		demoRecord("https://x.com"),
	}
	got := DistinctURLs(records)
	want := []string{"https://x.com", "https://y.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctURLs = %v, want %v", got, want)
	}
}
