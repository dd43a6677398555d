package analysis

// Score enum untuk clarity / empathy
type Score string

const (
	ScoreLow    Score = "Low"
	ScoreMedium Score = "Medium"
	ScoreHigh   Score = "High"
)

// Record is the result of analyzing one URL. Every field except URL
// carries the same demo value across a run while the analyzer is mocked.
type Record struct {
	URL               string   `json:"url"`
	EmpathyScore      Score    `json:"empathy_score"`
	ClarityScore      Score    `json:"clarity_score"`
	WCAGStatus        string   `json:"wcag_status"`
	VisualSchema      string   `json:"visual_schema"`
	Summary           string   `json:"summary"`
	RewriteSuggestion string   `json:"rewrite_suggestion"`
	LowLiteracyNote   string   `json:"low_literacy_note"`
	ToneSafetyNote    string   `json:"tone_safety_note"`
	HierarchyNote     string   `json:"hierarchy_note"`
	VisualStressNote  string   `json:"visual_stress_note"`
	Recommendations   []string `json:"recommendations"`
}

// SummaryRow projection untuk tabel overview
type SummaryRow struct {
	URL          string `json:"url"`
	Empathy      Score  `json:"empathy"`
	Clarity      Score  `json:"clarity"`
	WCAG         string `json:"wcag"`
	VisualSchema string `json:"visual_schema"`
}

// SummaryCounts value object
type SummaryCounts struct {
	Total       int `json:"total"`
	HighClarity int `json:"high_clarity"`
	GoodEmpathy int `json:"good_empathy"`
	WCAGPass    int `json:"wcag_pass"`
}

// ScorePoint is the per-URL chart projection. Clarity and Empathy are
// the ordinal values 1..3; nil means the score was outside the known set.
type ScorePoint struct {
	URL     string `json:"url"`
	Clarity *int   `json:"clarity,omitempty"`
	Empathy *int   `json:"empathy,omitempty"`
}

// Report aggregates one run: table rows, counts and chart points,
// all in input order.
type Report struct {
	Rows   []SummaryRow  `json:"rows"`
	Counts SummaryCounts `json:"counts"`
	Points []ScorePoint  `json:"points"`
}
