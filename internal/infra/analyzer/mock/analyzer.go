package mock

import (
	"context"

	domain "github.com/bryanwahyu/clarity-analyzer/internal/domain/analysis"
)

// Analyzer is the demo implementation of the analysis.Analyzer port so
// the UI works without a backend. It is pure and total: the same record
// comes back for every URL, only the URL field echoes the input.
type Analyzer struct{}

func New() *Analyzer { return &Analyzer{} }

func (a *Analyzer) Analyze(_ context.Context, url string) (*domain.Record, error) {
	return &domain.Record{
		URL: url,

		// core analysis
		EmpathyScore: domain.ScoreMedium,
		ClarityScore: domain.ScoreHigh,
		WCAGStatus:   "Pass (AA demo)",
		VisualSchema: "Content-heavy layout",
		Summary: "Demo summary: content is generally clear but could be simplified " +
			"for low-literacy readers.",
		RewriteSuggestion: "Shorten long sentences, reduce jargon, and add headings and " +
			"bullet points for key actions.",

		// healthcare-inspired UX checks (non-clinical)
		LowLiteracyNote: "Contains a few long sentences; consider simpler language and " +
			"shorter paragraphs.",
		ToneSafetyNote: "Tone is mostly calm and neutral. Avoid phrases that sound " +
			"alarming or judgmental.",
		HierarchyNote: "Main message appears, but headings and bullets could be used " +
			"more consistently.",
		VisualStressNote: "Text blocks are a bit dense. Adding spacing and subheadings " +
			"would reduce visual fatigue.",

		Recommendations: []string{
			"Break long paragraphs into 2–3 shorter ones.",
			"Use headings for key sections like ‘What this means’ and ‘What to do next’.",
			"Replace medical jargon with patient-friendly words where possible.",
		},
	}, nil
}
