package analysis

import "strings"

// scoreOrdinal maps the categorical scores onto the 1..3 chart scale.
// Unknown values map to nil, never an error.
func scoreOrdinal(s Score) *int {
	var v int
	switch s {
	case ScoreLow:
		v = 1
	case ScoreMedium:
		v = 2
	case ScoreHigh:
		v = 3
	default:
		return nil
	}
	return &v
}

// BuildReport folds a run's records into the summary table, the four
// counts and the chart points, preserving input order.
func BuildReport(records []*Record) *Report {
	rep := &Report{
		Rows:   make([]SummaryRow, 0, len(records)),
		Points: make([]ScorePoint, 0, len(records)),
	}
	for _, rec := range records {
		rep.Rows = append(rep.Rows, SummaryRow{
			URL:          rec.URL,
			Empathy:      rec.EmpathyScore,
			Clarity:      rec.ClarityScore,
			WCAG:         rec.WCAGStatus,
			VisualSchema: rec.VisualSchema,
		})
		rep.Points = append(rep.Points, ScorePoint{
			URL:     rec.URL,
			Clarity: scoreOrdinal(rec.ClarityScore),
			Empathy: scoreOrdinal(rec.EmpathyScore),
		})

		rep.Counts.Total++
		if rec.ClarityScore == ScoreHigh {
			rep.Counts.HighClarity++
		}
		if rec.EmpathyScore == ScoreMedium || rec.EmpathyScore == ScoreHigh {
			rep.Counts.GoodEmpathy++
		}
		// case-sensitive on purpose: "pass" is not a pass
		if strings.Contains(rec.WCAGStatus, "Pass") {
			rep.Counts.WCAGPass++
		}
	}
	return rep
}

// FirstMatch returns the first record whose URL equals url, or nil.
// Duplicate input URLs produce duplicate records; lookups always resolve
// to the earliest one.
func FirstMatch(records []*Record, url string) *Record {
	for _, rec := range records {
		if rec.URL == url {
			return rec
		}
	}
	return nil
}

// DistinctURLs returns the URLs of a run deduplicated, first occurrence
// order. Used for the deep-dive selector.
func DistinctURLs(records []*Record) []string {
	seen := make(map[string]bool, len(records))
	var urls []string
	for _, rec := range records {
		if seen[rec.URL] {
			continue
		}
		seen[rec.URL] = true
		urls = append(urls, rec.URL)
	}
	return urls
}
