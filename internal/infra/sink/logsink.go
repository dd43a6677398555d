package sink

import (
	"context"
	"log"

	domain "github.com/bryanwahyu/clarity-analyzer/internal/domain/analysis"
)

// LogSink is the stand-in for the future append-only results store
// (the real deployment would log runs to an external sheet via the
// workflow engine). It only writes to the process log.
type LogSink struct{}

func New() *LogSink { return &LogSink{} }

func (s *LogSink) Append(_ context.Context, runID string, records []*domain.Record) error {
	for _, rec := range records {
		log.Printf("run=%s url=%s clarity=%s empathy=%s wcag=%q",
			runID, rec.URL, rec.ClarityScore, rec.EmpathyScore, rec.WCAGStatus)
	}
	return nil
}
