package analysis

import "context"

// Analyzer port. The shipped implementation is the demo mock; a real
// backend would fetch the page and score it server-side.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (*Record, error)
}

// ResultSink port (interface untuk logging hasil run). The real sink is
// a future append-only external store; failures must never fail a run.
type ResultSink interface {
	Append(ctx context.Context, runID string, records []*Record) error
}
