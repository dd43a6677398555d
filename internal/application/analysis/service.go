package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/clarity-analyzer/internal/application"
	domain "github.com/bryanwahyu/clarity-analyzer/internal/domain/analysis"
)

// Service implements the run use-case: collect → analyze → aggregate.
// Safe for concurrent use as long as the Analyzer is.
type Service struct {
	Analyzer domain.Analyzer
	Sink     domain.ResultSink
	Clock    application.Clock
}

// RunCommand carries the raw textarea input, URLs one per line.
type RunCommand struct {
	Text string
}

type RunResult struct {
	RunID     string           `json:"run_id"`
	StartedAt time.Time        `json:"started_at"`
	Requested int              `json:"requested"`
	Records   []*domain.Record `json:"records"`
	Report    *domain.Report   `json:"report"`
}

// Run executes one full analysis pass over the pasted input. Every call
// starts from scratch; nothing carries over between runs.
func (s *Service) Run(ctx context.Context, cmd RunCommand) (*RunResult, error) {
	urls := domain.CollectURLs(cmd.Text)
	if len(urls) == 0 {
		return nil, domain.ErrNoURLs
	}

	now := s.Clock.Now()
	id := fmt.Sprintf("%s-%durls", uuid.New().String(), len(urls))

	records := make([]*domain.Record, 0, len(urls))
	for _, u := range urls {
		rec, err := s.Analyzer.Analyze(ctx, u)
		if err != nil {
			// only reachable with a real backend; the mock never fails
			return nil, fmt.Errorf("analyze %s: %w", u, err)
		}
		records = append(records, rec)
	}

	if s.Sink != nil {
		// fire-and-forget: sink failures never fail a run
		_ = s.Sink.Append(ctx, id, records)
	}

	return &RunResult{
		RunID:     id,
		StartedAt: now,
		Requested: len(urls),
		Records:   records,
		Report:    domain.BuildReport(records),
	}, nil
}
