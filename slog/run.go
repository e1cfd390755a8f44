package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitecrawl"
)

// Ensure LoggingRunService implements sitecrawl.RunService.
var _ sitecrawl.RunService = (*LoggingRunService)(nil)

// LoggingRunService wraps a RunService with logging of writes.
// Reads are passed through silently.
type LoggingRunService struct {
	next   sitecrawl.RunService
	logger *slog.Logger
}

// NewLoggingRunService creates a new LoggingRunService.
func NewLoggingRunService(next sitecrawl.RunService, logger *slog.Logger) *LoggingRunService {
	return &LoggingRunService{next: next, logger: logger}
}

func (s *LoggingRunService) CreateRun(ctx context.Context, run *sitecrawl.Run) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create run",
			"id", run.ID,
			"url", run.BaseURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRun(ctx, run)
}

func (s *LoggingRunService) SaveEntries(ctx context.Context, runID string, entries []sitecrawl.VisitedEntry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save entries",
			"id", runID,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveEntries(ctx, runID, entries)
}

func (s *LoggingRunService) FindRunByID(ctx context.Context, id string) (*sitecrawl.Run, error) {
	return s.next.FindRunByID(ctx, id)
}

func (s *LoggingRunService) FindRuns(ctx context.Context, filter sitecrawl.RunFilter) ([]*sitecrawl.Run, error) {
	return s.next.FindRuns(ctx, filter)
}

func (s *LoggingRunService) FindEntries(ctx context.Context, runID string) ([]sitecrawl.VisitedEntry, error) {
	return s.next.FindEntries(ctx, runID)
}

func (s *LoggingRunService) DeleteRun(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete run",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRun(ctx, id)
}
