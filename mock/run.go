package mock

import (
	"context"

	"github.com/fwojciec/sitecrawl"
)

var _ sitecrawl.RunService = (*RunService)(nil)

// RunService is a mock implementation of sitecrawl.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *sitecrawl.Run) error
	SaveEntriesFn func(ctx context.Context, runID string, entries []sitecrawl.VisitedEntry) error
	FindRunByIDFn func(ctx context.Context, id string) (*sitecrawl.Run, error)
	FindRunsFn    func(ctx context.Context, filter sitecrawl.RunFilter) ([]*sitecrawl.Run, error)
	FindEntriesFn func(ctx context.Context, runID string) ([]sitecrawl.VisitedEntry, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *sitecrawl.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) SaveEntries(ctx context.Context, runID string, entries []sitecrawl.VisitedEntry) error {
	return s.SaveEntriesFn(ctx, runID, entries)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*sitecrawl.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter sitecrawl.RunFilter) ([]*sitecrawl.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindEntries(ctx context.Context, runID string) ([]sitecrawl.VisitedEntry, error) {
	return s.FindEntriesFn(ctx, runID)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
