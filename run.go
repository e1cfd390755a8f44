package sitecrawl

import (
	"context"
	"time"
)

// Run is a finished crawl recorded in history.
type Run struct {
	ID         string    `json:"id"`
	BaseURL    string    `json:"baseUrl"`
	Pages      int       `json:"pages"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.BaseURL == "" {
		return Errorf(EINVALID, "run base URL required")
	}
	return nil
}

// RunService represents a service for managing crawl history.
type RunService interface {
	// CreateRun records a new run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// SaveEntries stores the run's results in crawl order and marks the run finished.
	// Returns ENOTFOUND if run does not exist.
	SaveEntries(ctx context.Context, runID string, entries []VisitedEntry) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindEntries retrieves the results of a run in crawl order.
	// Returns ENOTFOUND if run does not exist.
	FindEntries(ctx context.Context, runID string) ([]VisitedEntry, error)

	// DeleteRun permanently removes a run and its results.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID      *string `json:"id"`
	BaseURL *string `json:"baseUrl"`

	// URL matches runs whose results include this page.
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
