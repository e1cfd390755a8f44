package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitecrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitecrawl.RunService = (*RunService)(nil)

// RunService implements sitecrawl.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashURL computes the xxHash of a URL as a fixed-width hex string.
func hashURL(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

// CreateRun records a new run with a generated ID.
// StartedAt defaults to now.
func (s *RunService) CreateRun(ctx context.Context, run *sitecrawl.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC().Truncate(time.Second)
	}
	run.Pages = 0
	run.FinishedAt = time.Time{}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, base_url, pages, started_at, finished_at)
		VALUES (?, ?, 0, ?, '')
	`, run.ID, run.BaseURL, run.StartedAt.UTC().Format(time.RFC3339))

	return err
}

// SaveEntries replaces the run's entries with the given ones and marks it finished.
func (s *RunService) SaveEntries(ctx context.Context, runID string, entries []sitecrawl.VisitedEntry) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	result, err := tx.ExecContext(ctx, `
		UPDATE runs SET pages = ?, finished_at = ? WHERE id = ?
	`, len(entries), time.Now().UTC().Format(time.RFC3339), runID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sitecrawl.Errorf(sitecrawl.ENOTFOUND, "run not found")
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries WHERE run_id = ?", runID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (run_id, position, url, url_hash, title)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, entry := range entries {
		if _, err := stmt.ExecContext(ctx, runID, i, entry.URL, hashURL(entry.URL), entry.Title); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*sitecrawl.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, base_url, pages, started_at, finished_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sitecrawl.Errorf(sitecrawl.ENOTFOUND, "run not found")
	}
	return run, err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter sitecrawl.RunFilter) ([]*sitecrawl.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, base_url, pages, started_at, finished_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BaseURL != nil {
		query.WriteString(" AND base_url = ?")
		args = append(args, *filter.BaseURL)
	}
	if filter.URL != nil {
		// url_hash is indexed; url guards against hash collisions.
		query.WriteString(" AND id IN (SELECT run_id FROM entries WHERE url_hash = ? AND url = ?)")
		args = append(args, hashURL(*filter.URL), *filter.URL)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	// SQLite only accepts OFFSET after LIMIT; a negative limit means no limit.
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*sitecrawl.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// FindEntries retrieves the results of a run in crawl order.
func (s *RunService) FindEntries(ctx context.Context, runID string) ([]sitecrawl.VisitedEntry, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title FROM entries WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []sitecrawl.VisitedEntry
	for rows.Next() {
		var entry sitecrawl.VisitedEntry
		if err := rows.Scan(&entry.URL, &entry.Title); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteRun permanently removes a run and its entries.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitecrawl.Errorf(sitecrawl.ENOTFOUND, "run not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*sitecrawl.Run, error) {
	var run sitecrawl.Run
	var startedAt, finishedAt string

	if err := sc.Scan(&run.ID, &run.BaseURL, &run.Pages, &startedAt, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	if run.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, fmt.Errorf("run %s: bad started_at: %w", run.ID, err)
	}
	if finishedAt != "" {
		if run.FinishedAt, err = time.Parse(time.RFC3339, finishedAt); err != nil {
			return nil, fmt.Errorf("run %s: bad finished_at: %w", run.ID, err)
		}
	}

	return &run, nil
}
