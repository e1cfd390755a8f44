// Package sqlite provides SQLite-based storage for crawl history.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is the crawl history database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the file at path. ":memory:" keeps history in memory.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas are applied on Open before the schema is created.
func (db *DB) pragmas() []string {
	p := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != ":memory:" {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	// Deleting a run relies on the entries cascade.
	return append(p, "PRAGMA foreign_keys = ON")
}

// Open connects to the database and creates the history tables if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open history db %s: %w", db.path, err)
	}
	// One writer at a time; a single connection also keeps ":memory:" shared.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("connect to history db %s: %w", db.path, err)
	}
	for _, pragma := range db.pragmas() {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	db.db = conn
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("create history schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// createSchema creates the runs and entries tables.
// entries.url_hash indexes page lookups across runs.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			base_url TEXT NOT NULL,
			pages INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS entries (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			url_hash TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (run_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_runs_base_url ON runs(base_url);
		CREATE INDEX IF NOT EXISTS idx_entries_url_hash ON entries(url_hash);
	`

	_, err := db.db.Exec(schema)
	return err
}
