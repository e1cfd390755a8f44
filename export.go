package sitecrawl

import "io"

// Exporter writes crawl results in a file format.
type Exporter interface {
	// Export writes entries to w in the order given.
	// Returns ENOTFOUND without writing anything when entries is empty.
	Export(w io.Writer, entries []VisitedEntry) error

	// Extension returns the file extension for the format, including the dot.
	Extension() string
}

// ErrNoResults returns the error reported when there is nothing to export.
func ErrNoResults() error {
	return Errorf(ENOTFOUND, "no results to export")
}
