package mock

import (
	"io"

	"github.com/fwojciec/sitecrawl"
)

var _ sitecrawl.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of sitecrawl.Exporter.
type Exporter struct {
	ExportFn    func(w io.Writer, entries []sitecrawl.VisitedEntry) error
	ExtensionFn func() string
}

func (e *Exporter) Export(w io.Writer, entries []sitecrawl.VisitedEntry) error {
	return e.ExportFn(w, entries)
}

func (e *Exporter) Extension() string {
	return e.ExtensionFn()
}
