// Package excelize exports crawl results as XLSX workbooks using
// github.com/xuri/excelize/v2.
package excelize

import (
	"fmt"
	"io"

	"github.com/fwojciec/sitecrawl"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet results are written to.
const SheetName = "Sheet1"

// Header is the first row of every exported sheet.
var Header = []any{"Increment Number", "URL", "Page Title"}

// Ensure Exporter implements sitecrawl.Exporter at compile time.
var _ sitecrawl.Exporter = (*Exporter)(nil)

// Exporter writes results as a single-sheet workbook with a header row
// followed by one row per entry. The index column is numeric.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension returns ".xlsx".
func (e *Exporter) Extension() string {
	return ".xlsx"
}

// Export writes entries to w as an XLSX workbook.
func (e *Exporter) Export(w io.Writer, entries []sitecrawl.VisitedEntry) error {
	if len(entries) == 0 {
		return sitecrawl.ErrNoResults()
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []any{i + 1, entry.URL, entry.Title}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
