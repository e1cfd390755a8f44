// Package fs provides file-based output for crawl results.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitecrawl"
)

// FileName returns name with the exporter's extension appended,
// unless name already ends with it.
func FileName(name string, exporter sitecrawl.Exporter) string {
	ext := exporter.Extension()
	if strings.EqualFold(filepath.Ext(name), ext) {
		return name
	}
	return name + ext
}

// ResultFile writes exported results with atomic update semantics.
// The export goes to <path>.tmp and is renamed over <path> only once it is
// complete, so an interrupted export never leaves a truncated file behind.
type ResultFile struct {
	path     string
	exporter sitecrawl.Exporter
}

// NewResultFile creates a ResultFile writing to path in the exporter's format.
func NewResultFile(path string, exporter sitecrawl.Exporter) *ResultFile {
	return &ResultFile{
		path:     path,
		exporter: exporter,
	}
}

// Path returns the final location of the file.
func (f *ResultFile) Path() string {
	return f.path
}

func (f *ResultFile) tempPath() string {
	return f.path + ".tmp"
}

// Save exports entries and moves the result into place.
// An empty list returns ENOTFOUND without creating any file.
func (f *ResultFile) Save(entries []sitecrawl.VisitedEntry) (err error) {
	if len(entries) == 0 {
		return sitecrawl.ErrNoResults()
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp, err := os.Create(f.tempPath())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Abort()
		}
	}()

	if err := f.exporter.Export(tmp, entries); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(f.tempPath(), f.path)
}

// Abort removes a leftover temporary file.
func (f *ResultFile) Abort() error {
	if err := os.Remove(f.tempPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
