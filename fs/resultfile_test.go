package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitecrawl"
	"github.com/fwojciec/sitecrawl/delimited"
	"github.com/fwojciec/sitecrawl/fs"
	"github.com/fwojciec/sitecrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Result Files
// Results are exported to a temp file and renamed into place when complete

func TestResultFile_SaveWritesFinalFile(t *testing.T) {
	t.Parallel()

	// Given a result file using the comma exporter
	base := t.TempDir()
	exporter, err := delimited.NewExporter(delimited.Comma)
	require.NoError(t, err)
	path := filepath.Join(base, "results.txt")
	file := fs.NewResultFile(path, exporter)

	// When I save results
	err = file.Save([]sitecrawl.VisitedEntry{{URL: "http://example.test/", Title: "Home"}})

	// Then the final file holds the export
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"1\",\"http://example.test/\",\"Home\"\n", string(content))

	// And no temp file is left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed")
}

func TestResultFile_SaveReplacesExistingFile(t *testing.T) {
	t.Parallel()

	// Given an existing results file
	base := t.TempDir()
	path := filepath.Join(base, "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	exporter, err := delimited.NewExporter(delimited.Semicolon)
	require.NoError(t, err)

	// When I save new results over it
	err = fs.NewResultFile(path, exporter).Save([]sitecrawl.VisitedEntry{{URL: "http://example.test/", Title: "New"}})

	// Then the file is replaced
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"1\";\"http://example.test/\";\"New\"\n", string(content))
}

func TestResultFile_FailedExportKeepsExistingFile(t *testing.T) {
	t.Parallel()

	// Given an existing results file and an exporter that fails midway
	base := t.TempDir()
	path := filepath.Join(base, "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	exporter := &mock.Exporter{
		ExportFn: func(w io.Writer, _ []sitecrawl.VisitedEntry) error {
			_, _ = w.Write([]byte("partial"))
			return errors.New("export failed")
		},
	}

	// When I save
	err := fs.NewResultFile(path, exporter).Save([]sitecrawl.VisitedEntry{{URL: "http://example.test/"}})

	// Then the error is returned
	require.EqualError(t, err, "export failed")

	// And the existing file is untouched
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	// And the temp file is cleaned up
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be removed after failure")
}

func TestResultFile_EmptyResultsCreateNoFile(t *testing.T) {
	t.Parallel()

	// Given no results
	base := t.TempDir()
	path := filepath.Join(base, "results.txt")
	exporter, err := delimited.NewExporter(delimited.Comma)
	require.NoError(t, err)

	// When I save
	err = fs.NewResultFile(path, exporter).Save(nil)

	// Then nothing is found to export
	assert.Equal(t, sitecrawl.ENOTFOUND, sitecrawl.ErrorCode(err))

	// And no file is created
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestResultFile_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	path := filepath.Join(base, "out", "nested", "results.txt")
	exporter, err := delimited.NewExporter(delimited.Comma)
	require.NoError(t, err)
	file := fs.NewResultFile(path, exporter)

	require.NoError(t, file.Save([]sitecrawl.VisitedEntry{{URL: "http://example.test/", Title: "Home"}}))

	assert.FileExists(t, file.Path())
}

func TestResultFile_AbortWithoutTempFile(t *testing.T) {
	t.Parallel()

	exporter, err := delimited.NewExporter(delimited.Comma)
	require.NoError(t, err)

	assert.NoError(t, fs.NewResultFile(filepath.Join(t.TempDir(), "x.txt"), exporter).Abort())
}

func TestFileName(t *testing.T) {
	t.Parallel()

	exporter := &mock.Exporter{ExtensionFn: func() string { return ".txt" }}

	tests := []struct {
		name string
		want string
	}{
		{"results", "results.txt"},
		{"results.txt", "results.txt"},
		{"results.TXT", "results.TXT"},
		{"results.csv", "results.csv.txt"},
		{filepath.Join("out", "site"), filepath.Join("out", "site.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.FileName(tt.name, exporter))
		})
	}
}
