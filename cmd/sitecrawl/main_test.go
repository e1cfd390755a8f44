package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/sitecrawl/cmd/sitecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, strings.NewReader(""), stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "crawl")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Crawl a website")
	})

	t.Run("crawl, list, export and delete against a database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "sitecrawl.db")
		m.PageFetcher = sitePages()
		out := filepath.Join(dir, "site")

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(),
			[]string{"crawl", "http://example.test/", "--delay=0s", "--output", out},
			strings.NewReader(""), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 2 pages")

		runID := ""
		for _, line := range strings.Split(stdout.String(), "\n") {
			if id, ok := strings.CutPrefix(line, "Run ID: "); ok {
				runID = id
			}
		}
		require.NotEmpty(t, runID)

		// Each Run opens its own connection.
		m = main.NewMain()
		m.DBPath = filepath.Join(dir, "sitecrawl.db")
		stdout.Reset()
		err = m.Run(context.Background(), []string{"runs"}, strings.NewReader(""), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), runID+"  http://example.test/  2 pages")

		m = main.NewMain()
		m.DBPath = filepath.Join(dir, "sitecrawl.db")
		stdout.Reset()
		err = m.Run(context.Background(),
			[]string{"export", runID, "--format=excel", "--output", filepath.Join(dir, "again")},
			strings.NewReader(""), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "again.xlsx"))

		m = main.NewMain()
		m.DBPath = filepath.Join(dir, "sitecrawl.db")
		stdout.Reset()
		err = m.Run(context.Background(), []string{"delete", runID, "--force"}, strings.NewReader(""), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Deleted run "+runID)
	})

	t.Run("crawl with --no-save does not open the database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "missing", "nested", "sitecrawl.db")
		m.PageFetcher = sitePages()

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(),
			[]string{"crawl", "http://example.test/", "--delay=0s", "--no-save", "--output", filepath.Join(dir, "site")},
			strings.NewReader(""), stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.NotContains(t, stdout.String(), "Run ID")
		_, err = os.Stat(m.DBPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.PageFetcher = sitePages()

		err := m.Run(context.Background(),
			[]string{"crawl", "http://example.test/", "--format=pdf", "--no-save"},
			strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})
}
