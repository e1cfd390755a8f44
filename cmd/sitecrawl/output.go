package main

import (
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/sitecrawl"
	"github.com/fwojciec/sitecrawl/delimited"
	"github.com/fwojciec/sitecrawl/excelize"
	"github.com/fwojciec/sitecrawl/fs"
)

// Exporter returns the exporter selected by the flags.
func (f *OutputFlags) Exporter() (sitecrawl.Exporter, error) {
	switch f.Format {
	case "excel":
		return excelize.NewExporter(), nil
	case "text", "":
		delim, err := delimited.ParseDelimiter(f.Delimiter)
		if err != nil {
			return nil, err
		}
		return delimited.NewExporter(delim)
	}
	return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "unsupported format %q: use text or excel", f.Format)
}

// ResultFile returns the file to write to, named after the crawled host
// unless an output name was given.
func (f *OutputFlags) ResultFile(baseURL string, exporter sitecrawl.Exporter) *fs.ResultFile {
	name := f.Output
	if name == "" {
		name = defaultOutputName(baseURL)
	}
	return fs.NewResultFile(fs.FileName(name, exporter), exporter)
}

// defaultOutputName derives a file name from a URL's host.
func defaultOutputName(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "results"
	}
	return strings.ReplaceAll(u.Host, ":", "_")
}

// syncWriter serializes writes from the crawl loop and the control reader.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
