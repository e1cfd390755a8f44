// Package delimited exports crawl results as quoted, delimiter-separated text.
package delimited

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/sitecrawl"
)

// Supported field delimiters.
const (
	Comma     = ','
	Semicolon = ';'
)

// Ensure Exporter implements sitecrawl.Exporter at compile time.
var _ sitecrawl.Exporter = (*Exporter)(nil)

// Exporter writes one line per entry:
//
//	"1","https://example.com/","Home"
//
// Every field is quoted and embedded quotes are doubled.
type Exporter struct {
	delim rune
}

// NewExporter returns an Exporter separating fields with delim,
// which must be Comma or Semicolon.
func NewExporter(delim rune) (*Exporter, error) {
	if delim != Comma && delim != Semicolon {
		return nil, sitecrawl.Errorf(sitecrawl.EINVALID, "unsupported delimiter %q: use comma or semicolon", delim)
	}
	return &Exporter{delim: delim}, nil
}

// ParseDelimiter maps a delimiter name ("comma" or "semicolon") or the
// character itself to a delimiter.
func ParseDelimiter(name string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "comma", ",":
		return Comma, nil
	case "semicolon", ";":
		return Semicolon, nil
	}
	return 0, sitecrawl.Errorf(sitecrawl.EINVALID, "unsupported delimiter %q: use comma or semicolon", name)
}

// Extension returns ".txt".
func (e *Exporter) Extension() string {
	return ".txt"
}

// Export writes entries to w in order, numbering them from 1.
func (e *Exporter) Export(w io.Writer, entries []sitecrawl.VisitedEntry) error {
	if len(entries) == 0 {
		return sitecrawl.ErrNoResults()
	}

	bw := bufio.NewWriter(w)
	for i, entry := range entries {
		e.writeField(bw, strconv.Itoa(i+1))
		bw.WriteRune(e.delim)
		e.writeField(bw, entry.URL)
		bw.WriteRune(e.delim)
		e.writeField(bw, entry.Title)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeField writes s as a quoted field. Write errors surface on Flush.
func (e *Exporter) writeField(bw *bufio.Writer, s string) {
	bw.WriteByte('"')
	bw.WriteString(strings.ReplaceAll(s, `"`, `""`))
	bw.WriteByte('"')
}
