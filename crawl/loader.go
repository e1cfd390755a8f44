package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sitecrawl"
)

var _ sitecrawl.PageFetcher = (*Loader)(nil)

// Loader implements sitecrawl.PageFetcher by fetching raw HTML and parsing it.
type Loader struct {
	Fetcher sitecrawl.Fetcher
	Parser  sitecrawl.Parser

	// RetryDelays are waited between fetch attempts.
	// Nil means a failed fetch is not retried.
	RetryDelays []time.Duration

	// Logf, if set, reports retries.
	Logf LogFunc
}

// FetchPage fetches the URL and parses the response.
// A document that cannot be parsed is reported as a failed fetch.
func (l *Loader) FetchPage(ctx context.Context, url string) (*sitecrawl.Page, error) {
	html, err := FetchWithRetry(ctx, url, l.Fetcher.Fetch, l.Logf, l.RetryDelays)
	if err != nil {
		return nil, err
	}

	page, err := l.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return page, nil
}
