// Package slog provides log/slog decorators for sitecrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitecrawl"
)

// Compile-time interface verification.
var (
	_ sitecrawl.Fetcher     = (*LoggingFetcher)(nil)
	_ sitecrawl.PageFetcher = (*LoggingPageFetcher)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   sitecrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next sitecrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingPageFetcher wraps a PageFetcher with logging.
type LoggingPageFetcher struct {
	next   sitecrawl.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next sitecrawl.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the page found.
func (f *LoggingPageFetcher) FetchPage(ctx context.Context, url string) (page *sitecrawl.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if page != nil {
			attrs = append(attrs, "title", page.Title, "links", len(page.Links))
		}
		attrs = append(attrs, "err", err)
		f.logger.Info("page", attrs...)
	}(time.Now())
	return f.next.FetchPage(ctx, url)
}
