package mock

import (
	"context"

	"github.com/fwojciec/sitecrawl"
)

// Compile-time interface verification.
var (
	_ sitecrawl.Parser        = (*Parser)(nil)
	_ sitecrawl.PageFetcher   = (*PageFetcher)(nil)
	_ sitecrawl.DomainLimiter = (*DomainLimiter)(nil)
)

// Parser is a mock implementation of sitecrawl.Parser.
type Parser struct {
	ParseFn func(html string) (*sitecrawl.Page, error)
}

func (p *Parser) Parse(html string) (*sitecrawl.Page, error) {
	return p.ParseFn(html)
}

// PageFetcher is a mock implementation of sitecrawl.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (*sitecrawl.Page, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (*sitecrawl.Page, error) {
	return f.FetchPageFn(ctx, url)
}

// DomainLimiter is a mock implementation of sitecrawl.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
