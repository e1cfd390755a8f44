package sitecrawl

import "context"

// NoTitle is recorded for pages whose title is missing or blank.
const NoTitle = "No Title"

// VisitedEntry is a successfully crawled page.
// Entries are immutable once recorded and are kept in crawl order.
type VisitedEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Page is the parsed form of a fetched HTML document.
type Page struct {
	// Title is the text of the document's <title> element, trimmed.
	// Empty when the document has no title.
	Title string

	// Links holds the raw href values of the document's anchors in
	// document order. Values may be relative; callers resolve them.
	Links []string
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body as HTML.
	// Transport failures, timeouts and non-success statuses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Parser extracts the title and anchor targets from HTML.
type Parser interface {
	Parse(html string) (*Page, error)
}

// PageFetcher fetches and parses a page in one step.
// It is the only collaborator the crawl engine calls per URL.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (*Page, error)
}
