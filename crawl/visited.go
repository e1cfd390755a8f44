package crawl

import (
	"github.com/fwojciec/sitecrawl"
	"github.com/fwojciec/sitecrawl/bloom"
)

// Visited set sizing for the Bloom pre-check.
const (
	// visitedExpectedURLs is the expected number of pages for Bloom filter sizing.
	visitedExpectedURLs = 10000
	// visitedFalsePositiveRate is the acceptable rate of pre-check misses that fall through to the index.
	visitedFalsePositiveRate = 0.01
)

// VisitedSet is the ordered log of crawled pages plus an exact lookup index.
// A Bloom filter answers most negative lookups before the index is consulted;
// membership is always confirmed by the index, so false positives never
// hide a URL.
//
// VisitedSet is not safe for concurrent use; the Engine guards it.
type VisitedSet struct {
	filter  *bloom.Filter
	index   map[string]struct{}
	entries []sitecrawl.VisitedEntry
}

// NewVisitedSet creates an empty VisitedSet sized for n expected URLs.
func NewVisitedSet(n uint) *VisitedSet {
	return &VisitedSet{
		filter: bloom.NewFilter(n, visitedFalsePositiveRate),
		index:  make(map[string]struct{}, n),
	}
}

// Contains reports whether the URL has been recorded.
func (v *VisitedSet) Contains(url string) bool {
	if !v.filter.MayContain(url) {
		return false
	}
	_, ok := v.index[url]
	return ok
}

// Add appends an entry to the log.
// Returns false, leaving the set unchanged, if the URL is already recorded.
func (v *VisitedSet) Add(entry sitecrawl.VisitedEntry) bool {
	if v.Contains(entry.URL) {
		return false
	}
	v.filter.Add(entry.URL)
	v.index[entry.URL] = struct{}{}
	v.entries = append(v.entries, entry)
	return true
}

// Len returns the number of recorded pages.
func (v *VisitedSet) Len() int {
	return len(v.entries)
}

// Entries returns a copy of the log in crawl order.
func (v *VisitedSet) Entries() []sitecrawl.VisitedEntry {
	entries := make([]sitecrawl.VisitedEntry, len(v.entries))
	copy(entries, v.entries)
	return entries
}
