// Package bloom provides a probabilistic pre-check for visited URLs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers "definitely not seen" in constant time.
// A positive answer only means the URL may have been seen and must be
// confirmed against an exact index.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// MayContain returns false if the URL was never added.
// False positives are possible; false negatives are not.
func (f *Filter) MayContain(url string) bool {
	return f.f.TestString(url)
}
