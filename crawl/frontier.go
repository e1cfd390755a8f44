package crawl

import (
	"container/list"
	"sync"
)

// Frontier is an in-memory FIFO URL queue that rejects URLs already queued.
// A URL may be pushed again once it has been popped.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu     sync.Mutex
	queue  *list.List
	queued map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		queue:  list.New(),
		queued: make(map[string]struct{}),
	}
}

// Push appends a URL to the back of the queue.
// Returns false if the URL is already queued.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.queued[url]; ok {
		return false
	}
	f.queued[url] = struct{}{}
	f.queue.PushBack(url)
	return true
}

// Pop removes and returns the earliest pushed URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	front := f.queue.Front()
	if front == nil {
		return "", false
	}
	url, _ := f.queue.Remove(front).(string)
	delete(f.queued, url)
	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}
