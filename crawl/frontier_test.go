package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/sitecrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_queued_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	assert.True(t, f.Push("https://example.com/a"), "first push should succeed")
	assert.False(t, f.Push("https://example.com/a"), "duplicate URL should be rejected")
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Pop_returns_URLs_in_push_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push("https://example.com/c")
	f.Push("https://example.com/a")
	f.Push("https://example.com/b")

	var got []string
	for {
		url, ok := f.Pop()
		if !ok {
			break
		}
		got = append(got, url)
	}

	assert.Equal(t, []string{
		"https://example.com/c",
		"https://example.com/a",
		"https://example.com/b",
	}, got)
}

func TestFrontier_Pop_on_empty(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	url, ok := f.Pop()
	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestFrontier_allows_push_after_pop(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()
	f.Push("https://example.com/a")
	f.Pop()

	assert.Equal(t, 0, f.Len())
	assert.True(t, f.Push("https://example.com/a"))
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				f.Push(fmt.Sprintf("https://example.com/%d/%d", n, j))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1000, f.Len())

	popped := make(map[string]bool)
	var mu sync.Mutex
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				url, ok := f.Pop()
				if !ok {
					return
				}
				mu.Lock()
				popped[url] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, popped, 1000)
	assert.Equal(t, 0, f.Len())
}
