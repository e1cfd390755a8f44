// Package crawl provides the single-site crawl engine.
// It owns the frontier, the visited set and the run/pause/stop lifecycle,
// and drives a sequential fetch, parse and enqueue loop over one host.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitecrawl"
)

// Engine crawls one website breadth-first from a base URL.
//
// Configure the exported fields before calling Start. The crawl loop runs on
// its own goroutine; Pause, Resume, Stop, Results and State may be called
// from any goroutine. Progress and Status are invoked on the loop goroutine
// and never while the engine lock is held.
//
// The zero value is ready to use once PageFetcher is set.
// An Engine runs at most one crawl.
type Engine struct {
	PageFetcher sitecrawl.PageFetcher

	// RateLimiter, if set, is waited on before every fetch in addition
	// to the fixed delay between requests.
	RateLimiter sitecrawl.DomainLimiter

	Progress sitecrawl.ProgressFunc
	Status   sitecrawl.StatusFunc

	once     sync.Once
	mu       sync.Mutex
	resumed  *sync.Cond
	state    sitecrawl.State
	scope    Scope
	frontier *Frontier
	visited  *VisitedSet

	stop chan struct{} // closed on entering StateStopped
	done chan struct{} // closed when the loop has exited
}

// NewEngine returns an idle Engine that fetches pages with fetcher.
func NewEngine(fetcher sitecrawl.PageFetcher) *Engine {
	return &Engine{PageFetcher: fetcher}
}

func (e *Engine) init() {
	e.once.Do(func() {
		e.stop = make(chan struct{})
		e.done = make(chan struct{})
		e.resumed = sync.NewCond(&e.mu)
	})
}

// Start validates baseURL, seeds the frontier with it and begins crawling
// in the background. It does not wait for any fetch.
//
// delay is slept after every fetch attempt, successful or not.
// Cancelling ctx stops the crawl and aborts the fetch in flight.
func (e *Engine) Start(ctx context.Context, baseURL string, delay time.Duration) error {
	e.init()
	if e.PageFetcher == nil {
		return sitecrawl.Errorf(sitecrawl.EINVALID, "page fetcher required")
	}
	if delay < 0 {
		return sitecrawl.Errorf(sitecrawl.EINVALID, "delay must not be negative: %s", delay)
	}
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if e.state != sitecrawl.StateIdle {
		e.mu.Unlock()
		return sitecrawl.Errorf(sitecrawl.ECONFLICT, "crawl already %s", e.state)
	}
	e.scope = NewScope(base)
	e.frontier = NewFrontier()
	e.visited = NewVisitedSet(visitedExpectedURLs)
	e.frontier.Push(base.String())
	e.state = sitecrawl.StateRunning
	e.mu.Unlock()

	go e.run(ctx, delay)
	return nil
}

// Pause suspends the crawl before its next fetch.
// It has no effect unless the crawl is running.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == sitecrawl.StateRunning {
		e.state = sitecrawl.StatePaused
	}
}

// Resume continues a paused crawl.
// It has no effect unless the crawl is paused.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == sitecrawl.StatePaused {
		e.state = sitecrawl.StateRunning
		e.resumed.Broadcast()
	}
}

// Stop ends the crawl and blocks until the loop has exited, so Results
// is final once Stop returns. A fetch in flight is allowed to complete
// and its page is recorded. Stopping twice, or stopping an engine that
// was never started, is safe.
func (e *Engine) Stop() {
	e.halt()
	<-e.done
}

// Wait blocks until the crawl has finished, either because the frontier
// ran dry or because it was stopped.
func (e *Engine) Wait() {
	e.init()
	<-e.done
}

// Done returns a channel that is closed when the crawl has finished.
func (e *Engine) Done() <-chan struct{} {
	e.init()
	return e.done
}

// State returns the current lifecycle state.
func (e *Engine) State() sitecrawl.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// BaseDomain returns the host the crawl is limited to.
// It is empty before Start.
func (e *Engine) BaseDomain() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scope.Host()
}

// Pending returns the number of URLs waiting in the frontier.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.frontier == nil {
		return 0
	}
	return e.frontier.Len()
}

// Results returns the crawled pages in crawl order.
// The returned slice is a copy and safe to keep.
func (e *Engine) Results() []sitecrawl.VisitedEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.visited == nil {
		return nil
	}
	return e.visited.Entries()
}

// halt moves the engine to StateStopped without waiting for the loop.
func (e *Engine) halt() {
	e.init()
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == sitecrawl.StateStopped {
		return
	}
	idle := e.state == sitecrawl.StateIdle
	e.state = sitecrawl.StateStopped
	close(e.stop)
	e.resumed.Broadcast()

	// No loop will ever run to close done.
	if idle {
		close(e.done)
	}
}

// run is the crawl loop.
func (e *Engine) run(ctx context.Context, delay time.Duration) {
	defer close(e.done)

	unwatch := context.AfterFunc(ctx, e.halt)
	defer unwatch()

	// waitCtx interrupts rate limiter waits on Stop without
	// affecting the fetch in flight.
	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-e.stop:
			cancel()
		case <-waitCtx.Done():
		}
	}()

	for {
		rawURL, ok := e.next(ctx)
		if !ok {
			break
		}
		e.visit(ctx, waitCtx, rawURL)
		if !e.sleep(ctx, delay) {
			break
		}
	}

	e.halt()

	e.mu.Lock()
	count := e.visited.Len()
	e.mu.Unlock()
	e.status(fmt.Sprintf("Finished: %d pages crawled", count))
}

// next blocks while paused and returns the next unvisited URL.
// The bool result is false when the crawl is stopped, ctx is done
// or the frontier is empty.
func (e *Engine) next(ctx context.Context) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for {
		for e.state == sitecrawl.StatePaused && ctx.Err() == nil {
			e.resumed.Wait()
		}
		if e.state == sitecrawl.StateStopped || ctx.Err() != nil {
			return "", false
		}

		rawURL, ok := e.frontier.Pop()
		if !ok {
			return "", false
		}
		if e.visited.Contains(rawURL) {
			continue
		}
		return rawURL, true
	}
}

// visit fetches one page, records it and enqueues its in-scope links.
// Fetch failures are reported through Status and otherwise ignored.
func (e *Engine) visit(ctx, waitCtx context.Context, rawURL string) {
	if e.RateLimiter != nil {
		if err := e.RateLimiter.Wait(waitCtx, e.scope.Host()); err != nil {
			return
		}
	}

	page, err := e.PageFetcher.FetchPage(ctx, rawURL)
	if err != nil {
		e.status(fmt.Sprintf("Error fetching %s: %v", rawURL, err))
		return
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		e.status(fmt.Sprintf("Error fetching %s: %v", rawURL, err))
		return
	}

	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = sitecrawl.NoTitle
	}

	e.mu.Lock()
	e.visited.Add(sitecrawl.VisitedEntry{URL: rawURL, Title: title})
	count := e.visited.Len()
	for _, href := range page.Links {
		link, ok := e.scope.Resolve(pageURL, href)
		if !ok || e.visited.Contains(link) {
			continue
		}
		e.frontier.Push(link)
	}
	e.mu.Unlock()

	e.progress(count)
	e.status("Crawling: " + rawURL)
}

// sleep waits for d and reports whether the crawl should continue.
func (e *Engine) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		select {
		case <-e.stop:
			return false
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-e.stop:
		return false
	case <-ctx.Done():
		return false
	}
}

func (e *Engine) progress(count int) {
	if e.Progress != nil {
		e.Progress(count)
	}
}

func (e *Engine) status(message string) {
	if e.Status != nil {
		e.Status(message)
	}
}
