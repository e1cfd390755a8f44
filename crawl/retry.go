package crawl

import (
	"context"
	"time"
)

// FetchFunc fetches the raw HTML at a URL.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives printf-style diagnostics.
type LogFunc func(format string, args ...any)

// BackoffDelays returns n retry delays doubling from one second: 1s, 2s, 4s, ...
// It returns nil for n <= 0.
func BackoffDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}

// FetchWithRetry makes one attempt, then one more after each of delays,
// stopping at the first success. The error of the last attempt is returned
// when all fail. logf, if non-nil, is told about every retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logf LogFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	for i, d := range delays {
		if err == nil {
			break
		}
		if logf != nil {
			logf("retry %s (attempt %d of %d) after %s: %v", url, i+2, len(delays)+1, d, err)
		}
		if werr := wait(ctx, d); werr != nil {
			return "", werr
		}
		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
