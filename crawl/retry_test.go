package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/sitecrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelays(t *testing.T) {
	t.Parallel()

	assert.Nil(t, crawl.BackoffDelays(0))
	assert.Nil(t, crawl.BackoffDelays(-1))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.BackoffDelays(3))
}

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("single attempt without delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("boom")
		}

		_, err := crawl.FetchWithRetry(context.Background(), "https://example.com/", fetch, nil, nil)

		require.EqualError(t, err, "boom")
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after retry", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("temporary")
			}
			return "<html></html>", nil
		}
		var logged []string
		logf := func(format string, _ ...any) {
			logged = append(logged, format)
		}

		html, err := crawl.FetchWithRetry(context.Background(), "https://example.com/", fetch, logf, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
	})

	t.Run("returns last error when attempts are exhausted", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", errors.New("still failing")
		}

		_, err := crawl.FetchWithRetry(context.Background(), "https://example.com/", fetch, nil, []time.Duration{0, 0})

		require.EqualError(t, err, "still failing")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", errors.New("fail")
		}

		_, err := crawl.FetchWithRetry(ctx, "https://example.com/", fetch, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
