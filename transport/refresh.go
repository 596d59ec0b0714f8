package transport

import (
	"context"
	"sync"
)

// Refresher mints a new access token from the held refresh token. It is
// expected to have already ended the session (logout) when it returns an
// error, so the pipeline never retries after a failed refresh.
type Refresher interface {
	RefreshToken(ctx context.Context) (string, error)
}

type refreshResult struct {
	token string
	err   error
}

// Coordinator serializes token refreshes: at most one network refresh is
// in flight system-wide. The first caller to find it idle performs the
// refresh; callers arriving while one is in flight park on a channel and
// share its outcome, each resumed exactly once. The idle check and the
// transition to refreshing happen under one mutex hold, so two callers
// can never both become the leader.
type Coordinator struct {
	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Refresh returns the freshly issued access token, or the refresh
// failure shared by every caller of the settled flight.
func (c *Coordinator) Refresh(ctx context.Context, refresher Refresher) (string, error) {
	c.mu.Lock()
	if c.refreshing {
		// Buffered so the leader's broadcast never blocks on a waiter
		// that gave up.
		ch := make(chan refreshResult, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()

		refreshWaiters.Inc()
		defer refreshWaiters.Dec()

		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	tokenRefreshes.Inc()
	token, err := refresher.RefreshToken(ctx)
	if err != nil {
		refreshFailures.Inc()
	}

	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.refreshing = false
	c.mu.Unlock()

	res := refreshResult{token: token, err: err}
	for _, ch := range waiters {
		ch <- res
	}
	return token, err
}
