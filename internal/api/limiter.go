package api

import (
	"context"
	"sync"
	"time"
)

// safetyMargin is added on top of the computed wait so a request never lands
// exactly on the window boundary.
const safetyMargin = 500 * time.Millisecond

// RateLimiter enforces a sliding-window request budget: at most limit
// requests inside any window-sized interval of real time. The window of sent
// timestamps is shared by every caller of the owning client, retries
// included, so budget accounting stays global across endpoints and
// goroutines.
type RateLimiter struct {
	limit  int
	window time.Duration

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu   sync.Mutex
	sent []time.Time
}

// NewRateLimiter returns a limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// Wait blocks until the caller may send a request, then records the send in
// the window. When the window is full it sleeps until the oldest timestamp
// exits the window plus a safety margin, and re-checks after waking: another
// goroutine may have consumed the freed budget while this one slept.
func (l *RateLimiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := l.now()
		l.prune(now)

		if len(l.sent) < l.limit {
			l.sent = append(l.sent, now)
			l.mu.Unlock()
			return nil
		}

		wait := l.sent[0].Add(l.window).Sub(now) + safetyMargin
		l.mu.Unlock()

		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// prune drops timestamps that have exited the window. Callers must hold mu.
func (l *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.sent) && !l.sent[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.sent = append(l.sent[:0], l.sent[i:]...)
	}
}

// sleepContext sleeps for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
