package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives a RateLimiter without real sleeping. Sleeps advance the
// clock by the requested duration unless a hook says otherwise.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) attach(l *RateLimiter) {
	l.now = func() time.Time { return c.now }
	l.sleep = func(_ context.Context, d time.Duration) error {
		c.slept = append(c.slept, d)
		c.now = c.now.Add(d)
		return nil
	}
}

func TestRateLimiter_UnderBudgetNeverSleeps(t *testing.T) {
	clock := newFakeClock()
	l := NewRateLimiter(50, time.Minute)
	clock.attach(l)

	for i := 0; i < 50; i++ {
		require.NoError(t, l.Wait(context.Background()))
		clock.now = clock.now.Add(100 * time.Millisecond)
	}

	assert.Empty(t, clock.slept)
}

func TestRateLimiter_51stRequestWaitsForOldestToExit(t *testing.T) {
	clock := newFakeClock()
	start := clock.now
	l := NewRateLimiter(50, time.Minute)
	clock.attach(l)

	// fill the window: sends at t0, t0+100ms, ..., t0+4.9s
	for i := 0; i < 50; i++ {
		require.NoError(t, l.Wait(context.Background()))
		clock.now = clock.now.Add(100 * time.Millisecond)
	}

	// the 51st caller arrives at t0+5s; the oldest send exits at t0+60s
	require.NoError(t, l.Wait(context.Background()))

	require.Len(t, clock.slept, 1)
	want := start.Add(time.Minute).Sub(start.Add(5*time.Second)) + safetyMargin
	assert.Equal(t, want, clock.slept[0])
}

func TestRateLimiter_RechecksBudgetAfterWaking(t *testing.T) {
	clock := newFakeClock()
	l := NewRateLimiter(1, time.Minute)
	l.now = func() time.Time { return clock.now }

	sleeps := 0
	l.sleep = func(_ context.Context, d time.Duration) error {
		sleeps++
		if sleeps == 1 {
			// simulate a concurrent caller consuming the budget the
			// instant it freed up: advance past the window, then refill
			clock.now = clock.now.Add(d)
			l.sent = []time.Time{clock.now}
			return nil
		}
		clock.now = clock.now.Add(d)
		return nil
	}

	require.NoError(t, l.Wait(context.Background())) // takes the only slot
	require.NoError(t, l.Wait(context.Background())) // must sleep twice

	assert.Equal(t, 2, sleeps)
}

func TestRateLimiter_ContextCancelledDuringSleep(t *testing.T) {
	clock := newFakeClock()
	l := NewRateLimiter(1, time.Minute)
	clock.attach(l)
	l.sleep = func(ctx context.Context, _ time.Duration) error { return context.Canceled }

	require.NoError(t, l.Wait(context.Background()))

	err := l.Wait(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSleepContext_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepContext(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSleepContext_NonPositiveDuration(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), 0))
}
