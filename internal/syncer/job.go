package syncer

import (
	"context"
	"sync"
	"time"
)

// Job re-runs the engine's Sync on a ticker so the mirror keeps tracking the
// remote while the process stays up. The job is idle until Start is called.
type Job struct {
	engine *Engine

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob creates a background sync job over engine.
func NewJob(engine *Engine) *Job {
	return &Job{engine: engine}
}

// Start stops any previously running job, runs one sync immediately, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to 15 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *Job) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		_ = j.engine.Sync(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.engine.Sync(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *Job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
