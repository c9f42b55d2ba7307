package query

import (
	"context"
	"sync"
	"time"

	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/internal/store"
)

// Watcher maintains a live derived view over the local mirror. It computes
// its result set on Start and recomputes after every mutation of the source
// collections, so readers always see rows consistent with the mirror without
// polling it.
type Watcher struct {
	storages *store.Storages
	logger   *logger.Logger

	// now is swapped out in tests.
	now     func() time.Time
	compute func(ctx context.Context, storages *store.Storages, now time.Time) ([]SubjectProgress, error)

	// updates gets a non-blocking signal after every recomputation; a slow
	// reader coalesces signals instead of backing the writer up.
	updates chan struct{}

	mu      sync.Mutex
	ctx     context.Context
	results []SubjectProgress
	unsubs  []func()
}

// NewAllSubjectsWatcher builds a watcher over every mirrored assignment
// joined to its subject.
func NewAllSubjectsWatcher(storages *store.Storages, log *logger.Logger) *Watcher {
	return newWatcher(storages, log, allSubjectsWithProgress)
}

// NewLearnedSubjectsWatcher builds a watcher over the subjects the user has
// started learning, ordered soonest-reviewable first.
func NewLearnedSubjectsWatcher(storages *store.Storages, log *logger.Logger) *Watcher {
	return newWatcher(storages, log, learnedSubjectsWithProgress)
}

func newWatcher(
	storages *store.Storages,
	log *logger.Logger,
	compute func(ctx context.Context, storages *store.Storages, now time.Time) ([]SubjectProgress, error),
) *Watcher {
	return &Watcher{
		storages: storages,
		logger:   log,
		now:      time.Now,
		compute:  compute,
		updates:  make(chan struct{}, 1),
	}
}

// Start computes the initial result set and subscribes to the source
// collections. Calling Start on a started watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if len(w.unsubs) > 0 {
		w.mu.Unlock()
		return nil
	}
	w.ctx = ctx
	w.mu.Unlock()

	if err := w.refresh(ctx); err != nil {
		return err
	}

	unsubSubjects := w.storages.Subjects.Subscribe(w.onChange)
	unsubAssignments := w.storages.Assignments.Subscribe(w.onChange)

	w.mu.Lock()
	w.unsubs = []func(){unsubSubjects, unsubAssignments}
	w.mu.Unlock()
	return nil
}

// Stop unsubscribes from the source collections. The last computed results
// stay readable.
func (w *Watcher) Stop() {
	w.mu.Lock()
	unsubs := w.unsubs
	w.unsubs = nil
	w.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}

// Results returns a copy of the current result set.
func (w *Watcher) Results() []SubjectProgress {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]SubjectProgress, len(w.results))
	copy(out, w.results)
	return out
}

// Updates exposes the recomputation signal channel. It never closes; a
// stopped watcher simply goes quiet.
func (w *Watcher) Updates() <-chan struct{} {
	return w.updates
}

func (w *Watcher) onChange() {
	w.mu.Lock()
	ctx := w.ctx
	w.mu.Unlock()

	if err := w.refresh(ctx); err != nil {
		w.logger.Err(err).Str("func", "Watcher.onChange").Msg("failed to recompute derived view")
	}
}

func (w *Watcher) refresh(ctx context.Context) error {
	rows, err := w.compute(ctx, w.storages, w.now())
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.results = rows
	w.mu.Unlock()

	select {
	case w.updates <- struct{}{}:
	default:
	}
	return nil
}
