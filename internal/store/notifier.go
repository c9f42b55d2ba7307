package store

import "sync"

// notifier is the per-collection change-notification mechanism. Registered
// callbacks fire after every successful insert, update, or remove on the
// collection. Callbacks run synchronously on the mutating goroutine and must
// not block; they are invoked outside the notifier lock so a callback may
// subscribe or unsubscribe without deadlocking.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// Subscribe registers fn and returns a function that removes the
// registration. Unsubscribing twice is a no-op.
func (n *notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notifyAll invokes every registered callback.
func (n *notifier) notifyAll() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
