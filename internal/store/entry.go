package store

import (
	"sync"
	"time"

	"github.com/abhisek/mindgym/internal/session"
)

// watchBuffer is the number of snapshots a slow watcher may fall behind
// before the oldest pending one is discarded.
const watchBuffer = 4

// Entry is one live session. Actions on an entry are serialised.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	ctrl       *session.Controller
	now        func() time.Time
	lastActive time.Time
	watchers   map[chan session.Snapshot]struct{}
	closed     bool
}

// Do applies an action to the session. Successful actions are fanned out
// to every watcher.
func (e *Entry) Do(a session.Action) (session.Snapshot, error) {
	return e.DoFrom(nil, a)
}

// DoFrom is Do for an action that arrived through the watcher origin. The
// caller answers origin itself, so the fan-out skips it.
func (e *Entry) DoFrom(origin <-chan session.Snapshot, a session.Action) (session.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastActive = e.now()
	snap, err := e.ctrl.Do(a)
	if err != nil {
		return snap, err
	}

	for ch := range e.watchers {
		if ch == origin {
			continue
		}
		deliver(ch, snap)
	}
	return snap, nil
}

// deliver sends snap without blocking. A full channel loses its oldest
// snapshot so that the newest one always lands. Sends only happen under
// the entry lock, so the retry cannot race another sender.
func deliver(ch chan session.Snapshot, snap session.Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

// Snapshot returns the current view of the session.
func (e *Entry) Snapshot() session.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lastActive = e.now()
	return e.ctrl.Snapshot()
}

// LastActive returns when the session was last touched.
func (e *Entry) LastActive() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastActive
}

// Watch subscribes to snapshots produced by Do, so several tabs on the
// same session stay in step. The channel is closed when cancel is called
// or the session is removed.
func (e *Entry) Watch() (<-chan session.Snapshot, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan session.Snapshot, watchBuffer)
	if e.closed {
		close(ch)
		return ch, func() {}
	}
	e.watchers[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if _, ok := e.watchers[ch]; ok {
				delete(e.watchers, ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

func (e *Entry) closeWatchers() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	for ch := range e.watchers {
		close(ch)
		delete(e.watchers, ch)
	}
}
