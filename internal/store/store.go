// Package store keeps the live game sessions of the browser renderer in
// memory. Nothing is persisted; a session lives until it is deleted or sits
// idle longer than the configured timeout.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/session"
)

// Options configures a Store.
type Options struct {
	// IdleTimeout is how long a session may go untouched before it is
	// reaped. Zero or negative disables reaping.
	IdleTimeout time.Duration

	// NewGenerator returns the puzzle source for a new session. Defaults to
	// a randomly seeded generator over the built-in riddle bank.
	NewGenerator func() challenge.Generator

	// Now defaults to time.Now.
	Now func() time.Time

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Store is a concurrency-safe registry of sessions keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Entry
	opts     Options
}

// New creates an empty store.
func New(opts Options) *Store {
	if opts.NewGenerator == nil {
		opts.NewGenerator = func() challenge.Generator {
			return challenge.NewRandomGenerator(nil, nil)
		}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		sessions: make(map[string]*Entry),
		opts:     opts,
	}
}

// Create registers a fresh session under a new random id.
func (s *Store) Create() *Entry {
	now := s.opts.Now()
	e := &Entry{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		ctrl:       session.NewController(s.opts.NewGenerator()),
		now:        s.opts.Now,
		lastActive: now,
		watchers:   make(map[chan session.Snapshot]struct{}),
	}

	s.mu.Lock()
	s.sessions[e.ID] = e
	s.mu.Unlock()

	s.opts.Logger.Debug("session created", "session", e.ID)
	return e
}

// Get returns the session for id. Sessions past their idle timeout are
// treated as missing and dropped.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(e, s.opts.Now()) {
		s.removeLocked(id, e)
		return nil, false
	}
	return e, true
}

// GetOrCreate returns the session for id, or a new session with a new id
// when id is malformed or unknown. created reports which happened.
func (s *Store) GetOrCreate(id string) (e *Entry, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if e, ok := s.Get(id); ok {
			return e, false
		}
	}
	return s.Create(), true
}

// Delete removes the session for id and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if ok {
		s.removeLocked(id, e)
	}
	return ok
}

// Len returns the number of registered sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Reap drops every session idle for longer than the idle timeout at now
// and returns how many were dropped.
func (s *Store) Reap(now time.Time) int {
	if s.opts.IdleTimeout <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.sessions {
		if s.expired(e, now) {
			s.removeLocked(id, e)
			n++
		}
	}
	if n > 0 {
		s.opts.Logger.Info("reaped idle sessions", "count", n, "remaining", len(s.sessions))
	}
	return n
}

// Run reaps idle sessions every half idle timeout until ctx is done.
func (s *Store) Run(ctx context.Context) {
	if s.opts.IdleTimeout <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.opts.IdleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Reap(s.opts.Now())
		}
	}
}

func (s *Store) expired(e *Entry, now time.Time) bool {
	if s.opts.IdleTimeout <= 0 {
		return false
	}
	return now.Sub(e.LastActive()) > s.opts.IdleTimeout
}

func (s *Store) removeLocked(id string, e *Entry) {
	delete(s.sessions, id)
	e.closeWatchers()
	s.opts.Logger.Debug("session removed", "session", id)
}
