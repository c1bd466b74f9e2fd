package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/session"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, idle time.Duration) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := New(Options{
		IdleTimeout: idle,
		Now:         clock.Now,
	})
	return s, clock
}

func TestCreateAndGet(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	e := s.Create()
	if e.ID == "" {
		t.Fatal("expected non-empty session id")
	}
	if got := s.Len(); got != 1 {
		t.Fatalf("Len = %d, want 1", got)
	}

	got, ok := s.Get(e.ID)
	if !ok || got != e {
		t.Fatalf("Get(%q) = %v, %v; want the created entry", e.ID, got, ok)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("Get on unknown id should fail")
	}
}

func TestGetOrCreate(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()

	got, created := s.GetOrCreate(e.ID)
	if created || got != e {
		t.Errorf("GetOrCreate(existing) created=%v, want existing entry", created)
	}

	for _, id := range []string{"", "not-a-uuid", "0b6a3b0e-5a4e-4c52-9a38-0f3a3c1b7e11"} {
		fresh, created := s.GetOrCreate(id)
		if !created {
			t.Errorf("GetOrCreate(%q) should create a session", id)
		}
		if fresh.ID == id {
			t.Errorf("GetOrCreate(%q) reused a client-supplied id", id)
		}
	}
	if got := s.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	a, b := s.Create(), s.Create()

	if _, err := a.Do(session.SubmitName("Ada")); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := a.Snapshot().Step; got != session.StepMenu {
		t.Errorf("a.Step = %s, want menu", got)
	}
	if got := b.Snapshot().Step; got != session.StepNameGate {
		t.Errorf("b.Step = %s, want name_gate", got)
	}
}

func TestDoRejectsDisallowedAction(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()

	snap, err := e.Do(session.BackToMenu())
	if !errors.Is(err, session.ErrActionNotAllowed) {
		t.Fatalf("err = %v, want ErrActionNotAllowed", err)
	}
	if snap.Step != session.StepNameGate {
		t.Errorf("Step = %s, want name_gate", snap.Step)
	}
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()

	if !s.Delete(e.ID) {
		t.Fatal("Delete should report existing session")
	}
	if s.Delete(e.ID) {
		t.Error("second Delete should report missing session")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestReap(t *testing.T) {
	s, clock := newTestStore(t, 10*time.Minute)
	idle := s.Create()
	busy := s.Create()

	clock.Advance(6 * time.Minute)
	if _, err := busy.Do(session.SubmitName("Ada")); err != nil {
		t.Fatalf("Do: %v", err)
	}

	clock.Advance(5 * time.Minute)
	if n := s.Reap(clock.Now()); n != 1 {
		t.Fatalf("Reap = %d, want 1", n)
	}
	if _, ok := s.Get(idle.ID); ok {
		t.Error("idle session should be reaped")
	}
	if _, ok := s.Get(busy.ID); !ok {
		t.Error("active session should survive")
	}
}

func TestGetDropsExpired(t *testing.T) {
	s, clock := newTestStore(t, time.Minute)
	e := s.Create()

	clock.Advance(2 * time.Minute)
	if _, ok := s.Get(e.ID); ok {
		t.Fatal("expired session should not be returned")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestReapDisabled(t *testing.T) {
	s, clock := newTestStore(t, 0)
	s.Create()

	clock.Advance(24 * time.Hour)
	if n := s.Reap(clock.Now()); n != 0 {
		t.Errorf("Reap = %d, want 0 with reaping disabled", n)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New(Options{IdleTimeout: 20 * time.Millisecond})
	s.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for s.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("Run did not reap the idle session")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatch(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()

	ch, cancel := e.Watch()
	if _, err := e.Do(session.SubmitName("Ada")); err != nil {
		t.Fatalf("Do: %v", err)
	}

	select {
	case snap := <-ch:
		if snap.PlayerName != "Ada" {
			t.Errorf("PlayerName = %q, want Ada", snap.PlayerName)
		}
	default:
		t.Fatal("watcher did not receive snapshot")
	}

	// Rejected actions are not broadcast.
	_, _ = e.Do(session.SubmitMathAnswer("1"))
	select {
	case snap := <-ch:
		t.Errorf("unexpected snapshot %+v", snap)
	default:
	}

	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}
}

func TestWatchKeepsLatest(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()
	ch, cancel := e.Watch()
	defer cancel()

	actions := []session.Action{session.SubmitName("Ada")}
	for i := 0; i < 10; i++ {
		actions = append(actions, session.SelectChallenge(challenge.KindMath), session.BackToMenu())
	}
	actions = append(actions, session.SelectChallenge(challenge.KindMemory))
	for _, a := range actions {
		if _, err := e.Do(a); err != nil {
			t.Fatalf("Do(%s): %v", a.Kind, err)
		}
	}

	var last session.Snapshot
	n := 0
	for drained := false; !drained; {
		select {
		case snap := <-ch:
			last = snap
			n++
		default:
			drained = true
		}
	}
	if n != watchBuffer {
		t.Errorf("received %d snapshots, want %d", n, watchBuffer)
	}
	if last.Step != session.StepMemory {
		t.Errorf("last snapshot step = %s, want %s", last.Step, session.StepMemory)
	}
}

func TestDoFromSkipsOrigin(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()
	own, cancelOwn := e.Watch()
	defer cancelOwn()
	other, cancelOther := e.Watch()
	defer cancelOther()

	snap, err := e.DoFrom(own, session.SubmitName("Ada"))
	if err != nil {
		t.Fatalf("DoFrom: %v", err)
	}
	if snap.Step != session.StepMenu {
		t.Fatalf("step = %s, want %s", snap.Step, session.StepMenu)
	}

	select {
	case got := <-own:
		t.Errorf("origin should not receive its own snapshot, got %+v", got)
	default:
	}
	select {
	case got := <-other:
		if got.PlayerName != "Ada" {
			t.Errorf("PlayerName = %q, want Ada", got.PlayerName)
		}
	default:
		t.Error("other watcher did not receive snapshot")
	}
}

func TestWatchClosedOnDelete(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	e := s.Create()
	ch, cancel := e.Watch()
	defer cancel()

	s.Delete(e.ID)
	if _, ok := <-ch; ok {
		t.Error("channel should be closed when the session is removed")
	}
}

func TestCustomGenerator(t *testing.T) {
	bank, err := challenge.NewBank([]challenge.Riddle{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	})
	if err != nil {
		t.Fatalf("NewBank: %v", err)
	}

	s := New(Options{NewGenerator: func() challenge.Generator {
		return challenge.NewRandomGenerator(bank, nil)
	}})
	e := s.Create()
	if _, err := e.Do(session.SubmitName("Ada")); err != nil {
		t.Fatal(err)
	}
	snap, err := e.Do(session.SelectChallenge(challenge.KindLogic))
	if err != nil {
		t.Fatal(err)
	}
	if snap.Challenge == nil || len(snap.Challenge.Prompt) == 0 {
		t.Fatal("expected a riddle prompt")
	}
}
