package session

import "github.com/abhisek/mindgym/internal/challenge"

// Controller owns the state of one session. It is not safe for concurrent
// use; callers serialise actions per session.
type Controller struct {
	state State
	gen   challenge.Generator
}

// NewController creates a controller for a fresh session.
func NewController(gen challenge.Generator) *Controller {
	return &Controller{state: NewState(), gen: gen}
}

// Do applies an action and returns the snapshot to render next.
// On error the state is unchanged and the current snapshot is returned.
func (c *Controller) Do(a Action) (Snapshot, error) {
	next, err := Reduce(c.state, a, c.gen)
	if err != nil {
		return BuildSnapshot(c.state), err
	}
	c.state = next

	snap := BuildSnapshot(c.state)
	if a.Kind == ActionViewStats {
		snap.Stats = BuildStats(c.state)
	}
	return snap, nil
}

// Snapshot returns the current view projection.
func (c *Controller) Snapshot() Snapshot {
	return BuildSnapshot(c.state)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	s.History = append([]Entry(nil), c.state.History...)
	return s
}
