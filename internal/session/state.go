package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/mindgym/internal/challenge"
)

// Step is the view state of a session.
type Step string

const (
	StepNameGate Step = "name_gate" // Waiting for the player's name
	StepMenu     Step = "menu"      // Choosing a challenge
	StepMath     Step = "math"      // Addition problem in progress
	StepLogic    Step = "logic"     // Riddle in progress
	StepMemory   Step = "memory"    // Sequence reveal or recall in progress
	StepResult   Step = "result"    // Showing the outcome of the last challenge
)

// IsChallenge reports whether a puzzle is in progress during this step.
func (s Step) IsChallenge() bool {
	return s == StepMath || s == StepLogic || s == StepMemory
}

// stepFor maps a challenge kind to its step.
func stepFor(kind challenge.Kind) (Step, bool) {
	switch kind {
	case challenge.KindMath:
		return StepMath, true
	case challenge.KindLogic:
		return StepLogic, true
	case challenge.KindMemory:
		return StepMemory, true
	}
	return "", false
}

// Entry records one solved challenge.
type Entry struct {
	Kind   challenge.Kind `json:"kind"`
	Points int            `json:"points"`
}

// State is everything that changes during one player's session.
// It is a value: transitions produce a new State and never modify the
// one they were given.
type State struct {
	// PlayerName is set once at the name gate.
	PlayerName string

	// NameEntered latches true when the name gate passes. Restart keeps it.
	NameEntered bool

	// Score is 10 points per entry in History.
	Score int

	// History lists solved challenges in order.
	History []Entry

	// Step is the current view state.
	Step Step

	// LastResult is the message for the result view; empty elsewhere.
	LastResult string

	// LastVerdict classifies LastResult; empty when LastResult is.
	LastVerdict challenge.Verdict

	// Warning is shown at the name gate after a blank submission.
	Warning string

	// Active is the puzzle in progress (nil outside challenge steps).
	Active *challenge.Puzzle
}

// NewState returns the state of a fresh session.
func NewState() State {
	return State{Step: StepNameGate}
}

// Validate checks the session invariants.
func (s State) Validate() error {
	var errs []error

	if s.Step.IsChallenge() {
		if s.Active == nil {
			errs = append(errs, fmt.Errorf("step %s without an active puzzle", s.Step))
		} else {
			if step, _ := stepFor(s.Active.Kind); step != s.Step {
				errs = append(errs, fmt.Errorf("step %s with %s puzzle", s.Step, s.Active.Kind))
			}
			if err := s.Active.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	} else if s.Active != nil {
		errs = append(errs, fmt.Errorf("step %s with an active puzzle", s.Step))
	}

	if s.LastResult != "" && s.Step != StepResult {
		errs = append(errs, fmt.Errorf("result message outside result step (%s)", s.Step))
	}

	if want := challenge.PointsPerCorrect * len(s.History); s.Score != want {
		errs = append(errs, fmt.Errorf("score %d does not match %d history entries", s.Score, len(s.History)))
	}
	for i, e := range s.History {
		if e.Points != challenge.PointsPerCorrect {
			errs = append(errs, fmt.Errorf("history entry %d worth %d points", i, e.Points))
		}
	}

	if s.Step != StepNameGate && !s.NameEntered {
		errs = append(errs, fmt.Errorf("step %s before the name gate passed", s.Step))
	}
	if s.Warning != "" && s.Step != StepNameGate {
		errs = append(errs, fmt.Errorf("name warning outside name gate"))
	}

	return errors.Join(errs...)
}
