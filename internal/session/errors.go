package session

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned for action names the controller does not know.
	ErrUnknownAction = errors.New("unknown action")

	// ErrActionNotAllowed is returned for a known action sent during a step
	// that does not accept it.
	ErrActionNotAllowed = errors.New("action not allowed")

	// ErrUnknownChallenge is returned when selectChallenge names no challenge.
	ErrUnknownChallenge = errors.New("unknown challenge")
)

// ActionError describes an action the controller rejected. The session
// state is unchanged when one is returned.
type ActionError struct {
	Action ActionKind
	Step   Step
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s during %s: %v", e.Action, e.Step, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

func reject(s State, a Action, err error) (State, error) {
	return s, &ActionError{Action: a.Kind, Step: s.Step, Err: err}
}
