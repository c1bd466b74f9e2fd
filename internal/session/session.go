package session

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindgym/internal/challenge"
)

// NameWarning is shown when the name gate receives a blank name.
const NameWarning = "Please enter your name to continue."

// Reduce applies one action to s and returns the next state. It never
// modifies s. Puzzles are created through gen when a challenge starts.
//
// Rejected actions return s unchanged together with an *ActionError.
func Reduce(s State, a Action, gen challenge.Generator) (State, error) {
	if !a.Kind.Known() {
		return reject(s, a, ErrUnknownAction)
	}

	// Restart is offered on every screen once the player has a name.
	if a.Kind == ActionRestart {
		if !s.NameEntered {
			return reject(s, a, ErrActionNotAllowed)
		}
		return reset(s), nil
	}

	switch s.Step {
	case StepNameGate:
		if a.Kind == ActionSubmitName {
			return submitName(s, a.Value), nil
		}

	case StepMenu:
		switch a.Kind {
		case ActionSelectChallenge:
			return selectChallenge(s, a, gen)
		case ActionViewStats:
			return s, nil
		}

	case StepMath, StepLogic, StepMemory:
		switch a.Kind {
		case ActionBackToMenu:
			// Leaving mid-challenge discards the puzzle.
			next := s
			next.Active = nil
			next.Step = StepMenu
			return next, nil

		case ActionRevealDone:
			if s.Step == StepMemory && !s.Active.AwaitingAnswer() {
				next := s
				next.Active = s.Active.WithSequenceHidden()
				return next, nil
			}

		case ActionSubmitMathAnswer, ActionSubmitLogicAnswer, ActionSubmitMemoryAnswer:
			kind, _ := submitKind(a.Kind)
			if kind == s.Active.Kind && s.Active.AwaitingAnswer() {
				return resolve(s, s.Active.Check(a.Value)), nil
			}
		}

	case StepResult:
		if a.Kind == ActionBackToMenu {
			next := s
			next.LastResult = ""
			next.LastVerdict = ""
			next.Step = StepMenu
			return next, nil
		}
	}

	return reject(s, a, ErrActionNotAllowed)
}

func submitName(s State, text string) State {
	next := s
	name := strings.TrimSpace(text)
	if name == "" {
		next.Warning = NameWarning
		return next
	}
	next.PlayerName = name
	next.NameEntered = true
	next.Warning = ""
	next.Step = StepMenu
	return next
}

func selectChallenge(s State, a Action, gen challenge.Generator) (State, error) {
	step, ok := stepFor(a.Challenge)
	if !ok {
		return reject(s, a, fmt.Errorf("%w %q", ErrUnknownChallenge, a.Challenge))
	}

	puzzle, err := gen.New(a.Challenge, s.Score)
	if err != nil {
		return s, fmt.Errorf("generate %s puzzle: %w", a.Challenge, err)
	}

	next := s
	next.LastResult = ""
	next.LastVerdict = ""
	next.Active = puzzle
	next.Step = step
	return next, nil
}

// resolve records an outcome and moves to the result view. The puzzle is
// consumed whatever the verdict.
func resolve(s State, out challenge.Outcome) State {
	next := s
	if out.Correct() {
		history := make([]Entry, len(s.History), len(s.History)+1)
		copy(history, s.History)
		next.History = append(history, Entry{Kind: s.Active.Kind, Points: out.Points})
		next.Score = s.Score + out.Points
	}
	next.LastResult = out.Message
	next.LastVerdict = out.Verdict
	next.Active = nil
	next.Step = StepResult
	return next
}

// reset starts over while keeping the player's name.
func reset(s State) State {
	return State{
		PlayerName:  s.PlayerName,
		NameEntered: s.NameEntered,
		Step:        StepMenu,
	}
}
