package challenge

import "fmt"

// Puzzle is the payload of the challenge currently in progress.
// Exactly one of Math, Riddle or Memory is set, matching Kind.
type Puzzle struct {
	Kind   Kind    `json:"kind"`
	Math   *Math   `json:"math,omitempty"`
	Riddle *Riddle `json:"riddle,omitempty"`
	Memory *Memory `json:"memory,omitempty"`
}

// NewMathPuzzle wraps a math problem.
func NewMathPuzzle(a, b int) *Puzzle {
	return &Puzzle{Kind: KindMath, Math: &Math{A: a, B: b}}
}

// NewRiddlePuzzle wraps a riddle.
func NewRiddlePuzzle(r Riddle) *Puzzle {
	return &Puzzle{Kind: KindLogic, Riddle: &r}
}

// NewMemoryPuzzle wraps a digit sequence in its reveal phase.
func NewMemoryPuzzle(digits []int) *Puzzle {
	d := make([]int, len(digits))
	copy(d, digits)
	return &Puzzle{Kind: KindMemory, Memory: &Memory{Digits: d, Visible: true}}
}

// Validate checks that the payload matches Kind.
func (p *Puzzle) Validate() error {
	set := 0
	if p.Math != nil {
		set++
	}
	if p.Riddle != nil {
		set++
	}
	if p.Memory != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("puzzle %s has %d payloads, want 1", p.Kind, set)
	}

	switch p.Kind {
	case KindMath:
		if p.Math == nil {
			return fmt.Errorf("math puzzle without operands")
		}
	case KindLogic:
		if p.Riddle == nil {
			return fmt.Errorf("logic puzzle without riddle")
		}
	case KindMemory:
		if p.Memory == nil {
			return fmt.Errorf("memory puzzle without sequence")
		}
	default:
		return fmt.Errorf("unknown puzzle kind %q", p.Kind)
	}
	return nil
}

// Prompt returns the text displayed for the puzzle.
func (p *Puzzle) Prompt() string {
	switch p.Kind {
	case KindMath:
		return p.Math.Prompt()
	case KindLogic:
		return p.Riddle.Prompt()
	case KindMemory:
		return p.Memory.Prompt()
	}
	return ""
}

// Check validates a submission against the puzzle.
func (p *Puzzle) Check(input string) Outcome {
	switch p.Kind {
	case KindMath:
		return p.Math.Check(input)
	case KindLogic:
		return p.Riddle.Check(input)
	case KindMemory:
		return p.Memory.Check(input)
	}
	return wrong("❌ Unknown challenge.")
}

// AwaitingAnswer reports whether the puzzle is ready for a submission.
// A memory puzzle only accepts answers once the sequence is hidden.
func (p *Puzzle) AwaitingAnswer() bool {
	if p.Kind == KindMemory {
		return p.Memory != nil && !p.Memory.Visible
	}
	return true
}

// WithSequenceHidden returns a copy of a memory puzzle with its sequence
// hidden. Other kinds are returned unchanged.
func (p *Puzzle) WithSequenceHidden() *Puzzle {
	if p.Kind != KindMemory || p.Memory == nil {
		return p
	}
	hidden := p.Memory.Hidden()
	return &Puzzle{Kind: KindMemory, Memory: &hidden}
}
