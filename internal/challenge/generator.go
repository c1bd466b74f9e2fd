package challenge

import (
	"fmt"
	"math/rand/v2"
)

// Generator creates new puzzles. Implementations need not be safe for
// concurrent use; each session owns its own generator.
type Generator interface {
	New(kind Kind, score int) (*Puzzle, error)
}

// RandomGenerator draws puzzles from a PRNG and a riddle bank.
type RandomGenerator struct {
	rng  *rand.Rand
	bank *Bank
}

var _ Generator = (*RandomGenerator)(nil)

// NewRandomGenerator creates a generator over bank. A nil src seeds from
// the runtime's random source; a nil bank uses DefaultBank.
func NewRandomGenerator(bank *Bank, src rand.Source) *RandomGenerator {
	if bank == nil {
		bank = DefaultBank()
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomGenerator{rng: rand.New(src), bank: bank}
}

// New generates a puzzle of the given kind. Math difficulty scales with score.
func (g *RandomGenerator) New(kind Kind, score int) (*Puzzle, error) {
	switch kind {
	case KindMath:
		bound := MathBound(score)
		return NewMathPuzzle(g.between(1, bound), g.between(1, bound)), nil

	case KindLogic:
		riddles := g.bank.Riddles()
		if len(riddles) == 0 {
			return nil, fmt.Errorf("riddle bank is empty")
		}
		return NewRiddlePuzzle(riddles[g.rng.IntN(len(riddles))]), nil

	case KindMemory:
		digits := make([]int, SequenceLength)
		for i := range digits {
			digits[i] = g.rng.IntN(10)
		}
		return NewMemoryPuzzle(digits), nil
	}
	return nil, fmt.Errorf("generate puzzle: unknown kind %q", kind)
}

// between returns a uniform integer in [lo, hi].
func (g *RandomGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
