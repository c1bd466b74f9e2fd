package challenge

import (
	"fmt"
	"strings"
)

// PointsPerCorrect is awarded for every correctly solved challenge.
const PointsPerCorrect = 10

// Kind identifies one of the three mini-challenges.
type Kind string

const (
	KindMath   Kind = "Math"
	KindLogic  Kind = "Logic"
	KindMemory Kind = "Memory"
)

// Kinds lists every challenge kind in menu order.
var Kinds = []Kind{KindMath, KindMemory, KindLogic}

// ParseKind converts a case-insensitive name ("math", "Logic", ...) into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(strings.TrimSpace(s), string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown challenge kind %q", s)
}

// Verdict classifies how a submission resolved.
type Verdict string

const (
	VerdictCorrect Verdict = "correct"
	VerdictWrong   Verdict = "wrong"
	VerdictInvalid Verdict = "invalid" // Math only: input was not an integer
)

// Outcome is the score-relevant result of checking one submission.
type Outcome struct {
	Verdict Verdict
	Message string
	Points  int
}

// Correct reports whether the outcome awards points.
func (o Outcome) Correct() bool {
	return o.Verdict == VerdictCorrect
}

const (
	msgCorrect       = "✅ Correct! +10 points"
	msgInvalidNumber = "❌ Please enter a valid number."
)

func correct() Outcome {
	return Outcome{Verdict: VerdictCorrect, Message: msgCorrect, Points: PointsPerCorrect}
}

func wrong(format string, args ...any) Outcome {
	return Outcome{Verdict: VerdictWrong, Message: fmt.Sprintf(format, args...)}
}
