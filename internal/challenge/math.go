package challenge

import (
	"regexp"
	"strconv"
	"strings"
)

// BaseMathBound is the operand upper bound at score 0.
const BaseMathBound = 20

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Math is an addition problem A + B.
type Math struct {
	A int `json:"a"`
	B int `json:"b"`
}

// MathBound returns the inclusive operand upper bound for the given score.
// It grows by one for every 10 points scored.
func MathBound(score int) int {
	if score < 0 {
		score = 0
	}
	return BaseMathBound + score/PointsPerCorrect
}

// Answer returns the correct sum.
func (m Math) Answer() int {
	return m.A + m.B
}

// Prompt returns the question shown to the player.
func (m Math) Prompt() string {
	return "🧮 What is " + strconv.Itoa(m.A) + " + " + strconv.Itoa(m.B) + "?"
}

// Check validates a typed answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - A single leading minus is allowed, everything else must be ASCII digits
// - Numbers too large for int64 are treated as wrong, not invalid
func (m Math) Check(input string) Outcome {
	input = strings.TrimSpace(input)
	if !integerPattern.MatchString(input) {
		return Outcome{Verdict: VerdictInvalid, Message: msgInvalidNumber}
	}

	n, err := strconv.ParseInt(input, 10, 64)
	if err == nil && n == int64(m.Answer()) {
		return correct()
	}
	return wrong("❌ Incorrect. Answer was %d", m.Answer())
}
