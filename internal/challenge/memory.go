package challenge

import (
	"strconv"
	"strings"
)

// SequenceLength is the number of digits to memorize.
const SequenceLength = 5

// Memory is a digit sequence shown once, then recalled.
type Memory struct {
	Digits []int `json:"digits"`

	// Visible is true during the reveal phase and false once the player
	// has hidden the sequence to type it back.
	Visible bool `json:"visible"`
}

// Sequence returns the digits concatenated without separators.
func (m Memory) Sequence() string {
	var b strings.Builder
	for _, d := range m.Digits {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

// Display returns the digits separated by spaces for the reveal phase.
func (m Memory) Display() string {
	parts := make([]string, len(m.Digits))
	for i, d := range m.Digits {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, " ")
}

// Prompt returns the instruction for the current phase.
func (m Memory) Prompt() string {
	if m.Visible {
		return "🧠 Memorize this sequence:"
	}
	return "🧠 Enter the sequence:"
}

// Hidden returns a copy of m with the sequence hidden.
func (m Memory) Hidden() Memory {
	digits := make([]int, len(m.Digits))
	copy(digits, m.Digits)
	return Memory{Digits: digits, Visible: false}
}

// Check requires the trimmed input to equal the digits exactly, with no
// separators.
func (m Memory) Check(input string) Outcome {
	want := m.Sequence()
	if strings.TrimSpace(input) == want {
		return correct()
	}
	return wrong("❌ Incorrect. Correct was: %s", want)
}
