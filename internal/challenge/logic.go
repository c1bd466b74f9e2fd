package challenge

import "strings"

// Riddle is a question with a short expected answer.
type Riddle struct {
	Question string `json:"question" toml:"question"`
	Answer   string `json:"answer" toml:"answer"`
}

// Prompt returns the riddle as shown to the player.
func (r Riddle) Prompt() string {
	return "🧩 Riddle: " + r.Question
}

// Check accepts any submission that contains the expected answer,
// ignoring case. "an Egg!" solves "egg"; so does "eggplant".
func (r Riddle) Check(input string) Outcome {
	if strings.Contains(strings.ToLower(input), strings.ToLower(r.Answer)) {
		return correct()
	}
	return wrong("❌ Incorrect. Answer was: %s", r.Answer)
}
