package session

import "github.com/abhisek/mindgym/internal/challenge"

// ChallengeView is what the view layer may show about the puzzle in
// progress. Answers are never included.
type ChallengeView struct {
	Kind   challenge.Kind `json:"kind"`
	Prompt string         `json:"prompt"`

	// Sequence holds the digits while a memory puzzle is in its reveal phase.
	Sequence []int `json:"sequence,omitempty"`

	// AwaitingAnswer is false only during the memory reveal phase.
	AwaitingAnswer bool `json:"awaiting_answer"`
}

// Stats is the read-only projection returned by viewStats.
type Stats struct {
	Score     int                    `json:"score"`
	Entries   []Entry                `json:"entries"`
	Completed map[challenge.Kind]int `json:"completed"`
}

// Snapshot is the view-relevant projection of a State.
type Snapshot struct {
	Step        Step              `json:"step"`
	PlayerName  string            `json:"player_name,omitempty"`
	NameEntered bool              `json:"name_entered"`
	Score       int               `json:"score"`
	History     []Entry           `json:"history"`
	LastResult  string            `json:"last_result,omitempty"`
	LastVerdict challenge.Verdict `json:"last_verdict,omitempty"`
	Warning     string            `json:"warning,omitempty"`
	Challenge   *ChallengeView    `json:"challenge,omitempty"`

	// Stats is set only in the snapshot answering a viewStats action.
	Stats *Stats `json:"stats,omitempty"`
}

// BuildSnapshot projects s for rendering.
func BuildSnapshot(s State) Snapshot {
	history := make([]Entry, len(s.History))
	copy(history, s.History)

	snap := Snapshot{
		Step:        s.Step,
		PlayerName:  s.PlayerName,
		NameEntered: s.NameEntered,
		Score:       s.Score,
		History:     history,
		LastResult:  s.LastResult,
		LastVerdict: s.LastVerdict,
		Warning:     s.Warning,
	}

	if p := s.Active; p != nil {
		cv := &ChallengeView{
			Kind:           p.Kind,
			Prompt:         p.Prompt(),
			AwaitingAnswer: p.AwaitingAnswer(),
		}
		if p.Kind == challenge.KindMemory && p.Memory != nil && p.Memory.Visible {
			cv.Sequence = make([]int, len(p.Memory.Digits))
			copy(cv.Sequence, p.Memory.Digits)
		}
		snap.Challenge = cv
	}

	return snap
}

// BuildStats summarises score and history.
func BuildStats(s State) *Stats {
	entries := make([]Entry, len(s.History))
	copy(entries, s.History)

	completed := make(map[challenge.Kind]int, len(challenge.Kinds))
	for _, k := range challenge.Kinds {
		completed[k] = 0
	}
	for _, e := range s.History {
		completed[e.Kind]++
	}

	return &Stats{
		Score:     s.Score,
		Entries:   entries,
		Completed: completed,
	}
}
