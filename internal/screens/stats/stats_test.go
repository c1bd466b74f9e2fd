package stats

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/router"
	"github.com/abhisek/mindgym/internal/session"
)

func TestEmptyStats(t *testing.T) {
	s := New(session.Stats{})
	view := s.View(100, 30)
	if !strings.Contains(view, "No challenges completed yet.") {
		t.Errorf("expected empty message, got:\n%s", view)
	}
}

func TestStatsEntries(t *testing.T) {
	s := New(session.Stats{
		Score: 20,
		Entries: []session.Entry{
			{Kind: challenge.KindMath, Points: 10},
			{Kind: challenge.KindLogic, Points: 10},
		},
		Completed: map[challenge.Kind]int{challenge.KindMath: 1, challenge.KindLogic: 1},
	})

	view := s.View(100, 30)
	for _, want := range []string{"Total Score: 20", "- Math: +10 points", "- Logic: +10 points", "Memory 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterCloses(t *testing.T) {
	s := New(session.Stats{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Enter should pop the stats screen")
	}
}
