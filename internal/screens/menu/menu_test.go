package menu

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
)

func TestMenuItems(t *testing.T) {
	tests := []struct {
		downs int
		kind  session.ActionKind
		value string
	}{
		{0, session.ActionSelectChallenge, string(challenge.KindMath)},
		{1, session.ActionSelectChallenge, string(challenge.KindMemory)},
		{2, session.ActionSelectChallenge, string(challenge.KindLogic)},
		{3, session.ActionViewStats, ""},
		{4, session.ActionRestart, ""},
	}

	for _, tt := range tests {
		s := New(0)
		for i := 0; i < tt.downs; i++ {
			s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatalf("item %d: expected a command", tt.downs)
		}
		msg, ok := cmd().(screen.ActionMsg)
		if !ok {
			t.Fatalf("item %d: expected ActionMsg, got %T", tt.downs, msg)
		}
		if msg.Action.Kind != tt.kind {
			t.Errorf("item %d: kind = %s, want %s", tt.downs, msg.Action.Kind, tt.kind)
		}
		if tt.value != "" && string(msg.Action.Challenge) != tt.value {
			t.Errorf("item %d: challenge = %s, want %s", tt.downs, msg.Action.Challenge, tt.value)
		}
	}
}

func TestExitQuits(t *testing.T) {
	s := New(0)
	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("exit should quit")
	}
}
