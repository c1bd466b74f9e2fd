package namegate

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
)

func TestEnterSubmitsName(t *testing.T) {
	s := New("")
	for _, r := range "Ada" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(screen.ActionMsg)
	if !ok {
		t.Fatalf("expected ActionMsg, got %T", msg)
	}
	if msg.Action.Kind != session.ActionSubmitName || msg.Action.Value != "Ada" {
		t.Errorf("got %s %q, want submitName \"Ada\"", msg.Action.Kind, msg.Action.Value)
	}
}

func TestWarningShown(t *testing.T) {
	if strings.Contains(New("").View(100, 30), "⚠") {
		t.Error("no warning expected")
	}
	view := New(session.NameWarning).View(100, 30)
	if !strings.Contains(view, session.NameWarning) {
		t.Errorf("expected warning in view, got:\n%s", view)
	}
}
