package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ActionMsg asks the root model to apply an action to the session.
// Screens never change session state themselves.
type ActionMsg struct {
	Action session.Action
}

// Dispatch returns a command that emits an ActionMsg for a.
func Dispatch(a session.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg{Action: a} }
}
