package namegate

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/components"
	"github.com/abhisek/mindgym/internal/ui/layout"
	"github.com/abhisek/mindgym/internal/ui/theme"
)

const nameLimit = 40

// NameGateScreen asks for the player's name before anything else.
type NameGateScreen struct {
	input   components.TextInput
	warning string
}

var _ screen.Screen = (*NameGateScreen)(nil)
var _ screen.KeyHintProvider = (*NameGateScreen)(nil)

// New creates the name gate. warning is shown under the input when set.
func New(warning string) *NameGateScreen {
	return &NameGateScreen{
		input:   components.NewTextInput("Your name", nameLimit),
		warning: warning,
	}
}

func (n *NameGateScreen) Init() tea.Cmd {
	return n.input.Init()
}

func (n *NameGateScreen) Title() string {
	return "Welcome"
}

func (n *NameGateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (n *NameGateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return n, screen.Dispatch(session.SubmitName(n.input.Value()))
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

func (n *NameGateScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("🎉 Enter your name to begin"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Name: ") + n.input.View())
	if n.warning != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warn.Render("⚠ " + n.warning))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
