package challenge

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	chal "github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/components"
	"github.com/abhisek/mindgym/internal/ui/layout"
	"github.com/abhisek/mindgym/internal/ui/theme"
)

const answerLimit = 64

// ChallengeScreen shows the puzzle in progress. A memory puzzle first
// shows its digits; Enter hides them and opens the answer input.
type ChallengeScreen struct {
	view  session.ChallengeView
	input components.TextInput
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengeScreen)(nil)

// New creates a challenge screen from the snapshot's challenge view.
func New(view session.ChallengeView) *ChallengeScreen {
	placeholder := "Your answer"
	if view.Kind == chal.KindMemory {
		placeholder = "Enter the sequence"
	}
	return &ChallengeScreen{
		view:  view,
		input: components.NewTextInput(placeholder, answerLimit),
	}
}

func (c *ChallengeScreen) Init() tea.Cmd {
	if !c.view.AwaitingAnswer {
		return nil
	}
	return c.input.Init()
}

func (c *ChallengeScreen) Title() string {
	return string(c.view.Kind) + " Challenge"
}

func (c *ChallengeScreen) KeyHints() []layout.KeyHint {
	if !c.view.AwaitingAnswer {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Hide & enter sequence"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Menu"},
		{Key: "Ctrl+R", Description: "Restart"},
	}
}

func (c *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return c, screen.Dispatch(session.BackToMenu())
		case "enter":
			if !c.view.AwaitingAnswer {
				return c, screen.Dispatch(session.RevealDone())
			}
			return c, screen.Dispatch(session.SubmitAnswer(c.view.Kind, c.input.Value()))
		}
	}

	if !c.view.AwaitingAnswer {
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChallengeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(c.view.Prompt))
	b.WriteString("\n\n")

	if c.view.AwaitingAnswer {
		b.WriteString(theme.Body.Render("Answer: ") + c.input.View())
	} else {
		digits := make([]string, len(c.view.Sequence))
		for i, d := range c.view.Sequence {
			digits[i] = strconv.Itoa(d)
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(strings.Join(digits, "  ")))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press Enter when you have memorized it"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}
