package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/components"
	"github.com/abhisek/mindgym/internal/ui/theme"
)

// ResultScreen shows the outcome of the last challenge.
type ResultScreen struct {
	message string
	verdict challenge.Verdict
	menu    components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a result screen for the given outcome.
func New(message string, verdict challenge.Verdict) *ResultScreen {
	return &ResultScreen{
		message: message,
		verdict: verdict,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "🔙 Back to Menu", Action: func() tea.Cmd { return screen.Dispatch(session.BackToMenu()) }},
			{Label: "🔁 Restart Game", Action: func() tea.Cmd { return screen.Dispatch(session.Restart()) }},
		}),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	style := theme.Incorrect
	if r.verdict == challenge.VerdictCorrect {
		style = theme.Correct
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("📢 Result"))
	b.WriteString("\n\n")
	b.WriteString(style.Render(r.message))
	b.WriteString("\n\n")
	b.WriteString(r.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}
