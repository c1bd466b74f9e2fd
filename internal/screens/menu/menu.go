package menu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/components"
	"github.com/abhisek/mindgym/internal/ui/theme"
)

var kindLabels = map[challenge.Kind]string{
	challenge.KindMath:   "🧮 Math Challenge",
	challenge.KindMemory: "🧠 Memory Challenge",
	challenge.KindLogic:  "🧩 Logic Challenge",
}

// MenuScreen lets the player pick a challenge.
type MenuScreen struct {
	menu  components.Menu
	score int
}

var _ screen.Screen = (*MenuScreen)(nil)

// New creates the challenge menu for a player with the given score.
func New(score int) *MenuScreen {
	items := make([]components.MenuItem, 0, len(challenge.Kinds)+3)
	for _, k := range challenge.Kinds {
		items = append(items, components.MenuItem{
			Label:  kindLabels[k],
			Action: func() tea.Cmd { return screen.Dispatch(session.SelectChallenge(k)) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "📊 View My Stats", Action: func() tea.Cmd {
			return screen.Dispatch(session.ViewStats())
		}},
		components.MenuItem{Label: "🔁 Restart", Action: func() tea.Cmd {
			return screen.Dispatch(session.Restart())
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &MenuScreen{
		menu:  components.NewMenu(items),
		score: score,
	}
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Title() string {
	return "Menu"
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render(fmt.Sprintf("Current Score: %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprint(m.score)))))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render("🎯 Choose Your Challenge:"))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}
