package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/router"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/layout"
	"github.com/abhisek/mindgym/internal/ui/theme"
)

// StatsScreen is a read-only overlay listing score and solved challenges.
type StatsScreen struct {
	stats session.Stats
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen.
func New(stats session.Stats) *StatsScreen {
	return &StatsScreen{stats: stats}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Your Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("📈 Your Stats"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Total Score: %d", s.stats.Score)))
	b.WriteString("\n\n")

	if len(s.stats.Entries) == 0 {
		b.WriteString(theme.Hint.Render("No challenges completed yet."))
	} else {
		for _, e := range s.stats.Entries {
			b.WriteString(theme.Body.Render(fmt.Sprintf("- %s: +%d points", e.Kind, e.Points)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		counts := make([]string, 0, len(challenge.Kinds))
		for _, k := range challenge.Kinds {
			counts = append(counts, fmt.Sprintf("%s %d", k, s.stats.Completed[k]))
		}
		b.WriteString(theme.Hint.Render(strings.Join(counts, " · ")))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}
