package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/router"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond

	taglineAt  = 500 * time.Millisecond
	previewAt  = 900 * time.Millisecond
	previewGap = 400 * time.Millisecond

	// spotlightTicks is how long each preview stays highlighted.
	spotlightTicks = 8
)

// preview is one line of the challenge tour.
type preview struct {
	kind   challenge.Kind
	icon   string
	teaser string
}

// previews follow menu order.
var previews = []preview{
	{challenge.KindMath, "🧮", "7 + 5 = ?"},
	{challenge.KindMemory, "🧠", "3 1 4 1 5 … now from memory"},
	{challenge.KindLogic, "🧩", "What has keys but can't open locks?"},
}

// revealDone is when the last preview line appears.
var revealDone = previewAt + time.Duration(len(previews)-1)*previewGap

type tickMsg time.Time

// WelcomeScreen is the splash shown before the name gate: the banner, then
// a short tour of the three challenges. Any key moves on.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	ticks   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that is replaced by the screen next builds.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < revealDone {
			w.elapsed += tickInterval
		}
		w.ticks++
		return w, tick()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		s := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
	}
	return w, nil
}

// revealed reports how many preview lines are visible.
func (w *WelcomeScreen) revealed() int {
	if w.elapsed < previewAt {
		return 0
	}
	n := int((w.elapsed-previewAt)/previewGap) + 1
	return min(n, len(previews))
}

// spotlight is the index of the highlighted preview, or -1 until the tour
// has fully appeared.
func (w *WelcomeScreen) spotlight() int {
	if w.revealed() < len(previews) {
		return -1
	}
	return (w.ticks / spotlightTicks) % len(previews)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if w.elapsed >= taglineAt {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Daily Brain Trainer"))
	}

	if n := w.revealed(); n > 0 {
		sections = append(sections, "", w.renderTour(n))
	}

	if w.revealed() == len(previews) {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (w *WelcomeScreen) renderTour(n int) string {
	lit := w.spotlight()
	lines := make([]string, 0, n)
	for i, p := range previews[:n] {
		name := theme.Unselected.Render(string(p.kind))
		teaser := theme.Hint.Render(p.teaser)
		marker := "  "
		if i == lit {
			name = theme.Selected.Render(string(p.kind))
			teaser = lipgloss.NewStyle().Foreground(theme.Accent).Render(p.teaser)
			marker = theme.Selected.Render("▸ ")
		}
		lines = append(lines, marker+p.icon+" "+lipgloss.NewStyle().Width(8).Render(name)+teaser)
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}
