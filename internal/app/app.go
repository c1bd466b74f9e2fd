package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindgym/internal/challenge"
	"github.com/abhisek/mindgym/internal/router"
	"github.com/abhisek/mindgym/internal/screen"
	"github.com/abhisek/mindgym/internal/screens/welcome"
	"github.com/abhisek/mindgym/internal/session"
	"github.com/abhisek/mindgym/internal/ui/layout"
)

// Options configures the terminal game.
type Options struct {
	// Controller holds the session. Defaults to a fresh session with a
	// randomly seeded generator.
	Controller *session.Controller

	// SkipSplash starts directly at the name gate.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model. It owns the session controller;
// screens ask for changes with screen.ActionMsg.
type AppModel struct {
	router *router.Router
	ctrl   *session.Controller
	notice string
	width  int
	height int
}

// newAppModel creates a new AppModel showing the splash screen or the
// screen for the controller's current step.
func newAppModel(opts Options) AppModel {
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = session.NewController(challenge.NewRandomGenerator(nil, nil))
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = screenFor(ctrl.Snapshot())
	} else {
		first = welcome.New(func() screen.Screen { return screenFor(ctrl.Snapshot()) })
	}

	return AppModel{
		router: router.New(first),
		ctrl:   ctrl,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ActionMsg:
		return m.dispatch(msg.Action)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			if m.ctrl.Snapshot().NameEntered {
				return m.dispatch(session.Restart())
			}
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// dispatch applies a to the session and shows the screen for the result.
func (m AppModel) dispatch(a session.Action) (tea.Model, tea.Cmd) {
	snap, err := m.ctrl.Do(a)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.notice = ""

	if a.Kind == session.ActionViewStats && snap.Stats != nil {
		return m, m.router.Push(statsScreen(*snap.Stats))
	}
	return m, m.router.Reset(screenFor(snap))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	snap := m.ctrl.Snapshot()
	header := layout.RenderHeader(title, snap.PlayerName, snap.Score, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	if m.notice != "" {
		footerHints = append(footerHints, layout.KeyHint{Key: "!", Description: m.notice})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
