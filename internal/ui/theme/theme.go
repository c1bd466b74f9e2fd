// Package theme holds the terminal palette. The colors match the
// browser stylesheet so both front ends look like the same game.
package theme

import (
	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#FF4B4B") // accent red, buttons and titles
	Secondary = lipgloss.Color("#FFBD45") // amber, score and tagline
	Accent    = lipgloss.Color("#4FC3F7") // sky, memory digits and keys
	Success   = lipgloss.Color("#21C354")
	Error     = lipgloss.Color("#FF4B4B")
	Warning   = lipgloss.Color("#FFBD45")
	Text      = lipgloss.Color("#FAFAFA")
	TextDim   = lipgloss.Color("#9AA0A6")
	BgCard    = lipgloss.Color("#262730")
	Border    = lipgloss.Color("#3D3F4B")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Body  = lipgloss.NewStyle().Foreground(Text)
	Hint  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Card frames the content of every screen.
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 3)
)

// Menu rows and verdicts.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Warn       = lipgloss.NewStyle().Foreground(Warning)
)
