// Package theme is the course palette: boardroom navy with gold
// highlights. Screens use the named styles rather than raw colors where
// one fits.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#3B82F6")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Gold      = lipgloss.Color("#FACC15")
	Cyan      = lipgloss.Color("#22D3EE")
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#FB923C")
	Error     = lipgloss.Color("#F43F5E")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgDark  = lipgloss.Color("#0B1220")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")
)

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// Text styles.
var (
	Title   = fg(Primary).Bold(true)
	Heading = fg(Gold).Bold(true)
	Body    = fg(Text)
	Label   = fg(TextDim)
	Hint    = fg(TextDim).Italic(true)

	Selected   = fg(Primary).Bold(true)
	Unselected = fg(Text)
	Correct    = fg(Success).Bold(true)
	Incorrect  = fg(Error).Bold(true)
)

// Card frames a block of content.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// Bar segments for charts.
var (
	BarFilled = lipgloss.NewStyle().Background(Secondary)
	BarEmpty  = lipgloss.NewStyle().Background(Border)
)

var tones = map[string]lipgloss.Style{
	"success": Correct,
	"warning": fg(Warning).Bold(true),
	"error":   Incorrect,
	"info":    fg(Cyan).Bold(true),
}

// ToneStyle styles an evaluation outcome. Unknown tones read as info.
func ToneStyle(tone string) lipgloss.Style {
	if s, ok := tones[tone]; ok {
		return s
	}
	return tones["info"]
}
