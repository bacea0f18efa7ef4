// Package welcome is the animated splash shown on start.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	growFor      = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// phase is the stage of the intro animation.
type phase int

const (
	phaseGrow   phase = iota // stick drawn bottom up
	phaseMark                // full stick, blinking marker at WTP
	phaseBanner              // banner, tagline and prompt
)

// The value stick drawn as a column, top to bottom.
var stickArt = []string{
	"┬ WTP",
	"│   customer surplus",
	"┼ Price",
	"│   firm profit",
	"┼ Cost",
	"│   supplier surplus",
	"┴ WTS",
}

var markerFrames = []string{"◆", "◇"}

const tagline = "Where do we compete, and how do we win?"

type tickMsg time.Time

// WelcomeScreen plays a short intro and hands over to the home screen on
// the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns a splash that swaps itself for homeFactory's screen.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

// Title is empty so the splash leaves no crumb.
func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Swap(w.homeFactory())
}

func (w *WelcomeScreen) phase() phase {
	switch {
	case w.elapsed < growFor:
		return phaseGrow
	case w.elapsed < bannerAt:
		return phaseMark
	}
	return phaseBanner
}

// stick returns the visible part of the value stick.
func (w *WelcomeScreen) stick() string {
	n := len(stickArt)
	if w.phase() == phaseGrow {
		n = 1 + int(w.elapsed*time.Duration(len(stickArt)-1)/growFor)
	}
	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines := make([]string, 0, n)
	for _, l := range stickArt[len(stickArt)-n:] {
		lines = append(lines, style.Render(l))
	}
	if w.phase() != phaseGrow {
		marker := markerFrames[w.tickCount%len(markerFrames)]
		lines[0] += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render(marker)
	}
	return lipgloss.NewStyle().Width(28).Render(strings.Join(lines, "\n"))
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.stick()}
	if w.phase() == phaseBanner {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			theme.Body.Bold(true).Render(tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
