// Package placeholder shows a notice for a feature the current setup
// cannot offer, such as progress without a database.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/ui/layout"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

type PlaceholderScreen struct {
	title   string
	message string
}

var (
	_ screen.Screen          = (*PlaceholderScreen)(nil)
	_ screen.KeyHintProvider = (*PlaceholderScreen)(nil)
)

func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

func (p *PlaceholderScreen) Init() tea.Cmd { return nil }

func (p *PlaceholderScreen) Title() string { return p.title }

// Update leaves the notice on enter.
func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		return p, router.Back()
	}
	return p, nil
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back"}}
}

func (p *PlaceholderScreen) View(width, height int) string {
	card := theme.Card.Width(min(width-4, 60)).Render(
		theme.Heading.Render(p.title) + "\n\n" + theme.Body.Render(p.message),
	)
	if height <= 0 {
		return card
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
