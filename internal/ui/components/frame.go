package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Column bounds for framed screens.
const (
	maxColumn = 72
	minColumn = 20
)

// ContentWidth is the text column inside a Frame of frameWidth: the
// double border and two cells of padding each side come off first.
func ContentWidth(frameWidth int) int {
	return max(minColumn, min(frameWidth-6, maxColumn))
}

// Frame draws a double border around content and centers it in
// width×height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// InfoCard is a rounded card with a heading, cw cells wide.
func InfoCard(title, body string, cw int) string {
	return theme.Card.Width(cw).
		Render(theme.Heading.Render(title) + "\n" + theme.Body.Render(body))
}
