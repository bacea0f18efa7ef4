package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Bar is one labelled value.
type Bar struct {
	Label string
	Value int
	Text  string // shown instead of the number when set
}

// BarChart renders horizontal bars scaled to Max.
type BarChart struct {
	Bars  []Bar
	Max   int
	Width int
}

// NewBarChart creates a bar chart. A non-positive max scales to the
// largest bar.
func NewBarChart(bars []Bar, max, width int) BarChart {
	if max <= 0 {
		for _, b := range bars {
			if b.Value > max {
				max = b.Value
			}
		}
	}
	return BarChart{Bars: bars, Max: max, Width: width}
}

// View renders the chart, one bar per line.
func (c BarChart) View() string {
	labelWidth := 0
	for _, b := range c.Bars {
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := c.Width - labelWidth - 10
	if barWidth < 4 {
		barWidth = 4
	}

	lines := make([]string, 0, len(c.Bars))
	for _, b := range c.Bars {
		filled := 0
		if c.Max > 0 {
			filled = b.Value * barWidth / c.Max
		}
		filled = max(0, min(filled, barWidth))

		text := b.Text
		if text == "" {
			text = fmt.Sprint(b.Value)
		}

		line := lipgloss.NewStyle().Foreground(theme.Text).Width(labelWidth).Render(b.Label) +
			"  " +
			theme.BarFilled.Render(strings.Repeat(" ", filled)) +
			theme.BarEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
			"  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
