package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestBreadcrumb(t *testing.T) {
	trail := []string{"Home", "Industry Analysis", "Five Forces"}
	tests := []struct {
		width int
		want  string
	}{
		{80, "Home › Industry Analysis › Five Forces"},
		{35, "… › Industry Analysis › Five Forces"},
		{34, "… › Five Forces"},
		{3, "… › Five Forces"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Breadcrumb(trail, tt.width), "width %d", tt.width)
	}
	assert.Empty(t, Breadcrumb(nil, 80))
}

func TestHeader(t *testing.T) {
	h := Header{Trail: []string{"Home", "Markets"}, Answered: 2}
	out := RenderHeader(h, 100)
	assert.Contains(t, out, "Home › Markets")
	assert.Contains(t, out, "? 2 answered")
	assert.NotContains(t, out, "coach")

	h.Revealed, h.Correct, h.Coach = true, 1, true
	out = RenderHeader(h, 100)
	assert.Contains(t, out, "✔ 1/2 correct")
	assert.Contains(t, out, "● coach")
	assert.Equal(t, 3, lipgloss.Height(out))
}

func TestFooterDropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "Reveal answers"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	wide := RenderFooter(hints, 100)
	assert.Contains(t, wide, "Ctrl+C")

	narrow := RenderFooter(hints, 30)
	assert.Contains(t, narrow, "Move")
	assert.NotContains(t, narrow, "Quit")
}

func TestFrameFillsTerminal(t *testing.T) {
	header := RenderHeader(Header{Trail: []string{"Home"}}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)

	frame := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.Equal(t, 18, ContentHeight(header, footer, 24))
}

func TestMinSizeMessage(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(80, 24))
	assert.Contains(t, RenderMinSizeMessage(60, 20), "60×20")
}
