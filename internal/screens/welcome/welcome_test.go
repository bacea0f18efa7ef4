package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                           { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                    { return "home" }
func (h *homeStub) Title() string                           { return "Home" }

// splash returns a welcome screen and a counter of home screens built.
func splash() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen { built++; return &homeStub{} }), &built
}

func advance(w *WelcomeScreen, ticks int) tea.Cmd {
	var cmd tea.Cmd
	for range ticks {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestAnimationPhases(t *testing.T) {
	tests := []struct {
		ticks   int
		phase   phase
		stick   bool
		tagline bool
	}{
		{0, phaseGrow, false, false},
		{5, phaseMark, true, false},
		{15, phaseBanner, true, true},
		{45, phaseBanner, true, true},
	}
	for _, tt := range tests {
		w, built := splash()
		advance(w, tt.ticks)

		assert.Equal(t, tt.phase, w.phase(), "after %d ticks", tt.ticks)
		view := w.View(100, 30)
		assert.Equal(t, tt.stick, strings.Contains(view, "WTP"), "stick top after %d ticks", tt.ticks)
		assert.Equal(t, tt.tagline, strings.Contains(view, tagline), "tagline after %d ticks", tt.ticks)
		assert.LessOrEqual(t, w.elapsed, totalDur)
		assert.Zero(t, *built, "home built without a key press")
	}
}

func TestKeyPressHandsOverOnce(t *testing.T) {
	w, built := splash()
	advance(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	swap, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Home", swap.Screen.Title())

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd, "second key press")
	assert.Nil(t, advance(w, 1), "ticks after hand-over")
	assert.Equal(t, 1, *built)
}

func TestBannerWidths(t *testing.T) {
	assert.Contains(t, RenderBanner(40), bannerCompact)
	assert.NotContains(t, RenderBanner(100), bannerCompact)
	w, _ := splash()
	assert.Empty(t, w.Title())
}
