package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/screens/welcome"
	"github.com/abhisek/stratiz/internal/ui/components"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 40

type stats struct {
	correct, answered, total int
	revealed                 bool
	coach                    bool
}

// contentWidth caps the inner width so boxes line up under the title.
func contentWidth(frameWidth int) int {
	return min(components.ContentWidth(frameWidth), 60)
}

func center(cw int) lipgloss.Style {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
}

func renderTitle(cw int, compact bool) string {
	bw := cw
	if compact {
		bw = 0
	}
	return center(cw).Render(welcome.RenderBanner(bw))
}

// renderStatsBar shows the quiz score, whether answers are revealed and
// whether the coach is available.
func renderStatsBar(st stats, cw int) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	onStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	score := scoreStyle.Render(fmt.Sprintf("★ %d/%d QUIZ", st.correct, st.total))
	if !st.revealed {
		score = scoreStyle.Render(fmt.Sprintf("★ %d/%d ANSWERED", st.answered, st.total))
	}

	reveal := dimStyle.Render("◇ ANSWERS HIDDEN")
	if st.revealed {
		reveal = onStyle.Render("◆ ANSWERS SHOWN")
	}

	coach := dimStyle.Render("✎ COACH OFF")
	if st.coach {
		coach = onStyle.Render("✎ COACH ON")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join([]string{score, reveal, coach}, "  "))
}
