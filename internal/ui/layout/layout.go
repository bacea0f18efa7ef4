// Package layout draws the chrome around the active screen: a header bar
// with the navigation trail and session score, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Smallest terminal the course renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const crumbSep = " › "

// KeyHint is one entry of the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	msg := theme.Body.Render(fmt.Sprintf("The course needs at least %d×%d.", MinWidth, MinHeight)) +
		"\n" + theme.Hint.Render(fmt.Sprintf("This terminal is %d×%d.", width, height))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// Header is what the top bar shows.
type Header struct {
	Trail    []string
	Revealed bool
	Correct  int
	Answered int
	// Coach is shown only when a provider is configured.
	Coach bool
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Padding(0, 1)

// RenderHeader draws the brand, the trail and the score on one line. The
// trail loses its leading crumbs first when space runs out.
func RenderHeader(h Header, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("Stratiz")
	status := h.status()

	inner := max(0, width-bar.GetHorizontalFrameSize())
	room := inner - lipgloss.Width(brand) - lipgloss.Width(status) - 4
	trail := lipgloss.NewStyle().Foreground(theme.Text).Render(Breadcrumb(h.Trail, room))

	gap := max(1, inner-lipgloss.Width(brand)-2-lipgloss.Width(trail)-lipgloss.Width(status))
	line := brand + "  " + trail + strings.Repeat(" ", gap) + status
	return bar.Width(width).Render(line)
}

func (h Header) status() string {
	var score string
	if h.Revealed {
		score = lipgloss.NewStyle().Foreground(theme.Success).
			Render(fmt.Sprintf("✔ %d/%d correct", h.Correct, h.Answered))
	} else {
		score = theme.Label.Render(fmt.Sprintf("? %d answered", h.Answered))
	}
	if !h.Coach {
		return score
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render("● coach") + "  " + score
}

// Breadcrumb joins trail with separators, eliding leading crumbs so the
// result fits in width cells. The last crumb is always kept.
func Breadcrumb(trail []string, width int) string {
	if len(trail) == 0 {
		return ""
	}
	for i := range trail {
		s := strings.Join(trail[i:], crumbSep)
		if i > 0 {
			s = "…" + crumbSep + s
		}
		if lipgloss.Width(s) <= width || i == len(trail)-1 {
			return s
		}
	}
	return trail[len(trail)-1]
}

// RenderFooter draws as many hints as fit in width, in order.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	inner := max(0, width-bar.GetHorizontalFrameSize())

	var line string
	for _, h := range hints {
		part := key.Render(h.Key) + " " + theme.Label.Render(h.Description)
		if line != "" {
			part = "   " + part
		}
		if lipgloss.Width(line)+lipgloss.Width(part) > inner {
			break
		}
		line += part
	}
	return bar.Width(width).Render(line)
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := ContentHeight(header, footer, height)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// ContentHeight is the number of rows between header and footer.
func ContentHeight(header, footer string, height int) int {
	return max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
}
