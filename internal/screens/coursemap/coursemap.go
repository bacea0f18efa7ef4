// Package coursemap shows the course overview: the big questions, how to
// use the companion and the roadmap of sections.
package coursemap

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/ui/components"
	"github.com/abhisek/stratiz/internal/ui/layout"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

// twoColumnWidth is the narrowest terminal that shows the roadmap as a grid.
const twoColumnWidth = 90

// Screen renders the course map.
type Screen struct {
	m      content.CourseMap
	offset int
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates the course map screen.
func New(m content.CourseMap) *Screen {
	return &Screen{m: m}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Welcome & Course Map" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if width >= twoColumnWidth {
		cw = min(width-6, 2*components.ContentWidth(width/2))
	}
	body := lipgloss.NewStyle().Width(cw)

	var sections []string
	sections = append(sections, theme.Title.Render(s.m.Title))
	sections = append(sections, body.Render(theme.Body.Render(s.m.Intro)))
	sections = append(sections, theme.Heading.Render("Big questions of strategy")+"\n"+bullets(s.m.BigQuestions, cw))
	sections = append(sections, theme.Heading.Render("How to use this companion")+"\n"+bullets(s.m.HowToUse, cw))
	sections = append(sections, theme.Heading.Render("Course roadmap")+"\n"+s.roadmap(width, cw))

	lines := strings.Split(strings.Join(sections, "\n\n"), "\n")
	if height <= 0 || len(lines) <= height {
		s.offset = 0
		return strings.Join(lines, "\n")
	}
	s.offset = min(s.offset, len(lines)-height)
	return strings.Join(lines[s.offset:s.offset+height], "\n")
}

func bullets(items []string, cw int) string {
	style := theme.Body.Width(cw - 2)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, "• ", style.Render(it)))
	}
	return strings.Join(out, "\n")
}

func (s *Screen) roadmap(width, cw int) string {
	if width < twoColumnWidth {
		cards := make([]string, 0, len(s.m.Roadmap))
		for _, c := range s.m.Roadmap {
			cards = append(cards, components.InfoCard(c.Title, c.Body, cw-2))
		}
		return strings.Join(cards, "\n")
	}

	half := cw/2 - 2
	var rows []string
	for i := 0; i < len(s.m.Roadmap); i += 2 {
		left := components.InfoCard(s.m.Roadmap[i].Title, s.m.Roadmap[i].Body, half)
		if i+1 == len(s.m.Roadmap) {
			rows = append(rows, left)
			continue
		}
		right := components.InfoCard(s.m.Roadmap[i+1].Title, s.m.Roadmap[i+1].Body, half)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	}
	return strings.Join(rows, "\n")
}
