// Package home is the main menu listing the course sections.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/screens/coursemap"
	"github.com/abhisek/stratiz/internal/screens/history"
	"github.com/abhisek/stratiz/internal/screens/page"
	"github.com/abhisek/stratiz/internal/screens/placeholder"
	"github.com/abhisek/stratiz/internal/ui/components"
)

const (
	courseMapLabel = "Welcome & Course Map"
	progressLabel  = "My Progress"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
	deps page.Deps
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for a course. Section pages share deps.
func New(c *content.Course, deps page.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: courseMapLabel, Action: push(func() screen.Screen { return coursemap.New(c.Map) })},
	}
	for _, sec := range c.Sections {
		items = append(items, components.MenuItem{
			Label:  sec.Title,
			Action: push(func() screen.Screen { return page.New(sec, deps) }),
		})
	}
	items = append(items,
		components.MenuItem{Label: progressLabel, Action: push(func() screen.Screen {
			if deps.Events == nil {
				return placeholder.New(progressLabel, "Quiz history needs the local database.\nRun stratiz without --no-db to record answers.")
			}
			return history.New(deps.Events)
		})},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	)

	return &HomeScreen{
		menu: components.NewMenu(items),
		deps: deps,
	}
}

func push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd { return router.Go(build()) }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// Bordered buttons need three rows each; fall back to a plain list.
	compact := height < 3*len(h.menu.Items)+16 || width < 70
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.stats(), cw))

	sections = append(sections, center(cw).Render(h.menu.View(buttonWidth, compact)))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) stats() stats {
	var st stats
	if h.deps.Session != nil {
		st.revealed = h.deps.Session.Revealed()
		if h.deps.Bank != nil {
			st.correct, st.answered = h.deps.Session.Score(h.deps.Bank)
			st.total = h.deps.Bank.Len()
		}
	}
	st.coach = h.deps.Coach != nil
	return st
}
