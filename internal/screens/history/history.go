// Package history is the "My Progress" screen: quiz accuracy per topic
// across every recorded session, with the latest answers on demand.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/store"
	"github.com/abhisek/stratiz/internal/ui/components"
	"github.com/abhisek/stratiz/internal/ui/layout"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

// recentLimit caps the answers loaded for the expanded rows.
const recentLimit = 200

type progress struct {
	topics   []store.TopicAccuracy
	recent   []store.AnswerEvent
	sessions int
}

type loadedMsg struct {
	progress
	err error
}

type Screen struct {
	repo     store.EventRepo
	data     progress
	byTopic  map[string][]store.AnswerEvent // newest first
	selected int
	open     map[string]bool
	state    string // "", "ready" or an error message
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(repo store.EventRepo) *Screen {
	return &Screen{repo: repo, open: make(map[string]bool)}
}

// Init runs the three progress queries side by side.
func (s *Screen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		var p progress
		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() (err error) {
			p.topics, err = repo.AccuracyByTopic(ctx)
			return err
		})
		g.Go(func() (err error) {
			p.recent, err = repo.QueryAnswers(ctx, store.QueryOpts{Limit: recentLimit})
			return err
		})
		g.Go(func() (err error) {
			p.sessions, err = repo.SessionCount(ctx)
			return err
		})
		err := g.Wait()
		return loadedMsg{progress: p, err: err}
	}
}

func (s *Screen) Title() string { return "My Progress" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "Enter", Description: "Recent answers"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.state = msg.err.Error()
			return s, nil
		}
		s.data, s.state = msg.progress, "ready"
		s.byTopic = make(map[string][]store.AnswerEvent)
		for _, a := range msg.recent {
			s.byTopic[a.Topic] = append(s.byTopic[a.Topic], a)
		}

	case tea.KeyPressMsg:
		last := len(s.data.topics) - 1
		switch msg.String() {
		case "up", "k":
			s.selected = max(0, s.selected-1)
		case "down", "j":
			s.selected = max(0, min(last, s.selected+1))
		case "enter", "space":
			if last >= 0 {
				t := s.data.topics[s.selected].Topic
				s.open[t] = !s.open[t]
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	note := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).MarginTop(2)
	switch {
	case s.state == "":
		return note.Inherit(theme.Label).Render("Loading progress...")
	case s.state != "ready":
		return note.Foreground(theme.Error).Render("Error: " + s.state)
	case len(s.data.topics) == 0:
		return note.Inherit(theme.Hint).Render("No quiz answers yet. Open a section and try its quiz!")
	}

	bars := make([]components.Bar, len(s.data.topics))
	for i, t := range s.data.topics {
		bars[i] = components.Bar{
			Label: course.Topic(t.Topic).Title(),
			Value: int(t.Ratio() * 100),
			Text:  fmt.Sprintf("%d/%d", t.Correct, t.Answered),
		}
	}
	rows := strings.Split(components.NewBarChart(bars, 100, components.ContentWidth(width)).View(), "\n")

	lines := []string{"", theme.Label.Render(fmt.Sprintf("%d sessions recorded", s.data.sessions)), ""}
	for i, t := range s.data.topics {
		cursor := "  "
		if i == s.selected {
			cursor = theme.Selected.Render("▸ ")
		}
		lines = append(lines, cursor+rows[i])
		if s.open[t.Topic] {
			lines = append(lines, s.recentLines(t.Topic)...)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Screen) recentLines(topic string) []string {
	answers := s.byTopic[topic]
	if len(answers) == 0 {
		return []string{theme.Hint.Render("    No recent answers")}
	}
	out := make([]string, len(answers))
	for i, a := range answers {
		mark := theme.Correct.Render("✔")
		if !a.Correct {
			mark = theme.Incorrect.Render("✘")
		}
		out[i] = fmt.Sprintf("    %s %s  %s option %d",
			mark, theme.Label.Render(a.Timestamp.Format("Jan 02 15:04")), a.ItemID, a.Chosen+1)
	}
	return out
}
