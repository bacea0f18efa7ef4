package page

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/coach"
	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/ui/components"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

var levelScore = map[string]int{
	string(course.LevelLow):    1,
	string(course.LevelMedium): 2,
	string(course.LevelHigh):   3,
}

// View renders the whole page and scrolls it so the focused field stays
// in the upper third of the screen.
func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	wrap := lipgloss.NewStyle().Width(cw)

	var lines []string
	focusLine := 0
	add := func(str string) {
		if str == "" {
			return
		}
		lines = append(lines, strings.Split(str, "\n")...)
	}
	gap := func() { lines = append(lines, "") }

	add(theme.Title.Render(s.section.Title))
	add(wrap.Render(theme.Body.Render(s.section.Intro)))
	gap()

	for bi, b := range s.blocks {
		add(theme.Heading.Render(b.heading))
		for _, fi := range b.fields {
			if fi == s.form.Focused() {
				focusLine = len(lines)
			}
			add(s.form.View(fi, cw))
		}
		add(s.renderBlock(bi, cw))
		gap()
	}

	revealed := s.deps.Session.Revealed()
	if first := len(s.owner) - s.quizCount(); s.quizCount() > 0 {
		add(theme.Heading.Render(s.section.QuizHeading))
		if !revealed {
			add(theme.Hint.Render("Press r to reveal quiz answers."))
		}
		for fi := first; fi < s.form.Len(); fi++ {
			card, ok := s.form.Field(fi).(components.QuizCard)
			if !ok {
				continue
			}
			if fi == s.form.Focused() {
				focusLine = len(lines)
			}
			card.Revealed = revealed
			add(card.View(fi == s.form.Focused(), cw))
			gap()
		}
	}

	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}
	offset := max(0, focusLine-height/3)
	offset = min(offset, len(lines)-height)
	return strings.Join(lines[offset:offset+height], "\n")
}

func (s *Screen) quizCount() int {
	n := 0
	for _, o := range s.owner {
		if o < 0 {
			n++
		}
	}
	return n
}

func (s *Screen) renderBlock(bi, cw int) string {
	b := s.blocks[bi]
	switch b.kind {
	case blockGroups:
		return renderGroups(cw)
	case blockStory:
		return s.renderStory(cw)
	}

	ev, ok := s.results[b.topic]
	if !ok {
		return ""
	}
	if ev.err != nil {
		return theme.Hint.Render(ev.err.Error())
	}
	r := ev.result

	switch b.topic {
	case course.TopicFiveForces:
		bars := make([]components.Bar, 0, len(r.Rows))
		for _, row := range r.Rows {
			bars = append(bars, components.Bar{Label: row.Name, Value: levelScore[row.Value], Text: row.Value})
		}
		return join(
			theme.ToneStyle("info").Render(r.Label),
			components.NewBarChart(bars, 3, cw).View(),
			theme.Hint.Width(cw).Render(r.Explanation),
		)

	case course.TopicValueStick:
		var bars []components.Bar
		total := ""
		for _, row := range r.Rows {
			n, _ := strconv.Atoi(row.Value)
			if row.Name == "Total value created" {
				total = row.Value
				continue
			}
			bars = append(bars, components.Bar{Label: row.Name, Value: n})
		}
		return join(
			theme.ToneStyle("success").Render("Total value created (WTP − WTS): "+total),
			components.NewBarChart(bars, course.WTPMax, cw).View(),
			theme.Hint.Width(cw).Render(r.Explanation),
		)

	case course.TopicVRIO:
		tone := ""
		for _, row := range r.Rows {
			if row.Name == "Tone" {
				tone = row.Value
			}
		}
		return join(
			theme.ToneStyle(tone).Render(r.Label),
			theme.Body.Width(cw).Render(r.Explanation),
		)

	case course.TopicCapability:
		if !s.deps.Session.Revealed() {
			return theme.Hint.Render("Reveal quiz answers (r) to check your tag.")
		}
		style := theme.Correct
		if r.Label != "Correct" {
			style = theme.Incorrect
		}
		return style.Render(r.Label + ": " + r.Explanation)

	case course.TopicBlueOcean:
		return join(renderResult(r, cw), s.renderCoach(coach.ExerciseBlueOcean, cw))
	}
	return renderResult(r, cw)
}

func renderResult(r course.Result, cw int) string {
	parts := []string{theme.ToneStyle("info").Render(r.Label)}
	if r.Explanation != "" {
		parts = append(parts, theme.Body.Width(cw).Render(r.Explanation))
	}
	for _, row := range r.Rows {
		parts = append(parts, theme.Label.Render(row.Name+": ")+theme.Body.Render(row.Value))
	}
	return join(parts...)
}

func renderGroups(cw int) string {
	var points []components.Point
	for _, g := range course.AirlineGroups() {
		points = append(points, components.Point{X: g.Price, Y: g.Service, Label: g.Airline, Series: g.Type})
	}
	order, groups := course.GroupsByType()
	var members []string
	for _, typ := range order {
		var names []string
		for _, g := range groups[typ] {
			names = append(names, g.Airline)
		}
		members = append(members, fmt.Sprintf("%s: %s", typ, strings.Join(names, ", ")))
	}
	return join(
		components.NewScatter(points, course.GroupAxisMin, course.GroupAxisMax, "Price level", "Service level").View(),
		theme.Label.Render(strings.Join(members, "\n")),
		theme.Hint.Width(cw).Render(course.GroupsCaption),
	)
}

func (s *Screen) renderStory(cw int) string {
	sel := s.values("story")
	lines := []string{theme.Label.Render("Dynamic capabilities in action:")}
	for _, l := range course.SummarizeStory(course.Story{
		Sensing:       sel["sensing"],
		Seizing:       sel["seizing"],
		Reconfiguring: sel["reconfiguring"],
	}) {
		text := theme.Body.Render(l.Text)
		if l.Blank {
			text = theme.Hint.Render(l.Text)
		}
		lines = append(lines, "  "+theme.Label.Render(l.Label+": ")+text)
	}
	return join(strings.Join(lines, "\n"), s.renderCoach(coach.ExerciseStory, cw))
}

func join(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}
