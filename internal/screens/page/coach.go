package page

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/coach"
	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/ui/components"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

const coachPollInterval = 150 * time.Millisecond

// coachTickMsg polls the coach service for a finished review.
type coachTickMsg time.Time

// answerSavedMsg reports the result of logging a quiz answer.
type answerSavedMsg struct {
	Err error
}

func coachTick() tea.Cmd {
	return tea.Tick(coachPollInterval, func(t time.Time) tea.Msg {
		return coachTickMsg(t)
	})
}

func (s *Screen) coachButton(ex coach.Exercise, label string) components.Button {
	return components.NewButton("coach."+string(ex), label, func() tea.Cmd {
		return s.requestCoach(ex)
	})
}

func (s *Screen) requestCoach(ex coach.Exercise) tea.Cmd {
	if s.deps.Coach == nil {
		return nil
	}
	in := coach.Input{Exercise: ex}
	switch ex {
	case coach.ExerciseBlueOcean:
		sel := s.values(string(course.TopicBlueOcean))
		ind, err := course.ParseBlueOceanIndustry(sel["industry"])
		if err != nil {
			s.coachErr[ex] = err.Error()
			return nil
		}
		in.Industry = ind
		in.Grid = course.Grid{
			Raise:     sel["raise"],
			Reduce:    sel["reduce"],
			Create:    sel["create"],
			Eliminate: sel["eliminate"],
		}
		if in.Grid.Empty() {
			s.coachErr[ex] = coach.ShortError(coach.ErrEmpty)
			return nil
		}
	case coach.ExerciseStory:
		sel := s.values(content.ExerciseStory)
		in.Story = course.Story{
			Sensing:       sel["sensing"],
			Seizing:       sel["seizing"],
			Reconfiguring: sel["reconfiguring"],
		}
		if in.Story.Empty() {
			s.coachErr[ex] = coach.ShortError(coach.ErrEmpty)
			return nil
		}
	}

	delete(s.coachErr, ex)
	delete(s.feedback, ex)
	s.coachFor = ex
	s.deps.Coach.Request(context.Background(), in)
	return coachTick()
}

func (s *Screen) pollCoach() tea.Cmd {
	if s.deps.Coach == nil || s.coachFor == "" {
		return nil
	}
	out, ready, busy := s.deps.Coach.Poll()
	if !ready {
		if busy {
			return coachTick()
		}
		s.coachFor = ""
		return nil
	}

	ex := s.coachFor
	s.coachFor = ""
	if out.Err != nil {
		s.coachErr[ex] = coach.ShortError(out.Err)
		return nil
	}
	s.feedback[ex] = out.Feedback
	return nil
}

func (s *Screen) renderCoach(ex coach.Exercise, cw int) string {
	if s.deps.Coach == nil {
		return ""
	}
	if s.coachFor == ex {
		return theme.Hint.Render("The coach is reading your answer...")
	}
	if msg, ok := s.coachErr[ex]; ok {
		return theme.Incorrect.Render(msg)
	}
	fb := s.feedback[ex]
	if fb == nil {
		return ""
	}

	var b strings.Builder
	for _, str := range fb.Strengths {
		b.WriteString("+ " + str + "\n")
	}
	for _, g := range fb.Gaps {
		b.WriteString("- " + g + "\n")
	}
	if fb.NextStep != "" {
		b.WriteString("Next: " + fb.NextStep)
	}
	return components.InfoCard("Coach: "+string(fb.Verdict), strings.TrimRight(b.String(), "\n"), cw)
}
