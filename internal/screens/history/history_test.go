package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	topics  []store.TopicAccuracy
	answers []store.AnswerEvent
	err     error
}

func (f *fakeRepo) AccuracyByTopic(context.Context) ([]store.TopicAccuracy, error) {
	return f.topics, f.err
}

func (f *fakeRepo) QueryAnswers(context.Context, store.QueryOpts) ([]store.AnswerEvent, error) {
	return f.answers, nil
}

func (f *fakeRepo) SessionCount(context.Context) (int, error) { return 3, nil }

func load(t *testing.T, repo store.EventRepo) *Screen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	return s
}

func TestProgressLists(t *testing.T) {
	repo := &fakeRepo{
		topics: []store.TopicAccuracy{
			{Topic: "five-forces", Answered: 4, Correct: 3},
			{Topic: "pestel", Answered: 2, Correct: 0},
		},
		answers: []store.AnswerEvent{
			{Timestamp: time.Now(), AnswerEventData: store.AnswerEventData{ItemID: "q_ff_1", Topic: "five-forces", Chosen: 2, Correct: true}},
		},
	}
	s := load(t, repo)

	view := s.View(100, 30)
	for _, want := range []string{"3 sessions recorded", "Five Forces by industry", "3/4", "0/2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "q_ff_1") {
		t.Error("answers should be collapsed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "q_ff_1") {
		t.Error("enter should expand recent answers")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want clamped to 1", s.selected)
	}
}

func TestProgressEmptyAndError(t *testing.T) {
	if view := load(t, &fakeRepo{}).View(80, 20); !strings.Contains(view, "No quiz answers yet") {
		t.Errorf("empty view = %q", view)
	}
	if view := load(t, &fakeRepo{err: errors.New("disk gone")}).View(80, 20); !strings.Contains(view, "disk gone") {
		t.Errorf("error view = %q", view)
	}
}
