// Package page implements the section screens: each exercise of a course
// section bound to the rule evaluator, followed by the section quiz.
package page

import (
	"context"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/coach"
	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/quiz"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/session"
	"github.com/abhisek/stratiz/internal/store"
	"github.com/abhisek/stratiz/internal/ui/components"
	"github.com/abhisek/stratiz/internal/ui/layout"
)

// Deps are the collaborators a page needs. Coach and Events may be nil.
type Deps struct {
	Session *session.State
	Bank    *quiz.Bank
	Coach   *coach.Service
	Events  store.EventRepo
	Log     *zap.Logger
}

type blockKind int

const (
	blockTopic blockKind = iota
	blockGroups
	blockStory
)

// storyKey stores the adaptation story with the topic selections so the
// text survives leaving the page.
const storyKey = course.Topic(content.ExerciseStory)

const textLimit = 280

type block struct {
	kind    blockKind
	topic   course.Topic
	heading string
	fields  []int
}

type evaluation struct {
	result course.Result
	err    error
}

// Screen is one course section.
type Screen struct {
	deps    Deps
	section content.Section
	blocks  []block
	form    components.Form
	owner   []int // block index per form field, -1 for quiz cards
	results map[course.Topic]evaluation

	coachFor coach.Exercise
	feedback map[coach.Exercise]*coach.Feedback
	coachErr map[coach.Exercise]string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
	_ screen.InputCapturer   = (*Screen)(nil)
)

// New builds the page for section. Widgets start from the session's last
// selection on each topic, falling back to the topic defaults.
func New(section content.Section, deps Deps) *Screen {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	s := &Screen{
		deps:     deps,
		section:  section,
		results:  make(map[course.Topic]evaluation),
		feedback: make(map[coach.Exercise]*coach.Feedback),
		coachErr: make(map[coach.Exercise]string),
	}

	var fields []components.Field
	add := func(bi int, fs ...components.Field) {
		for _, f := range fs {
			s.blocks[bi].fields = append(s.blocks[bi].fields, len(fields))
			fields = append(fields, f)
			s.owner = append(s.owner, bi)
		}
	}

	for _, ex := range section.Exercises {
		bi := len(s.blocks)
		switch ex.Topic {
		case content.ExerciseGroups:
			s.blocks = append(s.blocks, block{kind: blockGroups, heading: ex.Heading})
		case content.ExerciseStory:
			s.blocks = append(s.blocks, block{kind: blockStory, heading: ex.Heading})
			add(bi, s.storyFields()...)
		default:
			t := course.Topic(ex.Topic)
			s.blocks = append(s.blocks, block{kind: blockTopic, topic: t, heading: ex.Heading})
			fs, err := s.topicFields(t)
			if err != nil {
				deps.Log.Error("build exercise", zap.String("topic", ex.Topic), zap.Error(err))
				s.results[t] = evaluation{err: err}
				continue
			}
			add(bi, fs...)
		}
	}

	if deps.Bank != nil {
		for _, it := range deps.Bank.ForTopics(section.QuizTopics...) {
			chosen, _ := deps.Session.Chosen(it.ID)
			fields = append(fields, components.NewQuizCard(it, chosen))
			s.owner = append(s.owner, -1)
		}
	}

	s.form = components.NewForm(fields...)
	for bi, b := range s.blocks {
		if b.kind == blockTopic {
			if b.topic == course.TopicValueStick {
				s.linkStick(bi)
			}
			s.evaluate(bi)
		}
	}
	return s
}

func (s *Screen) topicFields(t course.Topic) ([]components.Field, error) {
	dims, err := course.Dimensions(t)
	if err != nil {
		return nil, err
	}
	sel, _ := s.deps.Session.Selection(t)
	if sel, err = course.WithDefaults(t, sel); err != nil {
		return nil, err
	}

	fields := make([]components.Field, 0, len(dims)+1)
	for _, d := range dims {
		name := fieldName(string(t), d.Name)
		label := dimensionLabel(name)
		v := sel[d.Name]
		switch d.Kind {
		case course.KindChoice:
			fields = append(fields, components.NewSelect(name, label, d.Values, v))
		case course.KindNumber:
			n, _ := strconv.Atoi(v)
			sl := components.NewSlider(name, label, d.Range, n)
			if t == course.TopicLifeCycle {
				sl.Names = stageNames()
			}
			fields = append(fields, sl)
		case course.KindBool:
			b, _ := strconv.ParseBool(v)
			fields = append(fields, components.NewCheckbox(name, label, b))
		case course.KindMulti:
			fields = append(fields, components.NewMultiSelect(name, label, d.Values, splitList(v)))
		case course.KindText:
			fields = append(fields, components.NewTextInput(name, label, "", v, textLimit))
		}
	}

	if t == course.TopicBlueOcean && s.deps.Coach != nil {
		fields = append(fields, s.coachButton(coach.ExerciseBlueOcean, "Ask the coach about my Blue Ocean move"))
	}
	return fields, nil
}

func (s *Screen) storyFields() []components.Field {
	sel, _ := s.deps.Session.Selection(storyKey)
	fields := []components.Field{}
	for _, dim := range []string{"sensing", "seizing", "reconfiguring"} {
		name := fieldName(content.ExerciseStory, dim)
		fields = append(fields, components.NewTextInput(name, dimensionLabel(name), "not written yet", sel[dim], textLimit))
	}
	if s.deps.Coach != nil {
		fields = append(fields, s.coachButton(coach.ExerciseStory, "Ask the coach about my story"))
	}
	return fields
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// values collects the form values under prefix, keyed by dimension.
func (s *Screen) values(prefix string) course.Selection {
	sel := course.Selection{}
	prefix += "."
	for i := range s.form.Len() {
		f := s.form.Field(i)
		if dim, ok := strings.CutPrefix(f.Name(), prefix); ok {
			sel[dim] = f.Value()
		}
	}
	return sel
}

// evaluate reruns the evaluator for a topic block and remembers the
// selection in the session.
func (s *Screen) evaluate(bi int) {
	t := s.blocks[bi].topic
	sel := s.values(string(t))
	res, err := course.Evaluate(t, sel)
	if err != nil {
		s.deps.Log.Debug("evaluate", zap.String("topic", string(t)), zap.Error(err))
	}
	s.results[t] = evaluation{result: res, err: err}
	s.deps.Session.SetSelection(t, sel)
}

// linkStick keeps every value stick slider at or above the one below it.
func (s *Screen) linkStick(bi int) {
	idx := s.blocks[bi].fields
	if len(idx) != 4 {
		return
	}
	var vals [4]int
	for i, fi := range idx {
		vals[i] = s.form.Field(fi).(components.Slider).Val
	}
	stick := course.ClampStick(course.Stick{SupplierCost: vals[0], Cost: vals[1], Price: vals[2], WTP: vals[3]})
	clamped := [4]int{stick.SupplierCost, stick.Cost, stick.Price, stick.WTP}
	for i, r := range stick.Ranges() {
		sl := s.form.Field(idx[i]).(components.Slider)
		s.form = s.form.Set(idx[i], sl.WithRange(r).WithValue(clamped[i]))
	}
}

func (s *Screen) Init() tea.Cmd {
	var cmd tea.Cmd
	s.form, cmd = s.form.Init()
	return cmd
}

func (s *Screen) Title() string {
	return s.section.Title
}

// CapturingInput reports whether a text field has focus.
func (s *Screen) CapturingInput() bool {
	return s.form.CapturesText()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.CapturingInput() {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Shift+Tab", Description: "Previous"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Change"},
		{Key: "r", Description: "Reveal answers"},
		{Key: "Esc", Description: "Back"},
		{Key: "H", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coachTickMsg:
		return s, s.pollCoach()

	case answerSavedMsg:
		if msg.Err != nil {
			s.deps.Log.Warn("record answer", zap.Error(msg.Err))
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.form, _, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	focus := s.form.Focused()
	form, changed, cmd := s.form.Update(msg)
	s.form = form
	if s.form.Len() == 0 {
		return s, cmd
	}

	if s.owner[focus] < 0 && s.form.Focused() == focus && (changed == focus || isPickKey(msg)) {
		return s, tea.Batch(cmd, s.answer(focus))
	}
	if changed >= 0 {
		s.onChange(changed)
	}
	return s, cmd
}

func isPickKey(msg tea.KeyPressMsg) bool {
	k := msg.String()
	if k == "enter" || k == "space" {
		return true
	}
	_, err := strconv.Atoi(k)
	return err == nil
}

func (s *Screen) onChange(fi int) {
	bi := s.owner[fi]
	if bi < 0 {
		return
	}
	switch b := s.blocks[bi]; b.kind {
	case blockTopic:
		if b.topic == course.TopicValueStick {
			s.linkStick(bi)
		}
		s.evaluate(bi)
	case blockStory:
		s.deps.Session.SetSelection(storyKey, s.values(content.ExerciseStory))
	}
}

// answer stores the learner's choice on quiz card fi. Once answers are
// revealed every choice is also logged.
func (s *Screen) answer(fi int) tea.Cmd {
	card, ok := s.form.Field(fi).(components.QuizCard)
	if !ok {
		return nil
	}
	s.deps.Session.Answer(card.Item.ID, card.Chosen)
	if s.deps.Events == nil || !s.deps.Session.Revealed() {
		return nil
	}
	return RecordAnswer(s.deps.Events, store.AnswerEventData{
		SessionID: s.deps.Session.ID,
		ItemID:    card.Item.ID,
		Topic:     string(card.Item.Topic),
		Chosen:    card.Chosen,
		Correct:   card.Item.IsCorrect(card.Chosen),
		Revealed:  true,
	})
}

// RecordAnswer appends a quiz answer to the event log.
func RecordAnswer(repo store.EventRepo, data store.AnswerEventData) tea.Cmd {
	return func() tea.Msg {
		return answerSavedMsg{Err: repo.AppendAnswer(context.Background(), data)}
	}
}
