package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/quiz"
	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screens/page"
	"github.com/abhisek/stratiz/internal/session"
	"github.com/abhisek/stratiz/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (f *fakeEvents) AppendAnswer(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestRevealKeyRecordsPriorAnswers(t *testing.T) {
	sess := session.New()
	events := &fakeEvents{}
	m := newAppModel(Options{Session: sess, Events: events, SkipIntro: true})

	item := quiz.Default().Items()[0]
	sess.Answer(item.ID, item.CorrectIndex)

	m, cmd := update(m, key('r'))
	if !sess.Revealed() {
		t.Fatal("r should reveal answers")
	}
	if cmd == nil {
		t.Fatal("expected a command recording the reveal")
	}
	if msg := cmd().(eventsRecordedMsg); msg.Err != nil {
		t.Fatalf("record: %v", msg.Err)
	}

	if len(events.answers) != 1 || events.answers[0].ItemID != item.ID || !events.answers[0].Correct || events.answers[0].Revealed {
		t.Errorf("answers = %+v", events.answers)
	}
	if len(events.sessions) != 1 || events.sessions[0].Action != store.SessionReveal || events.sessions[0].Correct != 1 {
		t.Errorf("sessions = %+v", events.sessions)
	}

	// A second press changes nothing.
	if _, cmd := update(m, key('r')); cmd != nil {
		t.Error("second reveal should be a no-op")
	}
}

func TestRevealWithoutStore(t *testing.T) {
	sess := session.New()
	m := newAppModel(Options{Session: sess, SkipIntro: true})
	if _, cmd := update(m, key('r')); cmd != nil {
		t.Error("no store, no command")
	}
	if !sess.Revealed() {
		t.Error("reveal should work without a store")
	}
}

func TestRevealKeyIgnoredWhileTyping(t *testing.T) {
	sess := session.New()
	m := newAppModel(Options{Session: sess, SkipIntro: true})

	macro, _ := content.Default().Section("macro")
	p := page.New(macro, page.Deps{Session: sess, Bank: quiz.Default()})
	m, _ = update(m, router.PushScreenMsg{Screen: p})
	if !p.CapturingInput() {
		t.Fatal("macro page should open on the factor text field")
	}

	update(m, key('r'))
	if sess.Revealed() {
		t.Error("r typed into a text field must not reveal answers")
	}
}

func TestRevealKeyIgnoredOnSplash(t *testing.T) {
	sess := session.New()
	m := newAppModel(Options{Session: sess})
	m, cmd := update(m, key('r'))
	if sess.Revealed() {
		t.Error("splash key press should not reveal")
	}
	if cmd == nil {
		t.Fatal("splash should hand over to home")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}

func TestEscPopsToHome(t *testing.T) {
	m := newAppModel(Options{SkipIntro: true})
	m, _ = update(m, router.PushScreenMsg{Screen: page.New(content.Default().Sections[0], page.Deps{Session: m.opts.Session, Bank: m.opts.Bank})})
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d", m.router.Depth())
	}
	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestHeaderShowsScore(t *testing.T) {
	sess := session.New()
	m := newAppModel(Options{Session: sess, SkipIntro: true})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	item := quiz.Default().Items()[0]
	sess.Answer(item.ID, item.CorrectIndex)
	if view := m.render(); !strings.Contains(view, "1 answered") {
		t.Errorf("header missing answered count")
	}

	sess.Reveal()
	if view := m.render(); !strings.Contains(view, "1/1 correct") {
		t.Errorf("header missing score after reveal")
	}
}

func TestHomeKeyUnwindsAndHeaderShowsTrail(t *testing.T) {
	m := newAppModel(Options{SkipIntro: true})
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	sec, _ := content.Default().Section("industry")
	m, _ = update(m, router.PushScreenMsg{Screen: page.New(sec, page.Deps{Session: m.opts.Session, Bank: m.opts.Bank})})

	if view := m.render(); !strings.Contains(view, "Home › "+sec.Title) {
		t.Errorf("header missing trail")
	}

	_, cmd := update(m, key('H'))
	if cmd == nil {
		t.Fatal("H should go home")
	}
	m, _ = update(m, cmd())
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d after home", m.router.Depth())
	}
}

func TestRunRecordsSessionStartAndEnd(t *testing.T) {
	sess := session.New()
	events := &fakeEvents{}

	var during []string
	err := run(Options{Session: sess, Events: events}, func(m tea.Model) error {
		if _, ok := m.(AppModel); !ok {
			t.Errorf("program got %T", m)
		}
		for _, e := range events.sessions {
			during = append(during, e.Action)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(during) != 1 || during[0] != store.SessionStart {
		t.Errorf("before the program ran: %v", during)
	}
	if len(events.sessions) != 2 || events.sessions[1].Action != store.SessionEnd {
		t.Fatalf("sessions = %+v", events.sessions)
	}
	for _, e := range events.sessions {
		if e.SessionID != sess.ID {
			t.Errorf("session id = %q, want %q", e.SessionID, sess.ID)
		}
	}
}

func TestRunWithoutStoreReportsProgramError(t *testing.T) {
	boom := errors.New("no tty")
	if err := run(Options{}, func(tea.Model) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}
