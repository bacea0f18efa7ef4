// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/coach"
	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/quiz"
	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screen"
	"github.com/abhisek/stratiz/internal/screens/home"
	"github.com/abhisek/stratiz/internal/screens/page"
	"github.com/abhisek/stratiz/internal/screens/welcome"
	"github.com/abhisek/stratiz/internal/session"
	"github.com/abhisek/stratiz/internal/store"
	"github.com/abhisek/stratiz/internal/ui/layout"
)

// Options configures the TUI. Coach and Events are optional.
type Options struct {
	Session   *session.State
	Bank      *quiz.Bank
	Content   *content.Course
	Coach     *coach.Service
	Events    store.EventRepo
	Log       *zap.Logger
	SkipIntro bool
}

func (o *Options) defaults() {
	if o.Session == nil {
		o.Session = session.New()
	}
	if o.Bank == nil {
		o.Bank = quiz.Default()
	}
	if o.Content == nil {
		o.Content = content.Default()
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	opts.defaults()
	deps := page.Deps{
		Session: opts.Session,
		Bank:    opts.Bank,
		Coach:   opts.Coach,
		Events:  opts.Events,
		Log:     opts.Log.Named("page"),
	}
	homeFactory := func() screen.Screen { return home.New(opts.Content, deps) }

	var initial screen.Screen = welcome.New(homeFactory)
	if opts.SkipIntro {
		initial = homeFactory()
	}
	return AppModel{
		router: router.New(initial),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case eventsRecordedMsg:
		if msg.Err != nil {
			m.opts.Log.Warn("record events", zap.Error(msg.Err))
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		case "H":
			if m.router.Depth() > 1 && !screen.Typing(m.router.Active()) {
				return m, router.Home()
			}
		case "r":
			if m.revealKeyActive() {
				return m, m.reveal()
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// revealKeyActive reports whether "r" means reveal rather than text input
// or skipping the intro.
func (m AppModel) revealKeyActive() bool {
	if _, splash := m.router.Active().(*welcome.WelcomeScreen); splash {
		return false
	}
	return !screen.Typing(m.router.Active())
}

// reveal turns on quiz feedback for the rest of the session.
func (m AppModel) reveal() tea.Cmd {
	s := m.opts.Session
	if !s.Reveal() {
		return nil
	}
	correct, answered := s.Score(m.opts.Bank)
	m.opts.Log.Info("answers revealed",
		zap.String("session", s.ID),
		zap.Int("answered", answered),
		zap.Int("correct", correct),
	)
	if m.opts.Events == nil {
		return nil
	}
	return recordReveal(m.opts.Events, s, m.opts.Bank)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	correct, answered := m.opts.Session.Score(m.opts.Bank)
	header := layout.RenderHeader(layout.Header{
		Trail:    m.router.Trail(),
		Revealed: m.opts.Session.Revealed(),
		Correct:  correct,
		Answered: answered,
		Coach:    m.opts.Coach != nil,
	}, m.width)
	footer := layout.RenderFooter(screen.Hints(m.router.Active(), m.defaultHints()), m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) defaultHints() []layout.KeyHint {
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "H", Description: "Home"},
			{Key: "r", Description: "Reveal answers"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "Reveal answers"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the TUI and blocks until the user quits. The session's start
// and end are recorded when a store is configured.
func Run(opts Options) error {
	return run(opts, func(m tea.Model) error {
		_, err := tea.NewProgram(m).Run()
		return err
	})
}

func run(opts Options, program func(tea.Model) error) error {
	m := newAppModel(opts)
	o := m.opts
	if o.Coach != nil {
		defer o.Coach.Close()
	}

	recordSession(o.Events, o.Session, o.Bank, store.SessionStart, o.Log)
	err := program(m)
	recordSession(o.Events, o.Session, o.Bank, store.SessionEnd, o.Log)
	if err != nil {
		o.Log.Error("program exited", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
