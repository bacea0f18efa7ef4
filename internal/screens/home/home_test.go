package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/content"
	"github.com/abhisek/stratiz/internal/quiz"
	"github.com/abhisek/stratiz/internal/router"
	"github.com/abhisek/stratiz/internal/screens/coursemap"
	"github.com/abhisek/stratiz/internal/screens/page"
	"github.com/abhisek/stratiz/internal/session"
)

func newHome() (*HomeScreen, *session.State) {
	sess := session.New()
	return New(content.Default(), page.Deps{Session: sess, Bank: quiz.Default()}), sess
}

func TestMenuListsEverySection(t *testing.T) {
	h, _ := newHome()
	c := content.Default()

	if got, want := len(h.menu.Items), len(c.Sections)+3; got != want {
		t.Fatalf("menu has %d items, want %d", got, want)
	}
	if h.menu.Items[0].Label != courseMapLabel {
		t.Errorf("first item = %q", h.menu.Items[0].Label)
	}
	for i, sec := range c.Sections {
		if h.menu.Items[i+1].Label != sec.Title {
			t.Errorf("item %d = %q, want %q", i+1, h.menu.Items[i+1].Label, sec.Title)
		}
	}
}

func TestDigitOpensSection(t *testing.T) {
	h, _ := newHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg")
	}
	p, ok := push.Screen.(*page.Screen)
	if !ok {
		t.Fatalf("pushed %T, want *page.Screen", push.Screen)
	}
	if p.Title() != content.Default().Sections[1].Title {
		t.Errorf("opened %q", p.Title())
	}
}

func TestEnterOpensCourseMap(t *testing.T) {
	h, _ := newHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*coursemap.Screen); !ok {
		t.Errorf("pushed %T", push.Screen)
	}
}

func TestStatsBarTracksSession(t *testing.T) {
	h, sess := newHome()

	if view := h.View(100, 40); !strings.Contains(view, "ANSWERS HIDDEN") {
		t.Error("expected hidden answers before reveal")
	}

	item := quiz.Default().Items()[0]
	sess.Answer(item.ID, item.CorrectIndex)
	sess.Reveal()

	view := h.View(100, 40)
	if !strings.Contains(view, "ANSWERS SHOWN") {
		t.Error("expected shown answers after reveal")
	}
	want := "★ 1/" // one correct answer
	if !strings.Contains(view, want) {
		t.Errorf("view missing %q", want)
	}
}

func TestProgressWithoutStoreShowsNotice(t *testing.T) {
	h, _ := newHome()
	idx := len(h.menu.Items) - 2
	if h.menu.Items[idx].Label != progressLabel {
		t.Fatalf("item %d = %q", idx, h.menu.Items[idx].Label)
	}
	push, ok := h.menu.Items[idx].Action()().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != progressLabel {
		t.Errorf("pushed %q", push.Screen.Title())
	}
	if !strings.Contains(push.Screen.View(80, 20), "local database") {
		t.Error("notice should explain the missing store")
	}
}
