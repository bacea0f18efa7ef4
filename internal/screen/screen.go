// Package screen defines what the router stacks: anything that can update
// on a message and draw itself into the space between header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View draws into width×height cells. A height of zero means
	// unbounded.
	View(width, height int) string
	// Title is the screen's crumb in the header trail. Empty hides it.
	Title() string
}

// KeyHintProvider replaces the app's default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens with text fields. While
// CapturingInput is true, printable keys belong to the screen and the
// app's single-letter shortcuts are off.
type InputCapturer interface {
	CapturingInput() bool
}

// Hints returns s's own footer hints, or fallback when it has none.
func Hints(s Screen, fallback []layout.KeyHint) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return fallback
}

// Typing reports whether s currently owns printable keys.
func Typing(s Screen) bool {
	c, ok := s.(InputCapturer)
	return ok && c.CapturingInput()
}
