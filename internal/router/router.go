// Package router keeps the navigation stack of the TUI. Screens never touch
// the stack directly; they return the commands below and the app feeds the
// resulting messages back through Update.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg returns to the previous screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the current screen, keeping the depth.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// HomeMsg unwinds the stack to its first screen.
type HomeMsg struct{}

// Go returns a command that pushes s.
func Go(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// Back returns a command that pops the current screen.
func Back() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// Swap returns a command that replaces the current screen with s.
func Swap(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}

// Home returns a command that unwinds to the root screen.
func Home() tea.Cmd {
	return func() tea.Msg { return HomeMsg{} }
}

// Router is a stack of screens. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

func (r *Router) push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) pop() {
	if len(r.stack) > 1 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
}

func (r *Router) replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

func (r *Router) home() {
	for len(r.stack) > 1 {
		r.pop()
	}
}

// Active is the screen on top.
func (r *Router) Active() screen.Screen {
	return r.stack[r.top()]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Trail lists the titles from the root to the active screen. Untitled
// screens, like the splash, leave no crumb.
func (r *Router) Trail() []string {
	trail := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		if t := s.Title(); t != "" {
			trail = append(trail, t)
		}
	}
	return trail
}

// Update applies navigation messages and hands every other message to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.push(msg.Screen)
	case PopScreenMsg:
		r.pop()
		return nil
	case ReplaceScreenMsg:
		return r.replace(msg.Screen)
	case HomeMsg:
		r.home()
		return nil
	}

	next, cmd := r.Active().Update(msg)
	r.stack[r.top()] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
