package components

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Select cycles through a fixed list of options with left/right.
type Select struct {
	Label   string
	Options []string
	Index   int
	name    string
}

var _ Field = Select{}

// NewSelect creates a select positioned on value, or on the first option
// if value is not one of options.
func NewSelect(name, label string, options []string, value string) Select {
	idx := slices.Index(options, value)
	if idx < 0 {
		idx = 0
	}
	return Select{Label: label, Options: options, Index: idx, name: name}
}

func (s Select) Name() string { return s.name }

func (s Select) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

func (s Select) Update(msg tea.Msg) (Field, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(s.Options) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
	case "right", "l", "space", "enter":
		s.Index = (s.Index + 1) % len(s.Options)
	}
	return s, nil
}

func (s Select) View(focused bool, width int) string {
	label := theme.Label.Render(s.Label)
	value := "‹ " + s.Value() + " ›"
	if focused {
		value = theme.Selected.Render("▸ " + value)
	} else {
		value = lipgloss.NewStyle().Foreground(theme.Text).Render("  " + value)
	}
	return label + "\n" + value
}
