package components

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// MultiSelect picks any subset of options. Left/right move the cursor and
// space toggles. Value joins the chosen options with commas in option order.
type MultiSelect struct {
	Label   string
	Options []string
	Chosen  []bool
	Cursor  int
	name    string
}

var _ Field = MultiSelect{}

// NewMultiSelect creates a multi-select with the given options pre-chosen.
func NewMultiSelect(name, label string, options, chosen []string) MultiSelect {
	m := MultiSelect{Label: label, Options: options, Chosen: make([]bool, len(options)), name: name}
	for i, o := range options {
		m.Chosen[i] = slices.Contains(chosen, o)
	}
	return m
}

func (m MultiSelect) Name() string { return m.name }

func (m MultiSelect) Value() string {
	return strings.Join(m.Selected(), ",")
}

// Selected returns the chosen options in option order.
func (m MultiSelect) Selected() []string {
	var out []string
	for i, o := range m.Options {
		if m.Chosen[i] {
			out = append(out, o)
		}
	}
	return out
}

func (m MultiSelect) Update(msg tea.Msg) (Field, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "right", "l":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", "enter", "x":
		chosen := slices.Clone(m.Chosen)
		chosen[m.Cursor] = !chosen[m.Cursor]
		m.Chosen = chosen
	}
	return m, nil
}

func (m MultiSelect) View(focused bool, _ int) string {
	lines := []string{theme.Label.Render(m.Label)}
	for i, o := range m.Options {
		box := "[ ] "
		if m.Chosen[i] {
			box = "[x] "
		}
		line := "  " + box + o
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if focused && i == m.Cursor {
			line = "▸ " + box + o
			style = theme.Selected
		} else if !m.Chosen[i] {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}
