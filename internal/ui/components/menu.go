package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// MenuKeys are the bindings a Menu responds to besides the digits 1-9.
type MenuKeys struct {
	Up, Down, Choose key.Binding
}

var DefaultMenuKeys = MenuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
}

// Menu is a vertical list of actions. Moving past either end wraps, and
// a digit picks the matching item at once.
type Menu struct {
	Items    []MenuItem
	Selected int
	Keys     MenuKeys
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items, Keys: DefaultMenuKeys}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	n := len(m.Items)
	switch {
	case key.Matches(k, m.Keys.Up):
		m.Selected = (m.Selected - 1 + n) % n
	case key.Matches(k, m.Keys.Down):
		m.Selected = (m.Selected + 1) % n
	case key.Matches(k, m.Keys.Choose):
		return m, m.run()
	default:
		if d := k.String(); len(d) == 1 && d[0] >= '1' && d[0] <= '9' && int(d[0]-'1') < n {
			m.Selected = int(d[0] - '1')
			return m, m.run()
		}
	}
	return m, nil
}

func (m Menu) run() tea.Cmd {
	if act := m.Items[m.Selected].Action; act != nil {
		return act()
	}
	return nil
}

// View draws the items as bordered buttons of the given width, or as a
// numbered list when compact.
func (m Menu) View(width int, compact bool) string {
	rows := make([]string, len(m.Items))
	for i, it := range m.Items {
		on := i == m.Selected
		if compact {
			rows[i] = listRow(i, it.Label, on)
		} else {
			rows[i] = button(it.Label, on, width)
		}
	}
	return strings.Join(rows, "\n")
}

func listRow(i int, label string, on bool) string {
	text := fmt.Sprintf(" %d  %s ", i+1, label)
	if !on {
		return theme.Body.Render(" " + text)
	}
	return lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Gold).Bold(true).Render("▸" + text)
}

func button(label string, on bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if on {
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Gold).
			BorderForeground(theme.Gold).
			Render("▸ " + label)
	}
	return style.Foreground(theme.Text).BorderForeground(theme.Border).Render(label)
}
