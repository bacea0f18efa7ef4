package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Button runs OnPress when enter is pressed while focused.
type Button struct {
	Label    string
	Disabled bool
	OnPress  func() tea.Cmd
	name     string
}

var _ Field = Button{}

// NewButton creates a button.
func NewButton(name, label string, onPress func() tea.Cmd) Button {
	return Button{Label: label, OnPress: onPress, name: name}
}

func (b Button) Name() string  { return b.name }
func (b Button) Value() string { return "" }

func (b Button) Update(msg tea.Msg) (Field, tea.Cmd) {
	if b.Disabled || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			return b, b.OnPress()
		}
	}
	return b, nil
}

func (b Button) View(focused bool, _ int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1)
	label := b.Label
	switch {
	case b.Disabled:
		style = style.Foreground(theme.TextDim)
	case focused:
		style = style.
			Foreground(theme.BgDark).
			Background(theme.Gold).
			BorderForeground(theme.Gold).
			Bold(true)
		label = "▸ " + label
	}
	return style.Render(label)
}
