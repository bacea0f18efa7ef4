package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Checkbox is a boolean toggle.
type Checkbox struct {
	Label   string
	Checked bool
	name    string
}

var _ Field = Checkbox{}

// NewCheckbox creates a checkbox.
func NewCheckbox(name, label string, checked bool) Checkbox {
	return Checkbox{Label: label, Checked: checked, name: name}
}

func (c Checkbox) Name() string  { return c.name }
func (c Checkbox) Value() string { return strconv.FormatBool(c.Checked) }

func (c Checkbox) Update(msg tea.Msg) (Field, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "space", "enter", "x", "left", "right":
			c.Checked = !c.Checked
		}
	}
	return c, nil
}

func (c Checkbox) View(focused bool, _ int) string {
	box := "[ ] "
	if c.Checked {
		box = "[x] "
	}
	if focused {
		return theme.Selected.Render("▸ " + box + c.Label)
	}
	return theme.Unselected.Render("  " + box + c.Label)
}
