package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/stratiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput as a labelled form field.
type TextInput struct {
	Label string
	Model textinput.Model
	name  string
}

var (
	_ Field        = TextInput{}
	_ Focuser      = TextInput{}
	_ TextCapturer = TextInput{}
)

// NewTextInput creates a blurred text input holding value.
func NewTextInput(name, label, placeholder, value string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.SetValue(value)
	return TextInput{Label: label, Model: ti, name: name}
}

func (t TextInput) Name() string  { return t.name }
func (t TextInput) Value() string { return t.Model.Value() }

// CapturesText is true while the input has focus.
func (t TextInput) CapturesText() bool { return t.Model.Focused() }

func (t TextInput) Focus() (Field, tea.Cmd) {
	cmd := t.Model.Focus()
	return t, cmd
}

func (t TextInput) Blur() Field {
	t.Model.Blur()
	return t
}

func (t TextInput) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View(focused bool, width int) string {
	if width > 6 {
		t.Model.SetWidth(width - 4)
	}
	prefix := "  "
	if focused {
		prefix = theme.Selected.Render("▸ ")
	}
	return theme.Label.Render(t.Label) + "\n" + prefix + t.Model.View()
}
