package components

import tea "charm.land/bubbletea/v2"

// Field is a focusable input bound to one named value. Implementations use
// value receivers and return the updated copy.
type Field interface {
	Name() string
	Value() string
	Update(msg tea.Msg) (Field, tea.Cmd)
	View(focused bool, width int) string
}

// Focuser is implemented by fields that track focus themselves.
type Focuser interface {
	Focus() (Field, tea.Cmd)
	Blur() Field
}

// TextCapturer is implemented by fields that consume printable keys.
type TextCapturer interface {
	CapturesText() bool
}

// Form is a focus ring over fields. Tab and the arrow keys up/down move
// focus; every other message goes to the focused field.
type Form struct {
	fields []Field
	focus  int
}

// NewForm creates a form focused on its first field.
func NewForm(fields ...Field) Form {
	return Form{fields: fields}
}

// Init focuses the first field.
func (f Form) Init() (Form, tea.Cmd) {
	return f.setFocus(0)
}

// Len returns the number of fields.
func (f Form) Len() int { return len(f.fields) }

// Focused returns the index of the focused field.
func (f Form) Focused() int { return f.focus }

// Field returns the field at i.
func (f Form) Field(i int) Field { return f.fields[i] }

// Set replaces the field at i, keeping focus state.
func (f Form) Set(i int, fld Field) Form {
	fields := make([]Field, len(f.fields))
	copy(fields, f.fields)
	fields[i] = fld
	f.fields = fields
	return f
}

// Values returns every field value keyed by field name.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		out[fld.Name()] = fld.Value()
	}
	return out
}

// CapturesText reports whether the focused field consumes printable keys.
func (f Form) CapturesText() bool {
	if len(f.fields) == 0 {
		return false
	}
	tc, ok := f.fields[f.focus].(TextCapturer)
	return ok && tc.CapturesText()
}

// Update routes msg and reports the index of a field whose value changed,
// or -1.
func (f Form) Update(msg tea.Msg) (Form, int, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, -1, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			f, cmd := f.setFocus((f.focus + 1) % len(f.fields))
			return f, -1, cmd
		case "shift+tab", "up":
			f, cmd := f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
			return f, -1, cmd
		}
	}

	before := f.fields[f.focus].Value()
	updated, cmd := f.fields[f.focus].Update(msg)
	f = f.Set(f.focus, updated)

	changed := -1
	if updated.Value() != before {
		changed = f.focus
	}
	return f, changed, cmd
}

// View renders field i.
func (f Form) View(i, width int) string {
	return f.fields[i].View(i == f.focus, width)
}

func (f Form) setFocus(i int) (Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	if fc, ok := f.fields[f.focus].(Focuser); ok && f.focus != i {
		f = f.Set(f.focus, fc.Blur())
	}
	f.focus = i
	if fc, ok := f.fields[i].(Focuser); ok {
		fld, cmd := fc.Focus()
		return f.Set(i, fld), cmd
	}
	return f, nil
}
