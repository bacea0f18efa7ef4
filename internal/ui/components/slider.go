package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

// Slider is a bounded integer input. Left/right move by Step, shift moves
// ten steps, home/end jump to the bounds.
type Slider struct {
	Label string
	Range course.Range
	Val   int
	Step  int
	// Names optionally labels each value, e.g. life cycle stages.
	Names map[int]string
	name  string
}

var _ Field = Slider{}

// NewSlider creates a slider with value clamped into r.
func NewSlider(name, label string, r course.Range, value int) Slider {
	return Slider{Label: label, Range: r, Val: r.Clamp(value), Step: 1, name: name}
}

// WithRange returns the slider with new bounds, clamping its value.
func (s Slider) WithRange(r course.Range) Slider {
	s.Range = r
	s.Val = r.Clamp(s.Val)
	return s
}

// WithValue returns the slider set to v, clamped.
func (s Slider) WithValue(v int) Slider {
	s.Val = s.Range.Clamp(v)
	return s
}

func (s Slider) Name() string  { return s.name }
func (s Slider) Value() string { return strconv.Itoa(s.Val) }

func (s Slider) Update(msg tea.Msg) (Field, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	step := s.Step
	if step < 1 {
		step = 1
	}
	switch kmsg.String() {
	case "left", "h":
		s.Val -= step
	case "right", "l":
		s.Val += step
	case "shift+left", "H":
		s.Val -= 10 * step
	case "shift+right", "L":
		s.Val += 10 * step
	case "home":
		s.Val = s.Range.Min
	case "end":
		s.Val = s.Range.Max
	}
	s.Val = s.Range.Clamp(s.Val)
	return s, nil
}

func (s Slider) View(focused bool, width int) string {
	valueText := strconv.Itoa(s.Val)
	if n, ok := s.Names[s.Val]; ok {
		valueText = fmt.Sprintf("%d · %s", s.Val, n)
	}
	bounds := fmt.Sprintf("[%d–%d]", s.Range.Min, s.Range.Max)

	trackWidth := width - lipgloss.Width(bounds) - 4
	if trackWidth > 40 {
		trackWidth = 40
	}
	if trackWidth < 8 {
		trackWidth = 8
	}

	pos := 0
	if span := s.Range.Max - s.Range.Min; span > 0 {
		pos = (s.Val - s.Range.Min) * (trackWidth - 1) / span
	}

	knobStyle := lipgloss.NewStyle().Foreground(theme.Text)
	fillStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	prefix := "  "
	if focused {
		knobStyle = lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
		prefix = theme.Selected.Render("▸ ")
	}
	track := fillStyle.Render(strings.Repeat("━", pos)) +
		knobStyle.Render("●") +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", trackWidth-pos-1))

	header := theme.Label.Render(s.Label) + "  " + knobStyle.Render(valueText)
	return header + "\n" + prefix + track + " " + theme.Hint.Render(bounds)
}
