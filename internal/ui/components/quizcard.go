package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/stratiz/internal/quiz"
	"github.com/abhisek/stratiz/internal/ui/theme"
)

// QuizCard is a radio-style multiple-choice question. Like a radio group it
// always has a choice, starting on the first option. Feedback is rendered
// only once Revealed is set.
type QuizCard struct {
	Item     quiz.Item
	Chosen   int
	Revealed bool
}

var _ Field = QuizCard{}

// NewQuizCard creates a card for item with chosen preselected.
func NewQuizCard(item quiz.Item, chosen int) QuizCard {
	if chosen < 0 || chosen >= len(item.Options) {
		chosen = 0
	}
	return QuizCard{Item: item, Chosen: chosen}
}

func (q QuizCard) Name() string  { return q.Item.ID }
func (q QuizCard) Value() string { return strconv.Itoa(q.Chosen) }

func (q QuizCard) Update(msg tea.Msg) (Field, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return q, nil
	}
	n := len(q.Item.Options)
	switch key := kmsg.String(); key {
	case "left", "h":
		if q.Chosen > 0 {
			q.Chosen--
		}
	case "right", "l", "space":
		if q.Chosen < n-1 {
			q.Chosen++
		}
	default:
		if d, err := strconv.Atoi(key); err == nil && d >= 1 && d <= n {
			q.Chosen = d - 1
		}
	}
	return q, nil
}

func (q QuizCard) View(focused bool, _ int) string {
	var b strings.Builder

	qStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if focused {
		qStyle = theme.Selected
	}
	b.WriteString(qStyle.Render(q.Item.Question))
	b.WriteString("\n")

	for i, opt := range q.Item.Options {
		radio := "( )"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == q.Chosen {
			radio = "(•)"
			style = lipgloss.NewStyle().Foreground(theme.Text)
			if focused {
				style = theme.Selected
			}
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s %d. %s", radio, i+1, opt)))
		b.WriteString("\n")
	}

	fb := quiz.FeedbackFor(q.Item, q.Chosen, q.Revealed)
	if fb.Shown {
		if fb.Correct {
			b.WriteString(theme.Correct.Render("  ✔ " + fb.Message))
		} else {
			b.WriteString(theme.Incorrect.Render("  ✘ " + fb.Message))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
