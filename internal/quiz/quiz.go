// Package quiz holds the inline multiple-choice questions and the rules for
// checking and revealing answers.
package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/stratiz/internal/course"
)

// ErrUnknownItem is returned when a quiz item ID is not in the bank.
var ErrUnknownItem = errors.New("unknown quiz item")

// Item is a single multiple-choice question with a fixed answer key.
type Item struct {
	ID           string       `yaml:"id" json:"id"`
	Topic        course.Topic `yaml:"topic" json:"topic"`
	Question     string       `yaml:"question" json:"question"`
	Options      []string     `yaml:"options" json:"options"`
	CorrectIndex int          `yaml:"correct" json:"correct"`
}

// IsCorrect reports whether index is the correct option. Out-of-range
// indices are never correct.
func (it Item) IsCorrect(index int) bool {
	return index == it.CorrectIndex
}

// CorrectAnswer returns the text of the correct option.
func (it Item) CorrectAnswer() string {
	if it.CorrectIndex < 0 || it.CorrectIndex >= len(it.Options) {
		return ""
	}
	return it.Options[it.CorrectIndex]
}

// Check is IsCorrect with an explicit contract: index must name an option.
func (it Item) Check(index int) (bool, error) {
	if index < 0 || index >= len(it.Options) {
		return false, fmt.Errorf("%w: %s option %d not in [0, %d)", course.ErrContract, it.ID, index, len(it.Options))
	}
	return it.IsCorrect(index), nil
}

// Feedback is what the learner sees under a question.
type Feedback struct {
	Shown   bool
	Correct bool
	Message string
}

// FeedbackFor returns the feedback for a chosen option. Nothing is shown
// until answers are revealed; correctness never depends on revealed.
func FeedbackFor(it Item, chosen int, revealed bool) Feedback {
	if !revealed {
		return Feedback{}
	}
	if it.IsCorrect(chosen) {
		return Feedback{Shown: true, Correct: true, Message: "Correct!"}
	}
	return Feedback{Shown: true, Message: "Not quite – correct answer: " + it.CorrectAnswer()}
}
