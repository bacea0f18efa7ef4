// Package session holds the per-learner state of one run of the companion:
// the reveal flag, quiz answers and the last selection on each page.
package session

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/quiz"
)

// State is owned by one session. Screens receive it explicitly; there is no
// package-level instance.
type State struct {
	ID        string
	StartedAt time.Time

	mu         sync.RWMutex
	revealed   bool
	revealedAt time.Time
	answers    map[string]int
	selections map[course.Topic]course.Selection
}

// New returns a fresh, isolated session.
func New() *State {
	return NewAt(time.Now())
}

// NewAt returns a fresh session started at t.
func NewAt(t time.Time) *State {
	return &State{
		ID:         uuid.NewString(),
		StartedAt:  t,
		answers:    make(map[string]int),
		selections: make(map[course.Topic]course.Selection),
	}
}

// Reveal turns on quiz feedback for the rest of the session. It reports
// whether this call changed the flag. There is no way to hide answers again.
func (s *State) Reveal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revealed {
		return false
	}
	s.revealed = true
	s.revealedAt = time.Now()
	return true
}

// Revealed reports whether quiz feedback is visible.
func (s *State) Revealed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revealed
}

// RevealedAt returns when answers were revealed, or the zero time.
func (s *State) RevealedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revealedAt
}

// Answer records the latest chosen option for a quiz item.
func (s *State) Answer(itemID string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[itemID] = index
}

// Chosen returns the recorded option for a quiz item.
func (s *State) Chosen(itemID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.answers[itemID]
	return i, ok
}

// Score counts answered and correct items against a bank. Items the bank
// does not know are ignored.
func (s *State) Score(b *quiz.Bank) (correct, answered int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, chosen := range s.answers {
		it, err := b.Item(id)
		if err != nil {
			continue
		}
		answered++
		if it.IsCorrect(chosen) {
			correct++
		}
	}
	return correct, answered
}

// Selection returns a copy of the last selection made on a topic.
func (s *State) Selection(t course.Topic) (course.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[t]
	return maps.Clone(sel), ok
}

// SetSelection stores the current selection for a topic.
func (s *State) SetSelection(t course.Topic, sel course.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[t] = maps.Clone(sel)
}
