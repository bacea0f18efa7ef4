package app

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/quiz"
	"github.com/abhisek/stratiz/internal/session"
	"github.com/abhisek/stratiz/internal/store"
)

// eventsRecordedMsg reports the result of a background store write.
type eventsRecordedMsg struct {
	Err error
}

// recordReveal logs every answer given before the reveal, then the reveal
// itself.
func recordReveal(repo store.EventRepo, s *session.State, bank *quiz.Bank) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var errs []error
		for _, it := range bank.Items() {
			chosen, ok := s.Chosen(it.ID)
			if !ok {
				continue
			}
			errs = append(errs, repo.AppendAnswer(ctx, store.AnswerEventData{
				SessionID: s.ID,
				ItemID:    it.ID,
				Topic:     string(it.Topic),
				Chosen:    chosen,
				Correct:   it.IsCorrect(chosen),
			}))
		}
		errs = append(errs, repo.AppendSessionEvent(ctx, sessionEvent(s, bank, store.SessionReveal)))
		return eventsRecordedMsg{Err: errors.Join(errs...)}
	}
}

func sessionEvent(s *session.State, bank *quiz.Bank, action string) store.SessionEventData {
	correct, answered := s.Score(bank)
	return store.SessionEventData{
		SessionID:    s.ID,
		Action:       action,
		Answered:     answered,
		Correct:      correct,
		Revealed:     s.Revealed(),
		DurationSecs: int(time.Since(s.StartedAt).Seconds()),
	}
}

func recordSession(repo store.EventRepo, s *session.State, bank *quiz.Bank, action string, log *zap.Logger) {
	if repo == nil {
		return
	}
	if err := repo.AppendSessionEvent(context.Background(), sessionEvent(s, bank, action)); err != nil {
		log.Warn("record session event", zap.String("action", action), zap.Error(err))
	}
}
