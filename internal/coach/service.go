// Package coach asks the configured LLM provider for feedback on the
// free-text exercises.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/stratiz/internal/llm"
)

// ErrEmpty is returned for a submission with nothing written.
var ErrEmpty = errors.New("nothing to review yet")

// Service generates feedback asynchronously. At most one review is in
// flight: a new request cancels the previous one and its result is dropped.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	pending *Outcome
	wg      sync.WaitGroup
}

// NewService creates a coach service. log may be nil.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log.Named("coach")}
}

// Request starts an async review of in.
func (s *Service) Request(ctx context.Context, in Input) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	s.pending = nil
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()

		fb, err := s.Review(ctx, in)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = &Outcome{Feedback: fb, Err: err}
		s.cancel = nil
	}()
}

// Consume returns the finished review, if any, and clears it.
func (s *Service) Consume() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return Outcome{}, false
	}
	out := *s.pending
	s.pending = nil
	return out, true
}

// Poll is Consume and Busy read under one lock. When ready is false, busy
// tells whether a result may still arrive.
func (s *Service) Poll() (out Outcome, ready, busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		out = *s.pending
		s.pending = nil
		return out, true, false
	}
	return Outcome{}, false, s.cancel != nil
}

// Busy reports whether a review is in flight.
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Close cancels any in-flight review and waits for it to return.
func (s *Service) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.mu.Unlock()
	s.wg.Wait()
}

type feedbackOutput struct {
	Verdict   string   `json:"verdict"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
	NextStep  string   `json:"next_step"`
}

// Review runs one review synchronously.
func (s *Service) Review(ctx context.Context, in Input) (*Feedback, error) {
	switch in.Exercise {
	case ExerciseBlueOcean:
		if in.Grid.Empty() {
			return nil, ErrEmpty
		}
	case ExerciseStory:
		if in.Story.Empty() {
			return nil, ErrEmpty
		}
	}

	userMsg, err := buildUserMessage(in)
	if err != nil {
		return nil, err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	resp, err := s.provider.Generate(ctx, llm.Request{
		Purpose:     "coach-" + string(in.Exercise),
		System:      systemPrompt,
		Messages:    []llm.Message{llm.UserMessage(userMsg)},
		Schema:      FeedbackSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.log.Warn("review failed", zap.String("exercise", string(in.Exercise)), zap.Error(err))
		return nil, fmt.Errorf("coach feedback: %w", err)
	}

	var out feedbackOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coach feedback: %w", err)
	}

	s.log.Debug("review ready",
		zap.String("exercise", string(in.Exercise)),
		zap.String("verdict", out.Verdict),
	)

	return &Feedback{
		Exercise:  in.Exercise,
		Verdict:   Verdict(out.Verdict),
		Strengths: out.Strengths,
		Gaps:      out.Gaps,
		NextStep:  out.NextStep,
	}, nil
}

// ShortError renders a review error as a one-line message for the UI.
func ShortError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmpty):
		return "Write something first."
	case errors.Is(err, context.DeadlineExceeded):
		return "The coach took too long. Try again."
	case errors.Is(err, context.Canceled):
		return "Review cancelled."
	case errors.Is(err, llm.ErrRateLimit):
		return "Rate limited. Try again in a moment."
	case errors.Is(err, llm.ErrProviderUnavailable):
		return "The AI provider is unavailable right now."
	case errors.Is(err, llm.ErrInvalidResponse):
		return "The coach answered in an unexpected format."
	case errors.Is(err, llm.ErrMaxTokensExceeded):
		return "The coach's answer was cut off. Try again."
	default:
		return "Could not get feedback."
	}
}
