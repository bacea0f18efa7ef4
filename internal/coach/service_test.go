package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/abhisek/stratiz/internal/course"
	"github.com/abhisek/stratiz/internal/llm"
)

func TestMain(m *testing.M) {
	// genai pulls in opencensus, whose view worker starts at init.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func validFeedbackJSON() json.RawMessage {
	return json.RawMessage(`{
		"verdict": "partial",
		"strengths": ["Eliminating cellar jargon cuts cost buyers do not value"],
		"gaps": ["Create cell is empty"],
		"next_step": "Add one new factor that non-customers would value"
	}`)
}

func blueOceanInput() Input {
	return Input{
		Exercise: ExerciseBlueOcean,
		Industry: course.OceanWine,
		Grid: course.Grid{
			Raise:     "fun and adventure",
			Eliminate: "aging quality jargon",
		},
	}
}

func waitOutcome(t *testing.T, svc *Service) Outcome {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := svc.Consume(); ok {
			return out
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no outcome before deadline")
	return Outcome{}
}

func TestService_RequestAndConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	svc := NewService(mock, DefaultConfig(), nil)
	defer svc.Close()

	svc.Request(t.Context(), blueOceanInput())
	out := waitOutcome(t, svc)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	fb := out.Feedback
	if fb.Verdict != VerdictPartial || fb.Exercise != ExerciseBlueOcean {
		t.Errorf("feedback = %+v", fb)
	}
	if len(fb.Gaps) != 1 || fb.NextStep == "" {
		t.Errorf("feedback = %+v", fb)
	}

	if _, ok := svc.Consume(); ok {
		t.Error("outcome consumed twice")
	}
	if svc.Busy() {
		t.Error("service still busy after outcome")
	}
}

func TestService_RequestCarriesGridAndSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	svc := NewService(mock, DefaultConfig(), nil)
	defer svc.Close()

	if _, err := svc.Review(t.Context(), blueOceanInput()); err != nil {
		t.Fatalf("Review: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != FeedbackSchema {
		t.Error("request missing feedback schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Wine", "Raise: fun and adventure", "Create: nothing yet"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestService_Story(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	fb, err := svc.Review(t.Context(), Input{
		Exercise: ExerciseStory,
		Story:    course.Story{Sensing: "streaming replaces DVDs"},
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if fb.Exercise != ExerciseStory {
		t.Errorf("exercise = %q", fb.Exercise)
	}
	if msg := mock.Calls[0].Messages[0].Content; !strings.Contains(msg, "Seizing: not written yet") {
		t.Errorf("prompt missing placeholder:\n%s", msg)
	}
}

func TestService_EmptySubmission(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Review(t.Context(), Input{Exercise: ExerciseBlueOcean, Industry: course.OceanHotels})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for an empty grid")
	}
}

func TestService_UnknownExercise(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig(), nil)

	_, err := svc.Review(t.Context(), Input{Exercise: "essay"})
	if !errors.Is(err, course.ErrUnknownKey) {
		t.Fatalf("err = %v, want ErrUnknownKey", err)
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.Error{Kind: llm.ErrRateLimit, Err: errors.New("429")}})
	svc := NewService(mock, DefaultConfig(), nil)
	defer svc.Close()

	svc.Request(t.Context(), blueOceanInput())
	out := waitOutcome(t, svc)

	if out.Err == nil || out.Feedback != nil {
		t.Fatalf("outcome = %+v", out)
	}
	if got := ShortError(out.Err); got != "Rate limited. Try again in a moment." {
		t.Errorf("ShortError = %q", got)
	}
}

// blockingProvider holds Generate until its context ends.
type blockingProvider struct{ started chan struct{} }

func (b *blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	b.started <- struct{}{}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestService_NewRequestSupersedesOld(t *testing.T) {
	p := &blockingProvider{started: make(chan struct{}, 2)}
	svc := NewService(p, DefaultConfig(), nil)

	svc.Request(t.Context(), blueOceanInput())
	<-p.started
	if !svc.Busy() {
		t.Fatal("expected busy")
	}

	svc.Request(t.Context(), blueOceanInput())
	<-p.started

	svc.Close()
	if _, ok := svc.Consume(); ok {
		t.Error("cancelled review produced an outcome")
	}
	if svc.Busy() {
		t.Error("busy after Close")
	}
}

// gatedProvider answers once release is closed.
type gatedProvider struct {
	started chan struct{}
	release chan struct{}
}

func (g *gatedProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	g.started <- struct{}{}
	select {
	case <-g.release:
		return &llm.Response{Content: validFeedbackJSON()}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedProvider) ModelID() string { return "gated" }

func TestService_PollNeverIdleBeforeOutcome(t *testing.T) {
	p := &gatedProvider{started: make(chan struct{}, 1), release: make(chan struct{})}
	svc := NewService(p, DefaultConfig(), nil)
	defer svc.Close()

	svc.Request(t.Context(), blueOceanInput())
	<-p.started
	if _, ready, busy := svc.Poll(); ready || !busy {
		t.Fatalf("gated review: ready=%v busy=%v", ready, busy)
	}

	close(p.release)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		out, ready, busy := svc.Poll()
		if ready {
			if out.Err != nil || out.Feedback == nil {
				t.Fatalf("outcome = %+v", out)
			}
			if _, again, busy := svc.Poll(); again || busy {
				t.Errorf("after consume: ready=%v busy=%v", again, busy)
			}
			return
		}
		if !busy {
			t.Fatal("service idle with the outcome not yet handed out")
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no outcome before deadline")
}

func TestShortError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEmpty, "Write something first."},
		{fmt.Errorf("coach feedback: %w", context.DeadlineExceeded), "The coach took too long. Try again."},
		{llm.ErrProviderUnavailable, "The AI provider is unavailable right now."},
		{&llm.Error{Kind: llm.ErrInvalidResponse, Err: errors.New("bad")}, "The coach answered in an unexpected format."},
		{&llm.Error{Kind: llm.ErrMaxTokensExceeded}, "The coach's answer was cut off. Try again."},
		{errors.New("boom"), "Could not get feedback."},
	}
	for _, tt := range tests {
		if got := ShortError(tt.err); got != tt.want {
			t.Errorf("ShortError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
