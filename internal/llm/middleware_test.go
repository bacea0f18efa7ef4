package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/stratiz/internal/store"
)

var fastRetry = RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}

func ok() MockResponse { return MockResponse{Content: json.RawMessage(`{"verdict":"strong"}`)} }

func fail(kind error) MockResponse { return MockResponse{Err: &Error{Kind: kind}} }

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantErr   error
		wantCalls int
	}{
		{"first try", []MockResponse{ok()}, nil, 1},
		{"outage then success", []MockResponse{fail(ErrProviderUnavailable), fail(ErrRateLimit), ok()}, nil, 3},
		{"gives up", []MockResponse{fail(ErrProviderUnavailable), fail(ErrProviderUnavailable), fail(ErrProviderUnavailable), ok()}, ErrProviderUnavailable, 3},
		{"truncation not retried", []MockResponse{fail(ErrMaxTokensExceeded), ok()}, ErrMaxTokensExceeded, 1},
		{"invalid retried once", []MockResponse{fail(ErrInvalidResponse), fail(ErrInvalidResponse), ok()}, ErrInvalidResponse, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			_, err := WithRetry(mock, fastRetry, nil).Generate(context.Background(), coachRequest())
			if !errors.Is(err, tt.wantErr) && !(err == nil && tt.wantErr == nil) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	mock := NewMockProvider(fail(ErrProviderUnavailable), ok())
	slow := RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := WithRetry(mock, slow, nil).Generate(ctx, coachRequest())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestRetryDelay(t *testing.T) {
	cfg := RetryConfig{InitialWait: time.Second, MaxWait: 3 * time.Second, Multiplier: 2}

	if d := cfg.delay(0, nil); d < 800*time.Millisecond || d > 1200*time.Millisecond {
		t.Errorf("first delay = %v", d)
	}
	if d := cfg.delay(5, nil); d > 3600*time.Millisecond {
		t.Errorf("delay not capped: %v", d)
	}
	rl := &Error{Kind: ErrRateLimit, RetryAfter: 9 * time.Second}
	if d := cfg.delay(0, rl); d != 9*time.Second {
		t.Errorf("Retry-After ignored: %v", d)
	}
	if WithRetry(NewMockProvider(), RetryConfig{}, nil).ModelID() != "mock" {
		t.Error("ModelID not delegated")
	}
}

type eventLog struct {
	events []store.LLMRequestEventData
	err    error
}

func (e *eventLog) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	e.events = append(e.events, data)
	return e.err
}

func TestLoggingRecordsEvents(t *testing.T) {
	rec := &eventLog{}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"verdict":"weak"}`), Usage: Usage{InputTokens: 10, OutputTokens: 4}},
		fail(ErrRateLimit),
	)
	p := WithLogging(mock, "mock", rec, nil)

	if _, err := p.Generate(context.Background(), coachRequest()); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("hi")}}); err == nil {
		t.Fatal("expected the queued failure")
	}

	if len(rec.events) != 2 {
		t.Fatalf("recorded %d events", len(rec.events))
	}
	okEv, failEv := rec.events[0], rec.events[1]
	if !okEv.Success || okEv.Purpose != "coach-story" || okEv.InputTokens != 10 || okEv.ResponseBody != `{"verdict":"weak"}` {
		t.Errorf("success event = %+v", okEv)
	}
	for _, want := range []string{"[system]", "[user]\nSensing", "[schema: verdict]"} {
		if !strings.Contains(okEv.RequestBody, want) {
			t.Errorf("request body missing %q", want)
		}
	}
	if failEv.Success || failEv.Purpose != "unknown" || !strings.Contains(failEv.ErrorMessage, "rate limited") {
		t.Errorf("failure event = %+v", failEv)
	}
}

func TestLoggingIgnoresRecorderFailure(t *testing.T) {
	rec := &eventLog{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(ok()), "mock", rec, nil)
	if _, err := p.Generate(context.Background(), coachRequest()); err != nil {
		t.Fatalf("recorder error leaked: %v", err)
	}

	if _, err := WithLogging(NewMockProvider(ok()), "mock", nil, nil).Generate(context.Background(), coachRequest()); err != nil {
		t.Fatalf("nil recorder: %v", err)
	}
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider()
	if _, err := mock.Generate(context.Background(), coachRequest()); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("empty queue err = %v", err)
	}

	mock.Push(MockResponse{Content: json.RawMessage(`{"verdict":"great"}`)})
	if _, err := mock.Generate(context.Background(), coachRequest()); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("off-schema reply err = %v", err)
	}
	if mock.CallCount() != 2 || mock.Calls[1].Purpose != "coach-story" {
		t.Errorf("calls = %+v", mock.Calls)
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"valid", `{"verdict":"weak"}`, true},
		{"missing required", `{}`, false},
		{"wrong enum", `{"verdict":"fine"}`, false},
		{"extra field", `{"verdict":"weak","score":3}`, false},
		{"wrong type", `{"verdict":1}`, false},
		{"malformed", `{"verdict":`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verdictSchema.Validate(json.RawMessage(tt.raw))
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidResponse) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}

	var none *Schema
	if err := none.Validate(json.RawMessage("anything")); err != nil {
		t.Errorf("nil schema rejected input: %v", err)
	}
}
