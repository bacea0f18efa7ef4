package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrNoProvider is returned when no provider is selected.
var ErrNoProvider = errors.New("no LLM provider configured")

// Failure kinds. Match them with errors.Is.
var (
	ErrRateLimit           = errors.New("rate limited")
	ErrProviderUnavailable = errors.New("LLM provider unavailable")
	ErrInvalidResponse     = errors.New("invalid LLM response")
	ErrMaxTokensExceeded   = errors.New("LLM response truncated: max tokens exceeded")
)

// Error is a failed request classified by one of the kinds above.
type Error struct {
	Kind       error
	RetryAfter time.Duration   // rate limits only, when the provider said
	Content    json.RawMessage // the rejected output, if any
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// RetryAfterOf returns the wait a rate-limited provider asked for.
func RetryAfterOf(err error) (time.Duration, bool) {
	var e *Error
	if errors.As(err, &e) && errors.Is(e.Kind, ErrRateLimit) && e.RetryAfter > 0 {
		return e.RetryAfter, true
	}
	return 0, false
}

// classify maps a failed API call to an Error by HTTP status. Context errors
// pass through so callers can tell cancellation from an outage.
func classify(status int, header http.Header, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if status == http.StatusTooManyRequests {
		return &Error{Kind: ErrRateLimit, RetryAfter: retryAfter(header), Err: err}
	}
	return &Error{Kind: ErrProviderUnavailable, Err: err}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
