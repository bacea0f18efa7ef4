// Package llm talks to the hosted language models behind the strategy
// coach. Providers answer with JSON that is checked against the request
// schema before it reaches the caller.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	// Purpose labels the request in logs and recorded events,
	// e.g. "coach-story".
	Purpose string

	System   string
	Messages []Message

	// Schema, when set, asks the provider for JSON matching it. Responses
	// that do not match fail with ErrInvalidResponse.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// UserMessage is shorthand for a user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// StopReason says why the model stopped generating.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a completed generation.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string // model that served the request
	Stop    StopReason
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u Usage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// finish turns raw provider output into a Response. Output cut off by the
// token limit cannot be valid JSON, so it is reported as truncated rather
// than invalid.
func finish(req Request, raw string, usage Usage, model string, stop StopReason) (*Response, error) {
	content := json.RawMessage(raw)
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &Error{Kind: ErrMaxTokensExceeded, Content: content}
		}
		if err := req.Schema.Validate(content); err != nil {
			return nil, err
		}
	}
	return &Response{Content: content, Usage: usage, Model: model, Stop: stop}, nil
}
