package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one canned reply. Err, when set, is returned instead.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned replies in order and records every request.
// Replies go through the same schema check as real providers.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	Calls []Request
}

// NewMockProvider returns a mock that answers with responses in order.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(m.queue) == 0 {
		return nil, &Error{Kind: ErrProviderUnavailable, Err: errors.New("mock: no responses queued")}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return finish(req, string(next.Content), next.Usage, "mock", StopEnd)
}

// Push queues more replies.
func (m *MockProvider) Push(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
}

// CallCount returns the number of requests received.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
