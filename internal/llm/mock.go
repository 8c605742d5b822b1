package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records every request.
// Once the script runs out it fails with ErrProviderUnavailable.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockResponse
	Calls   []Request
}

func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.replies[0]
	m.replies = m.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return finish(req, next.Content, next.Usage, "mock", StopEnd)
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends a reply to the script.
func (m *MockProvider) AddResponse(r MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// CallCount returns how many times Generate ran.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
