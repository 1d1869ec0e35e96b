package gateway

import (
	"context"
	"sync"
)

// VerifierMock simulates the human-verification widget. Err models a widget
// that failed to load.
type VerifierMock struct {
	mu sync.Mutex

	TokenValue string
	Err        error
	calls      int
}

func (m *VerifierMock) Token(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return "", m.Err
	}
	return m.TokenValue, nil
}

func (m *VerifierMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
