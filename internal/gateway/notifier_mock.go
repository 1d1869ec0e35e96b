package gateway

import "sync"

// NotifierMock records every emitted notification for call-count assertions.
type NotifierMock struct {
	mu sync.Mutex

	Successes []string
	Errors    []string
	Infos     []string
}

func (m *NotifierMock) Success(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes = append(m.Successes, msg)
}

func (m *NotifierMock) Error(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, msg)
}

func (m *NotifierMock) Info(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Infos = append(m.Infos, msg)
}

func (m *NotifierMock) SuccessCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Successes)
}

func (m *NotifierMock) ErrorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Errors)
}
