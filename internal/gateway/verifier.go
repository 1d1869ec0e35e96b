package gateway

import (
	"context"
	"sync"
)

// PassThroughVerifier forwards the verification token the client already
// obtained from the embedded widget. An empty token is forwarded as-is: a
// widget that failed to load never blocks a submission.
type PassThroughVerifier struct {
	mu    sync.Mutex
	token string
}

func NewPassThroughVerifier(token string) *PassThroughVerifier {
	return &PassThroughVerifier{token: token}
}

// SetToken replaces the token for the next submission attempt.
func (v *PassThroughVerifier) SetToken(token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = token
}

func (v *PassThroughVerifier) Token(context.Context) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.token, nil
}
