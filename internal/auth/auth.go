// Package auth provides access-token management for the REST invoker.
package auth

import "context"

// TokenSource yields the current access token. The REST invoker reads
// it on every call so that a token refreshed mid-session is picked up
// on the next call automatically.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token on every call. Used by tests
// and by deployments that authenticate out of band.
type StaticTokenSource struct {
	Value string
}

// Token returns the fixed token.
func (s *StaticTokenSource) Token(ctx context.Context) (string, error) {
	return s.Value, nil
}
