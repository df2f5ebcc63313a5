// Package auth: periodic token refresh with single-flight semantics.
package auth

import (
	"context"
	"sync"
	"time"
)

// RefreshFunc obtains a fresh access token and its expiry time.
type RefreshFunc func(ctx context.Context) (token string, expiry time.Time, err error)

// TokenRefreshManager owns a background refresh timer and serves the
// current token, refreshing on demand when it has expired. It is an
// explicitly constructed component: build one and pass it to whatever
// composes the REST invoker, never a process-wide instance.
//
// Concurrent callers that find the token expired share a single
// in-flight refresh rather than each issuing their own.
type TokenRefreshManager struct {
	refresh  RefreshFunc
	interval time.Duration

	mu       sync.Mutex
	token    string
	expiry   time.Time
	inflight *refreshCall
	ticker   *time.Ticker
	stop     chan struct{}
	stopped  sync.Once
}

type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// NewTokenRefreshManager creates a manager that refreshes via fn.
// interval is the background refresh period; zero disables the timer
// and leaves only on-demand refresh.
func NewTokenRefreshManager(fn RefreshFunc, interval time.Duration) *TokenRefreshManager {
	return &TokenRefreshManager{
		refresh:  fn,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start launches the background refresh timer. It is a no-op when the
// manager was built with a zero interval.
func (m *TokenRefreshManager) Start(ctx context.Context) {
	if m.interval <= 0 {
		return
	}

	m.mu.Lock()
	if m.ticker != nil {
		m.mu.Unlock()
		return
	}
	m.ticker = time.NewTicker(m.interval)
	ticker := m.ticker
	m.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				_, _ = m.refreshNow(ctx)
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts the background timer. Safe to call more than once.
func (m *TokenRefreshManager) Stop() {
	m.stopped.Do(func() {
		close(m.stop)
		m.mu.Lock()
		if m.ticker != nil {
			m.ticker.Stop()
		}
		m.mu.Unlock()
	})
}

// Token returns the current token, refreshing first when it is missing
// or expired.
func (m *TokenRefreshManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	if m.token != "" && (m.expiry.IsZero() || time.Now().Before(m.expiry)) {
		token := m.token
		m.mu.Unlock()
		return token, nil
	}
	m.mu.Unlock()

	return m.refreshNow(ctx)
}

// refreshNow performs a refresh, joining an in-flight one if present.
func (m *TokenRefreshManager) refreshNow(ctx context.Context) (string, error) {
	m.mu.Lock()
	if call := m.inflight; call != nil {
		m.mu.Unlock()
		select {
		case <-call.done:
			return call.token, call.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	call := &refreshCall{done: make(chan struct{})}
	m.inflight = call
	m.mu.Unlock()

	token, expiry, err := m.refresh(ctx)

	m.mu.Lock()
	if err == nil {
		m.token = token
		m.expiry = expiry
	}
	call.token = token
	call.err = err
	m.inflight = nil
	m.mu.Unlock()
	close(call.done)

	return token, err
}
