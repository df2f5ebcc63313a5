package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenSource(t *testing.T) {
	src := &StaticTokenSource{Value: "abc"}
	tok, err := src.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestTokenRefreshesWhenMissing(t *testing.T) {
	var calls atomic.Int32
	m := NewTokenRefreshManager(func(ctx context.Context) (string, time.Time, error) {
		calls.Add(1)
		return "fresh", time.Now().Add(time.Hour), nil
	}, 0)
	defer m.Stop()

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, int32(1), calls.Load())

	// Second call serves the cached token.
	tok, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTokenRefreshesWhenExpired(t *testing.T) {
	var calls atomic.Int32
	m := NewTokenRefreshManager(func(ctx context.Context) (string, time.Time, error) {
		n := calls.Add(1)
		if n == 1 {
			return "stale", time.Now().Add(-time.Minute), nil
		}
		return "fresh", time.Now().Add(time.Hour), nil
	}, 0)
	defer m.Stop()

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stale", tok)

	tok, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConcurrentRefreshIsSingleFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	m := NewTokenRefreshManager(func(ctx context.Context) (string, time.Time, error) {
		calls.Add(1)
		<-release
		return "shared", time.Now().Add(time.Hour), nil
	}, 0)
	defer m.Stop()

	const workers = 8
	var wg sync.WaitGroup
	tokens := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tok, err := m.Token(context.Background())
			assert.NoError(t, err)
			tokens[i] = tok
		}(i)
	}

	// Let the goroutines pile up on the in-flight refresh.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, tok := range tokens {
		assert.Equal(t, "shared", tok)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	m := NewTokenRefreshManager(func(ctx context.Context) (string, time.Time, error) {
		return "t", time.Now().Add(time.Hour), nil
	}, time.Minute)
	m.Start(context.Background())
	m.Stop()
	m.Stop()
}
