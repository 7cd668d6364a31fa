package home

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoginLimiter_Enforcement(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewLoginLimiter(1, 2)
	limiter.now = func() time.Time { return clock }

	key := "10.0.0.1"
	assert.True(t, limiter.Allow(key))
	assert.True(t, limiter.Allow(key))
	assert.False(t, limiter.Allow(key), "burst exhausted")

	// other clients keep their own bucket
	assert.True(t, limiter.Allow("10.0.0.2"))

	clock = clock.Add(time.Second)
	assert.True(t, limiter.Allow(key))
	assert.False(t, limiter.Allow(key))
}

func TestLoginLimiter_PrunesIdleEntries(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewLoginLimiter(1, 1)
	limiter.now = func() time.Time { return clock }

	limiter.Allow("a")
	limiter.Allow("b")
	assert.Equal(t, 2, limiter.Len())

	clock = clock.Add(limiterIdleTTL)
	limiter.Allow("c")
	assert.Equal(t, 1, limiter.Len())
}

func TestLoginLimiter_Concurrency(t *testing.T) {
	limiter := NewLoginLimiter(0, 50)
	key := uuid.NewString()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow(key) {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
	assert.Equal(t, 1, limiter.Len())
}
