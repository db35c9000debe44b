package services

import (
	"sync"
	"time"
)

// Breaker is the provider availability gate. After more than threshold
// recorded errors, live generation is suspended until cooldown has passed
// since the last error, then probed again. One Breaker is constructed per
// process and shared by all sessions.
type Breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration

	errorCount int
	lastError  time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewBreaker creates a gate that opens after more than threshold errors
// and stays open for cooldown.
func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Available reports whether live generation should be attempted.
func (b *Breaker) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.errorCount > b.threshold && b.now().Sub(b.lastError) < b.cooldown {
		return false
	}
	return true
}

// RecordError counts one provider failure.
func (b *Breaker) RecordError() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.errorCount++
	b.lastError = b.now()
}

// Reset clears the error state. Called on any successful generation.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.errorCount = 0
	b.lastError = time.Time{}
}
