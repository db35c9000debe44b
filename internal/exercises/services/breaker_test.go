package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakerStaysClosedAtThreshold(t *testing.T) {
	b := NewBreaker(10, time.Hour)

	for i := 0; i < 10; i++ {
		b.RecordError()
	}
	assert.True(t, b.Available(), "exactly threshold errors must not open the breaker")

	b.RecordError()
	assert.False(t, b.Available(), "threshold+1 errors within cooldown opens the breaker")
}

func TestBreakerRecoversAfterCooldown(t *testing.T) {
	b := NewBreaker(10, time.Hour)

	current := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }

	for i := 0; i < 11; i++ {
		b.RecordError()
	}
	assert.False(t, b.Available())

	current = current.Add(59 * time.Minute)
	assert.False(t, b.Available(), "still inside cooldown")

	current = current.Add(2 * time.Minute)
	assert.True(t, b.Available(), "cooldown elapsed, probe allowed")
}

func TestBreakerResetClearsState(t *testing.T) {
	b := NewBreaker(10, time.Hour)

	for i := 0; i < 11; i++ {
		b.RecordError()
	}
	assert.False(t, b.Available())

	b.Reset()
	assert.True(t, b.Available())

	// errors start counting from zero again
	for i := 0; i < 10; i++ {
		b.RecordError()
	}
	assert.True(t, b.Available())
}
