package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(3, 1, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := bucket.Allow()
		assert.True(t, allowed, "call %d should pass", i)
	}

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0), "denied calls report a retry delay")
}

func TestRateLimiterIsolatesUsersAndActions(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 20; i++ {
		allowed, _ := rl.Allow("alice", "send_message")
		assert.True(t, allowed)
	}
	allowed, _ := rl.Allow("alice", "send_message")
	assert.False(t, allowed, "alice exhausted her message budget")

	allowed, _ = rl.Allow("bob", "send_message")
	assert.True(t, allowed, "bob has his own bucket")

	allowed, _ = rl.Allow("alice", "upload_attachment")
	assert.True(t, allowed, "a different action has a different bucket")
}

func TestDisabledBypassesBuckets(t *testing.T) {
	Disabled = true
	defer func() { Disabled = false }()

	rl := NewRateLimiter()
	for i := 0; i < 100; i++ {
		allowed, _ := rl.Allow("alice", "send_message")
		assert.True(t, allowed)
	}
}
