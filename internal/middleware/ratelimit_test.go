package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    5,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	for i := 0; i < 5; i++ {
		if !rl.Allow("test-key") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksAfterMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    3,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	for i := 0; i < 3; i++ {
		rl.Allow("test-key")
	}

	if rl.Allow("test-key") {
		t.Fatal("4th request should be blocked")
	}
}

func TestRateLimiter_DifferentKeysIndependent(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    2,
		Window: time.Minute,
		KeyFn:  KeyByUser,
	})

	rl.Allow("user:a")
	rl.Allow("user:a")

	// user:a is exhausted
	if rl.Allow("user:a") {
		t.Fatal("user:a should be blocked")
	}

	// user:b should still be allowed
	if !rl.Allow("user:b") {
		t.Fatal("user:b should be allowed (independent key)")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    2,
		Window: 50 * time.Millisecond,
		KeyFn:  KeyByIP,
	})

	rl.Allow("test")
	rl.Allow("test")

	if rl.Allow("test") {
		t.Fatal("should be blocked within window")
	}

	// Wait for window to expire
	time.Sleep(60 * time.Millisecond)

	if !rl.Allow("test") {
		t.Fatal("should be allowed after window reset")
	}
}

func TestRateLimiter_BindConfig(t *testing.T) {
	rl := NewBindRateLimiter()
	for i := 0; i < 5; i++ {
		if !rl.Allow("user:abc123") {
			t.Fatalf("bind request %d should be allowed (max 5)", i+1)
		}
	}
	if rl.Allow("user:abc123") {
		t.Fatal("6th bind should be blocked")
	}
}

func TestRateLimiter_CatalogConfig(t *testing.T) {
	rl := NewCatalogRateLimiter()
	for i := 0; i < 30; i++ {
		if !rl.Allow("user:abc123") {
			t.Fatalf("catalog request %d should be allowed (max 30)", i+1)
		}
	}
	if rl.Allow("user:abc123") {
		t.Fatal("31st catalog request should be blocked")
	}
}

func TestRateLimiter_SubmitConfig(t *testing.T) {
	rl := NewSubmitRateLimiter()
	for i := 0; i < 10; i++ {
		if !rl.Allow("user:abc123") {
			t.Fatalf("submit request %d should be allowed (max 10)", i+1)
		}
	}
	if rl.Allow("user:abc123") {
		t.Fatal("11th submit should be blocked")
	}
}
