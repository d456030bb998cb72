package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiterAllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("https://example.com/a") {
		t.Error("first request denied")
	}
	if !l.Allow("https://example.com/b") {
		t.Error("second request denied within burst")
	}
	if l.Allow("https://example.com/c") {
		t.Error("third request allowed beyond burst")
	}
}

func TestLimiterIsPerDomain(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://one.example.com/") {
		t.Error("first domain denied")
	}
	if !l.Allow("https://two.example.com/") {
		t.Error("second domain throttled by the first")
	}
	if l.Allow("https://one.example.com/again") {
		t.Error("first domain allowed beyond burst")
	}
}

func TestLimiterWait(t *testing.T) {
	l := NewLimiter(1000, 10)

	if err := l.Wait(context.Background(), "https://example.com/"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestLimiterWaitWithDelay(t *testing.T) {
	l := NewLimiter(1000, 10)

	start := time.Now()
	if err := l.WaitWithDelay(context.Background(), "https://example.com/", 20*time.Millisecond); err != nil {
		t.Fatalf("WaitWithDelay: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("WaitWithDelay returned after %v, want at least the crawl delay", elapsed)
	}
}

func TestLimiterWaitCancelled(t *testing.T) {
	l := NewLimiter(1000, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.WaitWithDelay(ctx, "https://example.com/", time.Minute); err == nil {
		t.Error("WaitWithDelay ignored a cancelled context")
	}
}

func TestLimiterRejectsBadURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://not-a-url") {
		t.Error("Allow accepted an unparseable URL")
	}
}
