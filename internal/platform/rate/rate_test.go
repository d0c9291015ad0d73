// internal/platform/rate/rate_test.go
package rate

import (
	"context"
	"testing"
	"time"
)

func TestAllowConsumesBurst(t *testing.T) {
	l := New(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Fatalf("expected Allow to succeed within burst (attempt %d)", i)
		}
	}
	if l.Allow() {
		t.Error("expected Allow to fail once burst is exhausted")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New(100, 1)

	if !l.Allow() {
		t.Fatal("first token should be available")
	}
	if l.Allow() {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(20 * time.Millisecond) // 100/s refills within 10ms

	if !l.Allow() {
		t.Error("expected token after refill interval")
	}
}

func TestWaitRespectsContext(t *testing.T) {
	l := New(0.001, 1)
	l.Allow() // drain

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx)
	if err == nil {
		t.Error("expected context error while waiting for slow refill")
	}
}

func TestEvery(t *testing.T) {
	l := Every(100 * time.Millisecond)
	if got := l.Rate(); got < 9.9 || got > 10.1 {
		t.Errorf("expected ~10 tokens/s, got %f", got)
	}

	// Zero interval means no delay requested, default limiter.
	l = Every(0)
	if l.Rate() != 1 {
		t.Errorf("expected fallback rate 1, got %f", l.Rate())
	}
}

func TestSetRate(t *testing.T) {
	l := New(1, 1)
	l.SetRate(50)
	if l.Rate() != 50 {
		t.Errorf("expected rate 50, got %f", l.Rate())
	}
	l.SetRate(-1)
	if l.Rate() != 1 {
		t.Errorf("non-positive rate should fall back to 1, got %f", l.Rate())
	}
}
