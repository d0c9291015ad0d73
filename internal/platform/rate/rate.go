// Package rate provides a token bucket rate limiter used as backpressure
// against third-party lookup services (WHOIS, CDX, DNSBL).
package rate

import (
	"context"
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter.
// It supports blocking (Wait) and non-blocking (Allow) modes.
type Limiter struct {
	rate   float64 // tokens per second
	burst  int     // bucket capacity
	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// New creates a rate limiter allowing rate operations per second with the
// given burst capacity. Non-positive arguments fall back to 1.
func New(rate float64, burst int) *Limiter {
	if rate <= 0 {
		rate = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		rate:   rate,
		burst:  burst,
		tokens: float64(burst),
		last:   time.Now(),
	}
}

// Every creates a limiter that allows one operation per interval.
// This is the natural shape for "minimum delay between calls" loops.
func Every(interval time.Duration) *Limiter {
	if interval <= 0 {
		return New(1, 1)
	}
	return New(float64(time.Second)/float64(interval), 1)
}

// Wait blocks until an operation may proceed or the context is canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		if l.Allow() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.waitDuration()):
		}
	}
}

// Allow reports whether an operation can proceed immediately, consuming
// one token when it can.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// SetRate changes the rate limit dynamically.
func (l *Limiter) SetRate(rate float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if rate <= 0 {
		rate = 1
	}
	l.advance(time.Now())
	l.rate = rate
}

// Rate returns the current rate limit (tokens per second).
func (l *Limiter) Rate() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rate
}

// advance refills tokens for elapsed time. Caller must hold l.mu.
func (l *Limiter) advance(now time.Time) {
	elapsed := now.Sub(l.last).Seconds()
	l.tokens += elapsed * l.rate
	if l.tokens > float64(l.burst) {
		l.tokens = float64(l.burst)
	}
	l.last = now
}

// waitDuration estimates how long until the next token is available.
func (l *Limiter) waitDuration() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.advance(time.Now())
	if l.tokens >= 1 {
		return 0
	}
	needed := (1.0 - l.tokens) / l.rate
	return time.Duration(needed * float64(time.Second))
}
