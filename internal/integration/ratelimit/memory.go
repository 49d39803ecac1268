// Package ratelimit provides fixed-window attempt counters shared by the
// HTTP rate-limiting middleware.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryLimiter keeps counters in process memory. It is used when no Redis
// is configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	policy  Policy
	now     func() time.Time
}

// NewMemoryLimiter creates an in-process limiter.
func NewMemoryLimiter(policy Policy) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*memoryEntry),
		policy:  policy,
		now:     time.Now,
	}
}

// Allow records an attempt for key.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	entry, exists := l.entries[key]
	if !exists || now.After(entry.resetTime) {
		l.entries[key] = &memoryEntry{
			attempts:  1,
			resetTime: now.Add(l.policy.Window),
		}
		return l.policy.MaxAttempts > 0, nil
	}

	entry.attempts++
	return entry.attempts <= l.policy.MaxAttempts, nil
}

// Cleanup removes expired entries.
func (l *MemoryLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, entry := range l.entries {
		if now.After(entry.resetTime) {
			delete(l.entries, key)
		}
	}
}

// StartCleanup drops expired counters every interval until ctx is done.
func (l *MemoryLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}
