// Package ratelimit provides fixed-window attempt counters shared by the
// HTTP rate-limiting middleware.
package ratelimit

import (
	"context"
	"time"
)

// Limiter counts attempts per key within a fixed window.
type Limiter interface {
	// Allow records an attempt for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// Policy configures how many attempts a key may make per window.
type Policy struct {
	MaxAttempts int
	Window      time.Duration
}
