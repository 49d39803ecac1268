// Package ratelimit provides fixed-window attempt counters shared by the
// HTTP rate-limiting middleware.
package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var incrWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisLimiter keeps counters in Redis so every API instance shares them.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	policy Policy
}

// NewRedisLimiter creates a limiter whose keys are namespaced by prefix.
func NewRedisLimiter(client *redis.Client, prefix string, policy Policy) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		policy: policy,
	}
}

// Allow increments the counter and starts the window on the first attempt.
// A counter found without a TTL gets one, so a key can never stay locked out.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s:%s", l.prefix, key)

	count, err := incrWindow.Run(ctx, l.client, []string{redisKey}, l.policy.Window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	return count <= int64(l.policy.MaxAttempts), nil
}
