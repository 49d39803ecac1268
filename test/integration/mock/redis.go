package mock

import (
	"context"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process miniredis server with a connected client.
type Redis struct {
	Client *redis.Client
	server *miniredis.Miniredis
}

var (
	redisOnce sync.Once
	redisMock *Redis
)

// NewRedis starts the shared miniredis server on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}

		redisMock = &Redis{
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
			server: server,
		}
	})

	return redisMock
}

// Clear drops every key, including rate limit counters.
func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.Background()).Err()
}

// FastForward moves miniredis' clock so TTL-based windows expire.
func (r *Redis) FastForward(d time.Duration) {
	r.server.FastForward(d)
}
