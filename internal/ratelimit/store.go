// Package ratelimit implements the per-IP contact throttle: a transient
// marker keyed by caller IP that expires after a fixed window. The store is
// advisory only; a store failure never blocks a submission.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Window is how long a caller is throttled after a submission.
const Window = 60 * time.Second

const keyPrefix = "rl:"

// Store marks caller IPs and reports repeat hits within the window.
type Store interface {
	// Hit reports whether ip already submitted within the window. If it did
	// not, Hit records the marker and returns false.
	Hit(ctx context.Context, ip string) (limited bool, err error)
}

// RedisStore keeps rate-limit markers in redis with a per-key TTL.
//
// The check-then-write sequence is not atomic: two near-simultaneous
// requests from the same IP can both pass. The throttle is best-effort by
// contract, so the race is accepted rather than papered over with SetNX.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		ttl:    Window,
	}, nil
}

func (s *RedisStore) Hit(ctx context.Context, ip string) (bool, error) {
	key := keyPrefix + ip

	_, err := s.client.Get(ctx, key).Result()
	if err == nil {
		return true, nil
	}
	if err != redis.Nil {
		return false, err
	}

	if err := s.client.Set(ctx, key, "1", s.ttl).Err(); err != nil {
		return false, err
	}
	return false, nil
}

// Close releases the underlying redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
