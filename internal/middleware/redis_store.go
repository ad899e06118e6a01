package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// PTTL reports -1 for a key that exists without an expiry.
const noExpiry = time.Duration(-1)

// RedisStore implements CounterStore on Redis so limits hold across replicas.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	key = redisKeyPrefix + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, err
	}
	count := incr.Val()

	// A key without expiry (first hit, or an earlier PEXPIRE that failed)
	// gets one now. Keys that already carry a TTL keep their fixed window.
	if ttl.Val() == noExpiry {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}

	return count, nil
}
