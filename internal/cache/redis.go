package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "animeinfo:"

// Redis caches responses with SET EX so expiry is handled by the server.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb, prefix: defaultRedisPrefix}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return r.rdb.Set(ctx, r.prefix+key, body, ttl).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
