package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to addr and checks the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rc := redis.NewClient(&redis.Options{Addr: addr})
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", addr)
	}
	return rc, nil
}

// Redis is a Snapshots shared by every server instance, stored as JSON with a TTL.
type Redis[T any] struct {
	rc  *redis.Client
	ttl time.Duration
}

func NewRedis[T any](rc *redis.Client, ttl time.Duration) *Redis[T] {
	return &Redis[T]{rc: rc, ttl: ttl}
}

func (c *Redis[T]) Get(ctx context.Context, key string) ([]T, error) {
	data, err := c.rc.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cache")
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cache data")
	}
	return items, nil
}

func (c *Redis[T]) Set(ctx context.Context, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cache data")
	}
	if err := c.rc.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cache")
	}
	return nil
}

func (c *Redis[T]) Delete(ctx context.Context, key string) error {
	if err := c.rc.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cache")
	}
	return nil
}
