package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed cache so multiple site instances share entries
// and see the same tag invalidations. Tag membership lives in Redis sets.
type Redis struct {
	client *redis.Client
	config Config
}

// NewRedis connects to the given address and verifies the connection.
func NewRedis(addr string, config Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, config: config}, nil
}

// NewRedisWithClient wraps an existing client, used by tests.
func NewRedisWithClient(client *redis.Client, config Config) *Redis {
	return &Redis{client: client, config: config}
}

// Get retrieves a value from Redis.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.config.Prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}
	return value, nil
}

// Set stores a value with a TTL and records the key in the tag's set. The
// tag set outlives its members slightly; stale members are tolerated since
// invalidation just deletes keys that may already be gone.
func (r *Redis) Set(ctx context.Context, key string, value []byte, tag string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = r.config.DefaultTTL
	}

	fullKey := r.config.Prefix + key
	if err := r.client.Set(ctx, fullKey, value, ttl).Err(); err != nil {
		return err
	}

	if tag != "" {
		return r.client.SAdd(ctx, r.tagKey(tag), fullKey).Err()
	}
	return nil
}

// InvalidateTag deletes every key recorded under tag, then the set itself.
func (r *Redis) InvalidateTag(ctx context.Context, tag string) error {
	tagKey := r.tagKey(tag)

	members, err := r.client.SMembers(ctx, tagKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	if len(members) > 0 {
		if err := r.client.Del(ctx, members...).Err(); err != nil {
			return err
		}
	}

	return r.client.Del(ctx, tagKey).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) tagKey(tag string) string {
	return r.config.Prefix + "tag:" + tag
}
