package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is the injected memoization store used by the content read path.
// Entries carry a TTL and belong to a named tag; invalidating a tag drops
// every entry set under it.
type Cache interface {
	// Get retrieves a value; a miss is reported as ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key for ttl and registers it with tag.
	Set(ctx context.Context, key string, value []byte, tag string, ttl time.Duration) error

	// InvalidateTag removes every entry registered under tag.
	InvalidateTag(ctx context.Context, tag string) error

	// Close releases background resources.
	Close() error
}

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool {
	return errors.Is(err, ErrMiss)
}

// Config holds common settings for cache backends.
type Config struct {
	// DefaultTTL applies when Set is called with a zero ttl.
	DefaultTTL time.Duration
	// Prefix is prepended to all keys.
	Prefix string
}

// DefaultConfig returns the settings the site server uses out of the box.
func DefaultConfig() Config {
	return Config{
		DefaultTTL: 60 * time.Second,
		Prefix:     "maishamaua:",
	}
}
