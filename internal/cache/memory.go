package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process cache with TTL expiry and tag tracking. Racing
// writers are harmless: entries are idempotent snapshots of CMS reads.
type Memory struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	tags   map[string]map[string]struct{}
	config Config
	cancel context.CancelFunc
}

type memoryItem struct {
	value      []byte
	expiration time.Time
}

// NewMemory creates an in-memory cache with default settings.
func NewMemory() *Memory {
	return NewMemoryWithConfig(DefaultConfig())
}

// NewMemoryWithConfig creates an in-memory cache with custom settings and
// starts a background sweep for expired entries.
func NewMemoryWithConfig(config Config) *Memory {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Memory{
		items:  make(map[string]memoryItem),
		tags:   make(map[string]map[string]struct{}),
		config: config,
		cancel: cancel,
	}

	go m.sweep(ctx)

	return m
}

// Get retrieves a value, treating expired entries as misses.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullKey := m.config.Prefix + key

	m.mu.RLock()
	item, ok := m.items[fullKey]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrMiss
	}
	if !item.expiration.IsZero() && time.Now().After(item.expiration) {
		m.mu.Lock()
		delete(m.items, fullKey)
		m.mu.Unlock()
		return nil, ErrMiss
	}

	return item.value, nil
}

// Set stores a value with a TTL and registers the key under tag.
func (m *Memory) Set(ctx context.Context, key string, value []byte, tag string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if ttl == 0 {
		ttl = m.config.DefaultTTL
	}

	fullKey := m.config.Prefix + key
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiration = time.Now().Add(ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[fullKey] = item
	if tag != "" {
		if m.tags[tag] == nil {
			m.tags[tag] = make(map[string]struct{})
		}
		m.tags[tag][fullKey] = struct{}{}
	}

	return nil
}

// InvalidateTag drops every entry registered under tag.
func (m *Memory) InvalidateTag(ctx context.Context, tag string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.tags[tag] {
		delete(m.items, key)
	}
	delete(m.tags, tag)

	return nil
}

// Close stops the background sweep.
func (m *Memory) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

func (m *Memory) sweep(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			m.mu.Lock()
			for key, item := range m.items {
				if !item.expiration.IsZero() && now.After(item.expiration) {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
