package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "products", []byte(`[{"id":1}]`), "products", 0))

	value, err := m.Get(ctx, "products")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	_, err := m.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrMiss)
	assert.True(t, IsMiss(err))
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", []byte("v"), "", 10*time.Millisecond))

	_, err := m.Get(ctx, "short")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = m.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryInvalidateTag(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "products?featured=true", []byte("a"), "products", 0))
	require.NoError(t, m.Set(ctx, "products?limit=4", []byte("b"), "products", 0))
	require.NoError(t, m.Set(ctx, "categories", []byte("c"), "categories", 0))

	require.NoError(t, m.InvalidateTag(ctx, "products"))

	_, err := m.Get(ctx, "products?featured=true")
	assert.ErrorIs(t, err, ErrMiss)
	_, err = m.Get(ctx, "products?limit=4")
	assert.ErrorIs(t, err, ErrMiss)

	value, err := m.Get(ctx, "categories")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), value)
}

func TestMemoryInvalidateUnknownTag(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	assert.NoError(t, m.InvalidateTag(context.Background(), "no-such-tag"))
}

func TestMemoryCancelledContext(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, m.Set(ctx, "k", []byte("v"), "", 0), context.Canceled)
}
