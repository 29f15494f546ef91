package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCacheRepository()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "a", "1", time.Minute))
	v, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	ok, err := cache.SetNX(ctx, "a", "2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, err = cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	ok, err = cache.SetNX(ctx, "a", "3", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := cache.Del(ctx, "a", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = cache.Del(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
