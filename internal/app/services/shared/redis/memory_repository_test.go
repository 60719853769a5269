package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 11, 24, 10, 0, 0, 0, time.UTC)
	repo := NewMemoryRepository()
	repo.now = func() time.Time { return now }

	t.Run("set stores json", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "k", "v", time.Minute))
		got, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `"v"`, got)
	})

	t.Run("setnx only once", func(t *testing.T) {
		ok, err := repo.TrySetNX(ctx, "nx", "a", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.TrySetNX(ctx, "nx", "b", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expiry", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", 1, time.Second))
		now = now.Add(2 * time.Second)
		got, err := repo.Get(ctx, "short")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("increment keeps first ttl", func(t *testing.T) {
		count, err := repo.IncrementWithTTL(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		now = now.Add(30 * time.Second)
		count, err = repo.IncrementWithTTL(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		now = now.Add(31 * time.Second)
		count, err = repo.IncrementWithTTL(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("expire missing key", func(t *testing.T) {
		ok, err := repo.Expire(ctx, "missing", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
