package ratelimiter

import (
	"context"
	"testing"
	"time"

	"padel-service/internal/app/services/shared/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	limiter := NewResourceLimiter(redis.NewMemoryRepository(), zap.NewNop())
	limiter.now = func() time.Time { return time.Unix(1_000_040, 0) }

	in := &ApplyResourceLimiterInput{
		ResourceName:      "+966500000001",
		LimiterGroupName:  "otp",
		WindowDurationSec: 60,
		MaxQuota:          2,
	}

	for i := 0; i < 2; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, in)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, in)
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	assert.Equal(t, 3, out.Count)
	assert.Equal(t, 41, out.RetryAfterSecs)

	t.Run("next window resets", func(t *testing.T) {
		limiter.now = func() time.Time { return time.Unix(1_000_080, 0) }
		out, err := limiter.ApplyResourceLimiter(ctx, in)
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("zero quota disables the limiter", func(t *testing.T) {
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{ResourceName: "x", LimiterGroupName: "y"})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("nil input", func(t *testing.T) {
		_, err := limiter.ApplyResourceLimiter(ctx, nil)
		assert.Error(t, err)
	})
}
