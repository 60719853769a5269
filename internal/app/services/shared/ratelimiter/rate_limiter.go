package ratelimiter

import (
	"context"
	"fmt"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed window counter stored in Redis. The counter key
// lives for one window so stale windows clean themselves up.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log, now: time.Now}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the limited subject, e.g. a phone number.
	ResourceName string
	// LimiterGroupName namespaces the key, e.g. OTP.
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
	Count          int
}

func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("nil limiter input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := l.now().UTC()
	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, time.Duration(windowSec+1)*time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingLimiterKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	if count > in.MaxQuota {
		retryAfter := int((windowID+1)*int64(windowSec)-now.Unix()) + 1
		l.log.Info("ResourceLimiter.ApplyResourceLimiter quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingLimiterKey, key),
			zap.Int(constvars.LoggingCountKey, count),
		)
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter, Count: count}, nil
	}

	return &ApplyResourceLimiterOutput{Allowed: true, Count: count}, nil
}
