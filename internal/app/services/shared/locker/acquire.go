package locker

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const defaultAcquireTTL = 10 * time.Second

type AcquireOptions struct {
	TTL     time.Duration
	Retries int
	Backoff time.Duration
}

// AcquireWithRetry takes key, retrying a busy lock opts.Retries times. It
// returns a 423 Locked error when the key stays busy.
func AcquireWithRetry(ctx context.Context, lockSvc contracts.LockerService, log *zap.Logger, key string, opts AcquireOptions) (func(context.Context), error) {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultAcquireTTL
	}

	for attempt := 0; attempt <= max(opts.Retries, 0); attempt++ {
		ok, token, err := lockSvc.TryLock(ctx, key, ttl)
		if err != nil {
			return nil, exceptions.ErrRedisSet(err)
		}
		if ok {
			return func(ctx context.Context) {
				if err := lockSvc.Unlock(ctx, key, token); err != nil {
					log.Warn("locker.AcquireWithRetry failed to release lock",
						zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
						zap.String(constvars.LoggingLockKey, key),
						zap.Error(err),
					)
				}
			}, nil
		}

		if attempt < opts.Retries {
			select {
			case <-ctx.Done():
				return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
			case <-time.After(opts.Backoff):
			}
		}
	}

	log.Warn("locker.AcquireWithRetry lock busy",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingLockKey, key),
	)
	return nil, exceptions.ErrBookingLocked(nil, key)
}

// PaymentLedgerKey guards the received total and payment status of one booking.
func PaymentLedgerKey(bookingID string) string {
	return constvars.RedisKeyPrefixPaymentLock + ":" + bookingID
}
