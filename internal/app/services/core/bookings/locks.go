package bookings

import (
	"context"
	"errors"
	"fmt"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

var errLockBusy = errors.New("booking lock held by another request")

type dayLockTarget struct {
	Kind       models.ResourceKind
	ResourceID string
	Day        time.Time
}

type lockWindow struct {
	Kind       models.ResourceKind
	ResourceID string
	Start      time.Time
	End        time.Time
}

func dayLockKey(t dayLockTarget) string {
	return fmt.Sprintf("%s:%s:%s:%s", constvars.RedisKeyPrefixBookingLock, t.Kind, t.ResourceID, t.Day.Format(constvars.DateLayout))
}

// dayTargetsForWindow lists the local days touched by [start, end). An end at
// exactly midnight does not pull in the following day.
func dayTargetsForWindow(w lockWindow, loc *time.Location) []dayLockTarget {
	if w.ResourceID == "" || !w.End.After(w.Start) {
		return nil
	}

	first := utils.StartOfDay(w.Start, loc)
	last := utils.StartOfDay(w.End.Add(-time.Nanosecond), loc)

	var out []dayLockTarget
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, dayLockTarget{Kind: w.Kind, ResourceID: w.ResourceID, Day: d})
	}
	return out
}

// dayTargetsForMultiple merges the days of every window into a sorted, unique
// list so concurrent writers always lock in the same order.
func dayTargetsForMultiple(windows []lockWindow, loc *time.Location) []dayLockTarget {
	seen := make(map[string]struct{})
	var out []dayLockTarget
	for _, w := range windows {
		for _, t := range dayTargetsForWindow(w, loc) {
			key := dayLockKey(t)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		if out[i].ResourceID != out[j].ResourceID {
			return out[i].ResourceID < out[j].ResourceID
		}
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// acquireDayLocksOrdered takes every lock or none. On failure the locks taken
// so far are released in reverse order.
func (uc *bookingUsecase) acquireDayLocksOrdered(ctx context.Context, targets []dayLockTarget) (func(context.Context), string, error) {
	type acquired struct{ key, token string }
	held := make([]acquired, 0, len(targets))

	release := func(ctx context.Context) {
		for i := len(held) - 1; i >= 0; i-- {
			if err := uc.Locker.Unlock(ctx, held[i].key, held[i].token); err != nil {
				uc.Log.Warn("bookingUsecase.acquireDayLocksOrdered failed to release lock",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
					zap.String(constvars.LoggingLockKey, held[i].key),
					zap.Error(err),
				)
			}
		}
	}

	for _, t := range targets {
		key := dayLockKey(t)
		ok, token, err := uc.Locker.TryLock(ctx, key, uc.InternalConfig.Booking.LockTTL)
		if err != nil || !ok {
			release(ctx)
			if err == nil {
				err = errLockBusy
			}
			return func(context.Context) {}, key, err
		}
		held = append(held, acquired{key: key, token: token})
	}
	return release, "", nil
}

// lockResources retries a busy lock set a few times before giving up with
// a 423 Locked error.
func (uc *bookingUsecase) lockResources(ctx context.Context, windows []lockWindow) (func(context.Context), error) {
	targets := dayTargetsForMultiple(windows, uc.location)
	if len(targets) == 0 {
		return func(context.Context) {}, nil
	}

	attempts := uc.InternalConfig.Booking.LockRetries + 1
	var busyKey string
	for attempt := 0; attempt < attempts; attempt++ {
		release, key, err := uc.acquireDayLocksOrdered(ctx, targets)
		if err == nil {
			return release, nil
		}
		if !errors.Is(err, errLockBusy) {
			return nil, exceptions.ErrRedisSet(err)
		}
		busyKey = key

		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
			case <-time.After(uc.InternalConfig.Booking.LockRetryBackoff):
			}
		}
	}

	uc.Log.Warn("bookingUsecase.lockResources lock busy",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingLockKey, busyKey),
	)
	return nil, exceptions.ErrBookingLocked(nil, busyKey)
}
