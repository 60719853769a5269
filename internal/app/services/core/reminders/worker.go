package reminders

import (
	"context"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/events"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const leaderLockTTL = 2 * time.Minute

// Worker publishes a reminder for every booking starting within the lead window.
// Only the instance holding the leader lock does work on a tick.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	redis     contracts.RedisRepository
	bookings  contracts.BookingRepository
	publisher contracts.EventPublisher
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
	now       func() time.Time
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	redisRepository contracts.RedisRepository,
	bookingRepository contracts.BookingRepository,
	publisher contracts.EventPublisher,
) *Worker {
	return &Worker{
		log:       log,
		cfg:       cfg,
		locker:    lockerSvc,
		redis:     redisRepository,
		bookings:  bookingRepository,
		publisher: publisher,
		now:       time.Now,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	if _, err := c.AddFunc(w.cfg.Reminder.CronSpec, w.tick); err != nil {
		w.log.Warn("reminders.worker: invalid cron spec, falling back to @every 15m",
			zap.String("cron_spec", w.cfg.Reminder.CronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@every 15m", w.tick)
	}
	c.Start()
	w.cron = c
}

// Stop waits for an in-flight run to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) tick() {
	_ = utils.LogOperation(w.runCtx, w.log, "reminders.run", func(ctx context.Context) error {
		w.runOnce(ctx)
		return ctx.Err()
	})
}

func (w *Worker) runOnce(ctx context.Context) int {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderWorkerLock, leaderLockTTL)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return 0
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock held by another instance")
		return 0
	}
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyReminderWorkerLock, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.keepLeadership(refreshCtx, token)

	from := w.now().UTC()
	to := from.Add(w.cfg.Reminder.LeadTime)
	upcoming, err := w.bookings.FindStartingBetween(ctx, from, to)
	if err != nil {
		w.log.Warn("reminders.worker: finding upcoming bookings failed", zap.Error(err))
		return 0
	}

	perSecond := w.cfg.Reminder.PublishPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond)

	sent := 0
	for _, booking := range upcoming {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		if w.remind(ctx, booking) {
			sent++
		}
	}

	w.log.Info("reminders.worker: run finished",
		zap.Int("upcoming", len(upcoming)),
		zap.Int("sent", sent),
	)
	return sent
}

func (w *Worker) keepLeadership(ctx context.Context, token string) {
	tick := time.NewTicker(leaderLockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyReminderWorkerLock, token, leaderLockTTL); err != nil {
				w.log.Warn("reminders.worker: failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}

// remind claims the booking's reminder slot before publishing so a booking is
// reminded at most once even across overlapping runs.
func (w *Worker) remind(ctx context.Context, booking models.Booking) bool {
	key := constvars.RedisKeyPrefixReminderSent + ":" + booking.ID
	ttl := booking.EndDateTime.Sub(w.now()) + time.Hour
	if ttl < time.Hour {
		ttl = time.Hour
	}

	claimed, err := w.redis.TrySetNX(ctx, key, booking.StartDateTime.Unix(), ttl)
	if err != nil {
		w.log.Warn("reminders.worker: claiming reminder failed",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return false
	}
	if !claimed {
		return false
	}

	err = w.publisher.PublishJSON(ctx, constvars.EventBookingReminder, events.BookingEvent{
		Event:         constvars.EventBookingReminder,
		BookingID:     booking.ID,
		ClubID:        booking.ClubID,
		SeriesID:      booking.SeriesID,
		CourtID:       booking.CourtID,
		CoachID:       booking.CoachID,
		BookingName:   booking.BookingName,
		Phone:         booking.Phone,
		StartDateTime: booking.StartDateTime,
		EndDateTime:   booking.EndDateTime,
		OccurredAt:    w.now().UTC(),
	})
	if err != nil {
		w.log.Warn("reminders.worker: publishing reminder failed",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		// release the claim so the next run retries
		_ = w.redis.Delete(ctx, key)
		return false
	}
	return true
}
