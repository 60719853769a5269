package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"padel-service/internal/app/config"
	"padel-service/internal/app/models"
	"padel-service/internal/app/services/core/bookings"
	"padel-service/internal/app/services/shared/locker"
	"padel-service/internal/app/services/shared/redis"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	args := m.Called(routingKey, payload)
	return args.Error(0)
}

func newWorker(t *testing.T, publisher *MockPublisher) (*Worker, *redis.MemoryRepository) {
	t.Helper()
	now := time.Date(2025, 11, 24, 8, 0, 0, 0, time.UTC)
	repo := bookings.NewBookingMemoryRepository(
		models.Booking{ID: "soon", ClubID: "club-1", CourtID: "court-1", StartDateTime: now.Add(30 * time.Minute), EndDateTime: now.Add(90 * time.Minute)},
		models.Booking{ID: "later", ClubID: "club-1", CourtID: "court-1", StartDateTime: now.Add(3 * time.Hour), EndDateTime: now.Add(4 * time.Hour)},
		models.Booking{ID: "past", ClubID: "club-1", CourtID: "court-2", StartDateTime: now.Add(-time.Hour), EndDateTime: now},
	)
	store := redis.NewMemoryRepository()
	cfg := &config.InternalConfig{Reminder: config.AppReminder{CronSpec: "*/15 * * * *", LeadTime: 2 * time.Hour, PublishPerSecond: 50}}
	logger := zap.NewNop()

	w := NewWorker(logger, cfg, locker.NewLockService(store, logger), store, repo, publisher)
	w.now = func() time.Time { return now }
	return w, store
}

func TestWorkerRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("reminds upcoming bookings exactly once", func(t *testing.T) {
		publisher := new(MockPublisher)
		publisher.On("PublishJSON", constvars.EventBookingReminder, mock.MatchedBy(func(e events.BookingEvent) bool {
			return e.BookingID == "soon"
		})).Return(nil).Once()

		w, _ := newWorker(t, publisher)
		assert.Equal(t, 1, w.runOnce(ctx))
		assert.Equal(t, 0, w.runOnce(ctx))
		publisher.AssertExpectations(t)
	})

	t.Run("skips when another instance leads", func(t *testing.T) {
		publisher := new(MockPublisher)
		w, store := newWorker(t, publisher)
		ok, _ := store.TrySetNX(ctx, constvars.RedisKeyReminderWorkerLock, "other", time.Minute)
		assert.True(t, ok)

		assert.Equal(t, 0, w.runOnce(ctx))
		publisher.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything)
	})

	t.Run("failed publish is retried on the next run", func(t *testing.T) {
		publisher := new(MockPublisher)
		publisher.On("PublishJSON", constvars.EventBookingReminder, mock.Anything).Return(errors.New("broker down")).Once()
		publisher.On("PublishJSON", constvars.EventBookingReminder, mock.Anything).Return(nil).Once()

		w, _ := newWorker(t, publisher)
		assert.Equal(t, 0, w.runOnce(ctx))
		assert.Equal(t, 1, w.runOnce(ctx))
		publisher.AssertNumberOfCalls(t, "PublishJSON", 2)
	})
}

func TestWorkerStartStop(t *testing.T) {
	publisher := new(MockPublisher)
	w, _ := newWorker(t, publisher)
	w.cfg.Reminder.CronSpec = "not a cron spec"

	w.Start(context.Background())
	assert.NotNil(t, w.cron)
	assert.Len(t, w.cron.Entries(), 1)
	w.Stop()
}
