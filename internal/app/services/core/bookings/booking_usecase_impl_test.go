package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/app/services/core/clubs"
	"padel-service/internal/app/services/shared/locker"
	"padel-service/internal/app/services/shared/redis"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testClubID = "club-1"

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, routingKey string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

type usecaseFixture struct {
	uc        *bookingUsecase
	repo      *BookingMemoryRepository
	locker    contracts.LockerService
	publisher *recordingPublisher
}

func newFixture(t *testing.T, seed ...models.Booking) *usecaseFixture {
	t.Helper()
	repo := NewBookingMemoryRepository(seed...)
	resources := clubs.NewClubResourceMemoryRepository().
		AddCourt(models.Court{ID: "court-1", ClubID: testClubID, Name: "Court 1"}).
		AddCourt(models.Court{ID: "court-2", ClubID: testClubID, Name: "Court 2"}).
		AddCourt(models.Court{ID: "court-x", ClubID: "club-2", Name: "Elsewhere"}).
		AddCoach(models.Coach{ID: "coach-1", ClubID: testClubID, FullName: "Omar"})
	lockSvc := locker.NewLockService(redis.NewMemoryRepository(), zap.NewNop())
	publisher := &recordingPublisher{}
	cfg := &config.InternalConfig{
		Booking: config.AppBooking{
			LockTTL:           time.Minute,
			LockRetries:       1,
			LockRetryBackoff:  time.Millisecond,
			MaxParallelChecks: 4,
		},
	}

	uc := NewBookingUsecase(repo, resources, lockSvc, publisher, cfg, zap.NewNop()).(*bookingUsecase)
	return &usecaseFixture{uc: uc, repo: repo, locker: lockSvc, publisher: publisher}
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 11, day, hour, minute, 0, 0, time.UTC)
}

func seedBooking(id, courtID, coachID string, start time.Time, minutes int) models.Booking {
	return models.Booking{
		ID:              id,
		ClubID:          testClubID,
		CourtID:         courtID,
		CoachID:         coachID,
		BookingName:     "Existing " + id,
		Phone:           "+966500000000",
		BookingType:     models.BookingTypeSingle,
		StartDateTime:   start,
		EndDateTime:     start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		PaymentStatus:   models.PaymentStatusNotPaid,
	}
}

func base(courtID string) requests.CreateBookingBase {
	return requests.CreateBookingBase{CourtID: courtID, BookingName: "Sara", Phone: "+966500000001", Price: 200}
}

func requireStatus(t *testing.T, err error, status int) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
	return customErr
}

func TestBookingUsecase_CreateSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("end from duration", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   90,
		})
		require.NoError(t, err)
		require.Len(t, result.Bookings, 1)

		created := result.Bookings[0]
		assert.Equal(t, at(24, 11, 30), created.EndDateTime)
		assert.Equal(t, 90, created.DurationMinutes)
		assert.Equal(t, models.PaymentStatusNotPaid, created.PaymentStatus)
		assert.Equal(t, "user-1", created.CreatedByUserID)
		assert.Equal(t, []string{constvars.EventBookingCreated}, f.publisher.keys)

		stored, _ := f.repo.FindByID(ctx, created.ID)
		require.NotNil(t, stored)
	})

	t.Run("explicit end wins over duration", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			EndDateTime:       "2025-11-24T11:00:00Z",
			DurationMinutes:   30,
		})
		require.NoError(t, err)
		assert.Equal(t, 60, result.Bookings[0].DurationMinutes)
	})

	t.Run("neither end nor duration", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
		})
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientEndOrDurationRequired, customErr.ClientMessage)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			EndDateTime:       "2025-11-24T10:00:00Z",
		})
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientEndBeforeStart, customErr.ClientMessage)
	})

	t.Run("court of another club", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-x"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		requireStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("court conflict", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:30:00Z",
			DurationMinutes:   60,
		})
		customErr := requireStatus(t, err, constvars.StatusConflict)
		assert.Contains(t, customErr.ClientMessage, "Court is not available")
		assert.Contains(t, customErr.ClientMessage, "Existing b1 (2025-11-24 10:00 - 2025-11-24 11:00)")
		assert.Empty(t, f.publisher.keys)
	})

	t.Run("back to back is allowed", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T11:00:00Z",
			DurationMinutes:   60,
		})
		assert.NoError(t, err)
	})

	t.Run("resource lock held elsewhere", func(t *testing.T) {
		f := newFixture(t)
		ok, _, err := f.locker.TryLock(ctx, "booking:lock:court:court-1:2025-11-24", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		requireStatus(t, err, constvars.StatusLocked)
	})

	t.Run("publisher failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.err = errors.New("broker down")
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateSingleBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		assert.NoError(t, err)
	})
}

func TestBookingUsecase_CreateCoach(t *testing.T) {
	ctx := context.Background()

	t.Run("coach required", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateCoachBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientCoachRequired, customErr.ClientMessage)
	})

	t.Run("unknown coach", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateCoachBooking{
			CreateBookingBase: base("court-1"),
			CoachID:           "coach-404",
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		requireStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("coach busy on another court", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-2", "coach-1", at(24, 10, 0), 60))
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateCoachBooking{
			CreateBookingBase: base("court-1"),
			CoachID:           "coach-1",
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		customErr := requireStatus(t, err, constvars.StatusConflict)
		assert.Contains(t, customErr.ClientMessage, "Coach is not available")
	})

	t.Run("created with coach", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateCoachBooking{
			CreateBookingBase: base("court-1"),
			CoachID:           "coach-1",
			StartDateTime:     "2025-11-24T10:00:00Z",
			DurationMinutes:   60,
		})
		require.NoError(t, err)
		assert.Equal(t, models.BookingTypeCoach, result.Bookings[0].BookingType)
		assert.Equal(t, "coach-1", result.Bookings[0].CoachID)
	})
}

func TestBookingUsecase_CreateFixed(t *testing.T) {
	ctx := context.Background()

	t.Run("skips conflicting occurrences", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", time.Date(2025, 12, 1, 14, 30, 0, 0, time.UTC), 60))
		result, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateFixedBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T14:00:00Z",
			DurationMinutes:   60,
			RepeatedDayOfWeek: "MONDAY",
			RecurrenceEndDate: "2025-12-15",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Created)
		assert.Equal(t, 1, result.Skipped)
		assert.NotEmpty(t, result.SeriesID)

		for _, b := range result.Bookings {
			assert.Equal(t, result.SeriesID, b.SeriesID)
			assert.Equal(t, models.BookingTypeFixed, b.BookingType)
			assert.Equal(t, models.Monday, b.RepeatedDayOfWeek)
			require.NotNil(t, b.RecurrenceEndDate)
			assert.NotEqual(t, 1, b.StartDateTime.Day())
		}

		all, _ := f.repo.FindByClub(ctx, testClubID, nil, nil)
		assert.Len(t, all, 4)
	})

	t.Run("multiple weekdays", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateFixedBooking{
			CreateBookingBase:  base("court-1"),
			StartDateTime:      "2025-11-24T14:00:00Z",
			DurationMinutes:    60,
			RepeatedDayOfWeek:  "FRIDAY",
			RepeatedDaysOfWeek: []string{"MONDAY", "WEDNESDAY"},
			RecurrenceEndDate:  "2025-12-05",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, result.Created)
		assert.Equal(t, []models.DayOfWeek{models.Monday, models.Wednesday}, result.Bookings[0].RepeatedDaysOfWeek)
	})

	t.Run("all occurrences conflict", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 14, 0), 60))
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateFixedBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T14:00:00Z",
			DurationMinutes:   60,
			RepeatedDayOfWeek: "MONDAY",
			RecurrenceEndDate: "2025-11-24",
		})
		customErr := requireStatus(t, err, constvars.StatusConflict)
		assert.Equal(t, constvars.ErrClientAllOccurrencesConflict, customErr.ClientMessage)

		all, _ := f.repo.FindByClub(ctx, testClubID, nil, nil)
		assert.Len(t, all, 1)
	})

	t.Run("coach availability is not checked", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-2", "coach-1", at(24, 14, 0), 60))
		result, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateFixedBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T14:00:00Z",
			DurationMinutes:   60,
			RepeatedDayOfWeek: "MONDAY",
			RecurrenceEndDate: "2025-11-24",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
	})

	t.Run("no weekday", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Create(ctx, testClubID, "user-1", &requests.CreateFixedBooking{
			CreateBookingBase: base("court-1"),
			StartDateTime:     "2025-11-24T14:00:00Z",
			DurationMinutes:   60,
			RecurrenceEndDate: "2025-12-24",
		})
		requireStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestBookingUsecase_Update(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }

	t.Run("moving within its own slot does not conflict with itself", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		updated, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{
			StartDateTime: strPtr("2025-11-24T10:30:00Z"),
			EndDateTime:   strPtr("2025-11-24T12:00:00Z"),
		})
		require.NoError(t, err)
		assert.Equal(t, at(24, 10, 30), updated.StartDateTime)
		assert.Equal(t, 90, updated.DurationMinutes)
		assert.Equal(t, []string{constvars.EventBookingUpdated}, f.publisher.keys)
	})

	t.Run("merges a partial time change with stored end", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		_, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{
			StartDateTime: strPtr("2025-11-24T11:00:00Z"),
		})
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientEndBeforeStart, customErr.ClientMessage)
	})

	t.Run("conflict with another booking", func(t *testing.T) {
		f := newFixture(t,
			seedBooking("b1", "court-1", "", at(24, 10, 0), 60),
			seedBooking("b2", "court-1", "", at(24, 11, 0), 60),
		)
		_, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{
			EndDateTime: strPtr("2025-11-24T11:30:00Z"),
		})
		requireStatus(t, err, constvars.StatusConflict)
	})

	t.Run("court change is revalidated", func(t *testing.T) {
		f := newFixture(t,
			seedBooking("b1", "court-1", "", at(24, 10, 0), 60),
			seedBooking("b2", "court-2", "", at(24, 10, 0), 60),
		)
		_, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{CourtID: strPtr("court-2")})
		requireStatus(t, err, constvars.StatusConflict)
	})

	t.Run("non scheduling fields skip availability", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		price := 350.0
		updated, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{
			BookingName: strPtr("Renamed"),
			Price:       &price,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.BookingName)
		assert.Equal(t, 350.0, updated.Price)
		assert.Equal(t, at(24, 10, 0), updated.StartDateTime)
	})

	t.Run("other club", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		_, err := f.uc.Update(ctx, "club-2", "b1", &requests.UpdateBooking{BookingName: strPtr("x")})
		requireStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("price change re-derives the payment status", func(t *testing.T) {
		paid := seedBooking("b1", "court-1", "", at(24, 10, 0), 60)
		paid.Price = 100
		paid.TotalReceived = 100
		paid.PaymentStatus = models.PaymentStatusPaid
		f := newFixture(t, paid)

		price := 200.0
		updated, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 200.0, updated.Price)
		assert.Equal(t, 100.0, updated.TotalReceived)
		assert.Equal(t, models.PaymentStatusPartiallyPaid, updated.PaymentStatus)

		price = 100
		updated, err = f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	})

	t.Run("price change waits for the payment ledger", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		ok, _, err := f.locker.TryLock(ctx, locker.PaymentLedgerKey("b1"), time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		price := 200.0
		_, err = f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{Price: &price})
		requireStatus(t, err, constvars.StatusLocked)

		stored, _ := f.repo.FindByID(ctx, "b1")
		assert.Equal(t, 0.0, stored.Price)
	})

	t.Run("coach booking cannot drop its coach", func(t *testing.T) {
		lesson := seedBooking("b1", "court-1", "coach-1", at(24, 10, 0), 60)
		lesson.BookingType = models.BookingTypeCoach
		f := newFixture(t, lesson)

		_, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{CoachID: strPtr("")})
		customErr := requireStatus(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientCoachRequired, customErr.ClientMessage)

		stored, _ := f.repo.FindByID(ctx, "b1")
		assert.Equal(t, "coach-1", stored.CoachID)
		assert.Empty(t, f.publisher.keys)
	})

	t.Run("single booking may drop its coach", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "coach-1", at(24, 10, 0), 60))
		updated, err := f.uc.Update(ctx, testClubID, "b1", &requests.UpdateBooking{CoachID: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.CoachID)
	})
}

func TestBookingUsecase_DragDropUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("moves to another court and keeps the coach", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "coach-1", at(24, 10, 0), 60))
		updated, err := f.uc.DragDropUpdate(ctx, testClubID, "b1", &requests.DragDropBooking{
			StartDateTime: "2025-11-24T12:00:00Z",
			EndDateTime:   "2025-11-24T13:30:00Z",
			CourtID:       "court-2",
		})
		require.NoError(t, err)
		assert.Equal(t, "court-2", updated.CourtID)
		assert.Equal(t, "coach-1", updated.CoachID)
		assert.Equal(t, 90, updated.DurationMinutes)
		assert.Equal(t, []string{constvars.EventBookingRescheduled}, f.publisher.keys)
	})

	t.Run("coach conflict on the new slot", func(t *testing.T) {
		f := newFixture(t,
			seedBooking("b1", "court-1", "coach-1", at(24, 10, 0), 60),
			seedBooking("b2", "court-2", "coach-1", at(24, 12, 0), 60),
		)
		_, err := f.uc.DragDropUpdate(ctx, testClubID, "b1", &requests.DragDropBooking{
			StartDateTime: "2025-11-24T12:00:00Z",
			EndDateTime:   "2025-11-24T13:00:00Z",
		})
		customErr := requireStatus(t, err, constvars.StatusConflict)
		assert.Contains(t, customErr.ClientMessage, "Coach")
	})

	t.Run("end must follow start", func(t *testing.T) {
		f := newFixture(t, seedBooking("b1", "court-1", "", at(24, 10, 0), 60))
		_, err := f.uc.DragDropUpdate(ctx, testClubID, "b1", &requests.DragDropBooking{
			StartDateTime: "2025-11-24T12:00:00Z",
			EndDateTime:   "2025-11-24T11:00:00Z",
		})
		requireStatus(t, err, constvars.StatusBadRequest)
	})
}

func TestBookingUsecase_RemoveAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("remove deletes exactly one booking", func(t *testing.T) {
		f := newFixture(t,
			seedBooking("b1", "court-1", "", at(24, 10, 0), 60),
			seedBooking("b2", "court-1", "", at(24, 12, 0), 60),
		)
		require.NoError(t, f.uc.Remove(ctx, testClubID, "b1"))

		all, _ := f.repo.FindByClub(ctx, testClubID, nil, nil)
		require.Len(t, all, 1)
		assert.Equal(t, "b2", all[0].ID)

		requireStatus(t, f.uc.Remove(ctx, testClubID, "b1"), constvars.StatusNotFound)
	})

	t.Run("cancel occurrence leaves the rest of the series", func(t *testing.T) {
		first := seedBooking("s1", "court-1", "", at(24, 10, 0), 60)
		first.SeriesID = "series-1"
		second := seedBooking("s2", "court-1", "", at(24, 10, 0).AddDate(0, 0, 7), 60)
		second.SeriesID = "series-1"
		f := newFixture(t, first, second)

		require.NoError(t, f.uc.CancelOccurrence(ctx, testClubID, "s1"))
		remaining, _ := f.repo.FindByID(ctx, "s2")
		assert.NotNil(t, remaining)
	})

	t.Run("cancel series is idempotent", func(t *testing.T) {
		first := seedBooking("s1", "court-1", "", at(24, 10, 0), 60)
		first.SeriesID = "series-1"
		second := seedBooking("s2", "court-1", "", at(24, 10, 0).AddDate(0, 0, 7), 60)
		second.SeriesID = "series-1"
		f := newFixture(t, first, second, seedBooking("b3", "court-1", "", at(25, 10, 0), 60))

		result, err := f.uc.CancelSeries(ctx, testClubID, "series-1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Deleted)

		result, err = f.uc.CancelSeries(ctx, testClubID, "series-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Deleted)

		all, _ := f.repo.FindByClub(ctx, testClubID, nil, nil)
		assert.Len(t, all, 1)
		assert.Equal(t, []string{constvars.EventBookingSeriesCancelled}, f.publisher.keys)
	})

	t.Run("cancel series leaves other clubs alone", func(t *testing.T) {
		foreign := seedBooking("o1", "court-x", "", at(24, 10, 0), 60)
		foreign.ClubID = "club-2"
		foreign.SeriesID = "series-other"
		f := newFixture(t, foreign)

		result, err := f.uc.CancelSeries(ctx, testClubID, "series-other")
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.Deleted)

		stored, err := f.repo.FindByID(ctx, "o1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "series-other", stored.SeriesID)
		assert.Empty(t, f.publisher.keys)
	})
}

func TestBookingUsecase_Reads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t,
		seedBooking("b2", "court-1", "", at(25, 10, 0), 60),
		seedBooking("b1", "court-1", "", at(24, 10, 0), 60),
		seedBooking("b3", "court-2", "", at(27, 10, 0), 60),
	)

	t.Run("find one scoped to club", func(t *testing.T) {
		found, err := f.uc.FindOne(ctx, testClubID, "b1")
		require.NoError(t, err)
		assert.Equal(t, "b1", found.ID)

		_, err = f.uc.FindOne(ctx, "club-2", "b1")
		requireStatus(t, err, constvars.StatusNotFound)
	})

	t.Run("sorted by start", func(t *testing.T) {
		all, err := f.uc.FindByClub(ctx, testClubID, nil, nil)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"b1", "b2", "b3"}, []string{all[0].ID, all[1].ID, all[2].ID})
	})

	t.Run("window applies only with both bounds", func(t *testing.T) {
		from, to := at(24, 0, 0), at(25, 23, 59)
		windowed, err := f.uc.FindByClub(ctx, testClubID, &from, &to)
		require.NoError(t, err)
		assert.Len(t, windowed, 2)

		onlyFrom, err := f.uc.FindByClub(ctx, testClubID, &from, nil)
		require.NoError(t, err)
		assert.Len(t, onlyFrom, 3)
	})
}
