package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAvailabilityValidator(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 11, 24, 10, 0, 0, 0, time.UTC)
	repo := NewBookingMemoryRepository(
		models.Booking{ID: "b1", ClubID: "club-1", CourtID: "court-1", CoachID: "coach-1", BookingName: "Ahmed", StartDateTime: start, EndDateTime: start.Add(time.Hour)},
		models.Booking{ID: "b2", ClubID: "club-1", CourtID: "court-1", BookingName: "Lina", StartDateTime: start.Add(2 * time.Hour), EndDateTime: start.Add(3 * time.Hour)},
	)
	v := NewAvailabilityValidator(repo, time.UTC, zap.NewNop())

	t.Run("free slot", func(t *testing.T) {
		err := v.ValidateAvailability(ctx, models.ResourceCourt, "court-1", start.Add(time.Hour), start.Add(2*time.Hour), "")
		assert.NoError(t, err)
	})

	t.Run("court conflict lists every booking", func(t *testing.T) {
		err := v.ValidateAvailability(ctx, models.ResourceCourt, "court-1", start.Add(30*time.Minute), start.Add(150*time.Minute), "")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t,
			"Court is not available during the requested time slot. Conflicts with: Ahmed (2025-11-24 10:00 - 2025-11-24 11:00), Lina (2025-11-24 12:00 - 2025-11-24 13:00)",
			customErr.ClientMessage,
		)

		conflicts, ok := customErr.Data.([]responses.BookingConflict)
		require.True(t, ok)
		require.Len(t, conflicts, 2)
		assert.Equal(t, "b1", conflicts[0].BookingID)
	})

	t.Run("coach conflict is labelled", func(t *testing.T) {
		err := v.ValidateAvailability(ctx, models.ResourceCoach, "coach-1", start, start.Add(time.Hour), "")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.ClientMessage, "Coach is not available")
	})

	t.Run("excluded booking does not conflict with itself", func(t *testing.T) {
		err := v.ValidateAvailability(ctx, models.ResourceCourt, "court-1", start.Add(15*time.Minute), start.Add(75*time.Minute), "b1")
		assert.NoError(t, err)
	})

	t.Run("times are rendered in the club timezone", func(t *testing.T) {
		local := NewAvailabilityValidator(repo, time.FixedZone("AST", 3*60*60), zap.NewNop())
		err := local.ValidateAvailability(ctx, models.ResourceCourt, "court-1", start, start.Add(time.Hour), "")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.ClientMessage, "Ahmed (2025-11-24 13:00 - 2025-11-24 14:00)")
	})
}
