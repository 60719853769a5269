package bookings

import (
	"context"
	"fmt"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AvailabilityValidator checks a court or coach for bookings that collide
// with a candidate interval.
type AvailabilityValidator struct {
	bookings contracts.BookingRepository
	location *time.Location
	log      *zap.Logger
}

func NewAvailabilityValidator(bookings contracts.BookingRepository, location *time.Location, logger *zap.Logger) *AvailabilityValidator {
	if location == nil {
		location = time.UTC
	}
	return &AvailabilityValidator{bookings: bookings, location: location, log: logger}
}

// FindConflicts returns the bookings of the resource overlapping [start, end),
// ignoring excludeBookingID.
func (v *AvailabilityValidator) FindConflicts(ctx context.Context, kind models.ResourceKind, resourceID string, start, end time.Time, excludeBookingID string) ([]models.Booking, error) {
	candidates, err := v.bookings.FindOverlapping(ctx, kind, resourceID, start, end)
	if err != nil {
		return nil, err
	}

	var conflicts []models.Booking
	for _, existing := range candidates {
		if excludeBookingID != "" && existing.ID == excludeBookingID {
			continue
		}
		if Overlaps(start, end, existing.StartDateTime, existing.EndDateTime) {
			conflicts = append(conflicts, existing)
		}
	}
	return conflicts, nil
}

func (v *AvailabilityValidator) ValidateAvailability(ctx context.Context, kind models.ResourceKind, resourceID string, start, end time.Time, excludeBookingID string) error {
	conflicts, err := v.FindConflicts(ctx, kind, resourceID, start, end, excludeBookingID)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		return nil
	}

	v.log.Info("AvailabilityValidator.ValidateAvailability conflict found",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(string(kind)+"_id", resourceID),
		zap.Int(constvars.LoggingCountKey, len(conflicts)),
	)
	return v.conflictError(kind, resourceID, conflicts)
}

func (v *AvailabilityValidator) conflictError(kind models.ResourceKind, resourceID string, conflicts []models.Booking) *exceptions.CustomError {
	described := make([]string, 0, len(conflicts))
	data := make([]responses.BookingConflict, 0, len(conflicts))
	for _, c := range conflicts {
		described = append(described, fmt.Sprintf("%s (%s - %s)",
			c.BookingName,
			c.StartDateTime.In(v.location).Format(constvars.ConflictTimeLayout),
			c.EndDateTime.In(v.location).Format(constvars.ConflictTimeLayout),
		))
		data = append(data, responses.BookingConflict{
			BookingID:     c.ID,
			BookingName:   c.BookingName,
			StartDateTime: c.StartDateTime,
			EndDateTime:   c.EndDateTime,
		})
	}

	message := fmt.Sprintf("%s is not available during the requested time slot. Conflicts with: %s",
		kind.Label(), strings.Join(described, ", "))
	return exceptions.ErrBookingConflict(nil, message, string(kind), resourceID, len(conflicts)).WithData(data)
}
