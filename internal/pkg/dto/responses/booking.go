package responses

import (
	"padel-service/internal/app/models"
	"time"
)

type CreateBookingResult struct {
	Bookings []models.Booking `json:"bookings"`
	SeriesID string           `json:"series_id,omitempty"`
	Created  int              `json:"created"`
	Skipped  int              `json:"skipped"`
}

// BookingConflict describes one existing booking that collides with a candidate interval.
type BookingConflict struct {
	BookingID     string    `json:"booking_id"`
	BookingName   string    `json:"booking_name"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
}

type CancelSeriesResult struct {
	SeriesID string `json:"series_id"`
	Deleted  int64  `json:"deleted"`
}
