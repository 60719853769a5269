package contracts

import (
	"context"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"time"
)

type BookingUsecase interface {
	Create(ctx context.Context, clubID, userID string, draft requests.CreateBookingDraft) (*responses.CreateBookingResult, error)
	FindOne(ctx context.Context, clubID, bookingID string) (*models.Booking, error)
	FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Booking, error)
	Update(ctx context.Context, clubID, bookingID string, request *requests.UpdateBooking) (*models.Booking, error)
	DragDropUpdate(ctx context.Context, clubID, bookingID string, request *requests.DragDropBooking) (*models.Booking, error)
	Remove(ctx context.Context, clubID, bookingID string) error
	CancelOccurrence(ctx context.Context, clubID, bookingID string) error
	CancelSeries(ctx context.Context, clubID, seriesID string) (*responses.CancelSeriesResult, error)
}

type BookingRepository interface {
	// FindByID returns nil without error when the booking does not exist.
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Booking, error)
	// FindOverlapping returns the bookings of one court or coach whose interval
	// intersects [start, end).
	FindOverlapping(ctx context.Context, kind models.ResourceKind, resourceID string, start, end time.Time) ([]models.Booking, error)
	// FindInRange returns the club bookings that start in, end in, or span [start, end].
	FindInRange(ctx context.Context, clubID string, start, end time.Time) ([]models.Booking, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	InsertMany(ctx context.Context, bookings []models.Booking) error
	// Update returns nil without error when the booking does not exist.
	Update(ctx context.Context, bookingID string, update models.BookingUpdate) (*models.Booking, error)
	UpdatePaymentSummary(ctx context.Context, bookingID string, totalReceived float64, status models.PaymentStatus) error
	DeleteByID(ctx context.Context, bookingID string) (bool, error)
	DeleteBySeriesID(ctx context.Context, clubID, seriesID string) (int64, error)
}
