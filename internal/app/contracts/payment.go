package contracts

import (
	"context"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"time"
)

type PaymentUsecase interface {
	Record(ctx context.Context, clubID, userID string, request *requests.CreatePayment) (*responses.RecordPayment, error)
	FindByBooking(ctx context.Context, clubID, bookingID string) ([]models.Payment, error)
	FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Payment, error)
	Remove(ctx context.Context, clubID, paymentID string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, paymentID string) (*models.Payment, error)
	FindByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error)
	FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Payment, error)
	SumByBookingID(ctx context.Context, bookingID string) (float64, error)
	DeleteByID(ctx context.Context, paymentID string) (bool, error)
}
