package payments

import (
	"context"
	"errors"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type paymentPostgresRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewPaymentPostgresRepository(db *gorm.DB, logger *zap.Logger) contracts.PaymentRepository {
	return &paymentPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *paymentPostgresRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := r.DB.WithContext(ctx).Create(payment).Error; err != nil {
		r.Log.Error("paymentPostgresRepository.Create error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBookingIDKey, payment.BookingID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *paymentPostgresRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.DB.WithContext(ctx).First(&payment, "id = ?", paymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &payment, nil
}

func (r *paymentPostgresRepository) FindByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	err := r.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return payments, nil
}

func (r *paymentPostgresRepository) FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Payment, error) {
	query := r.DB.WithContext(ctx).Where("club_id = ?", clubID)
	if from != nil && to != nil {
		query = query.Where("paid_at BETWEEN ? AND ?", *from, *to)
	}

	payments := make([]models.Payment, 0)
	if err := query.Order("paid_at ASC").Find(&payments).Error; err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return payments, nil
}

func (r *paymentPostgresRepository) SumByBookingID(ctx context.Context, bookingID string) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("booking_id = ?", bookingID).
		Scan(&total).Error
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (r *paymentPostgresRepository) DeleteByID(ctx context.Context, paymentID string) (bool, error) {
	result := r.DB.WithContext(ctx).Delete(&models.Payment{}, "id = ?", paymentID)
	if result.Error != nil {
		return false, exceptions.ErrPostgresDBDeleteData(result.Error)
	}
	return result.RowsAffected > 0, nil
}
