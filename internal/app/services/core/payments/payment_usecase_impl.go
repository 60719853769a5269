package payments

import (
	"context"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/app/services/shared/locker"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/events"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository contracts.PaymentRepository
	BookingRepository contracts.BookingRepository
	Publisher         contracts.EventPublisher
	Locker            contracts.LockerService
	Log               *zap.Logger
	lockOptions       locker.AcquireOptions
	location          *time.Location
	now               func() time.Time
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	publisher contracts.EventPublisher,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository: paymentRepository,
		BookingRepository: bookingRepository,
		Publisher:         publisher,
		Locker:            lockerService,
		Log:               logger,
		lockOptions: locker.AcquireOptions{
			TTL:     internalConfig.Booking.LockTTL,
			Retries: internalConfig.Booking.LockRetries,
			Backoff: internalConfig.Booking.LockRetryBackoff,
		},
		location: internalConfig.Location(),
		now:      time.Now,
	}
}

func (uc *paymentUsecase) findBooking(ctx context.Context, clubID, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.ClubID != clubID {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}
	return booking, nil
}

func (uc *paymentUsecase) Record(ctx context.Context, clubID, userID string, request *requests.CreatePayment) (*responses.RecordPayment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.Record called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
	)

	release, err := uc.lockLedger(ctx, request.BookingID)
	if err != nil {
		return nil, err
	}
	defer release(context.WithoutCancel(ctx))

	booking, err := uc.findBooking(ctx, clubID, request.BookingID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	paidAt := now
	if request.PaidAt != "" {
		if paidAt, err = utils.ParseISOTime(request.PaidAt, uc.location); err != nil {
			return nil, exceptions.ErrBookingValidation(err, "paid_at "+constvars.CustomValidationErrorMessages["iso_datetime"])
		}
	}

	payment := &models.Payment{
		ID:              uuid.NewString(),
		BookingID:       booking.ID,
		ClubID:          clubID,
		Amount:          request.Amount,
		Method:          models.PaymentMethod(strings.ToUpper(request.Method)),
		PaidAt:          paidAt.UTC(),
		CreatedByUserID: userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.PaymentRepository.Create(ctx, payment); err != nil {
		return nil, err
	}

	total, status, err := uc.reconcile(ctx, booking)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventPaymentRecorded, payment, total, status)
	return &responses.RecordPayment{
		Payment:       payment,
		TotalReceived: total,
		PaymentStatus: string(status),
	}, nil
}

// lockLedger serialises ledger writes and reconciliation of one booking.
func (uc *paymentUsecase) lockLedger(ctx context.Context, bookingID string) (func(context.Context), error) {
	return locker.AcquireWithRetry(ctx, uc.Locker, uc.Log, locker.PaymentLedgerKey(bookingID), uc.lockOptions)
}

// reconcile recomputes the booking's received total from the ledger and
// writes the derived payment status back to the booking.
func (uc *paymentUsecase) reconcile(ctx context.Context, booking *models.Booking) (float64, models.PaymentStatus, error) {
	total, err := uc.PaymentRepository.SumByBookingID(ctx, booking.ID)
	if err != nil {
		return 0, "", err
	}
	status := models.DerivePaymentStatus(total, booking.Price)
	if err := uc.BookingRepository.UpdatePaymentSummary(ctx, booking.ID, total, status); err != nil {
		return 0, "", err
	}
	return total, status, nil
}

func (uc *paymentUsecase) FindByBooking(ctx context.Context, clubID, bookingID string) ([]models.Payment, error) {
	if _, err := uc.findBooking(ctx, clubID, bookingID); err != nil {
		return nil, err
	}
	return uc.PaymentRepository.FindByBookingID(ctx, bookingID)
}

func (uc *paymentUsecase) FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Payment, error) {
	if from == nil || to == nil {
		return uc.PaymentRepository.FindByClub(ctx, clubID, nil, nil)
	}
	start, end := utils.StartOfDay(*from, uc.location), utils.EndOfDay(*to, uc.location)
	return uc.PaymentRepository.FindByClub(ctx, clubID, &start, &end)
}

func (uc *paymentUsecase) Remove(ctx context.Context, clubID, paymentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.Remove called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)

	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil || payment.ClubID != clubID {
		return exceptions.ErrPaymentNotFound(nil, paymentID)
	}

	release, err := uc.lockLedger(ctx, payment.BookingID)
	if err != nil {
		return err
	}
	defer release(context.WithoutCancel(ctx))

	deleted, err := uc.PaymentRepository.DeleteByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrPaymentNotFound(nil, paymentID)
	}

	booking, err := uc.BookingRepository.FindByID(ctx, payment.BookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		// booking already gone, nothing to reconcile
		return nil
	}

	total, status, err := uc.reconcile(ctx, booking)
	if err != nil {
		return err
	}
	uc.publish(ctx, constvars.EventPaymentRemoved, payment, total, status)
	return nil
}

func (uc *paymentUsecase) publish(ctx context.Context, routingKey string, payment *models.Payment, total float64, status models.PaymentStatus) {
	if uc.Publisher == nil {
		return
	}
	err := uc.Publisher.PublishJSON(ctx, routingKey, events.PaymentEvent{
		Event:         routingKey,
		PaymentID:     payment.ID,
		BookingID:     payment.BookingID,
		ClubID:        payment.ClubID,
		Amount:        payment.Amount,
		TotalReceived: total,
		PaymentStatus: string(status),
		OccurredAt:    uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("paymentUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}
