package closedDates

import (
	"context"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// closedDateUsecase manages club closures. Closures are informational and do
// not block booking writes.
type closedDateUsecase struct {
	ClosedDateRepository contracts.ClosedDateRepository
	Log                  *zap.Logger
	location             *time.Location
	now                  func() time.Time
}

func NewClosedDateUsecase(closedDateRepository contracts.ClosedDateRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ClosedDateUsecase {
	return &closedDateUsecase{
		ClosedDateRepository: closedDateRepository,
		Log:                  logger,
		location:             internalConfig.Location(),
		now:                  time.Now,
	}
}

func (uc *closedDateUsecase) Create(ctx context.Context, clubID, userID string, request *requests.CreateClosedDate) (*models.ClosedDate, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("closedDateUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)

	parsed, err := utils.ParseISOTime(request.ClosedDate, uc.location)
	if err != nil {
		return nil, exceptions.ErrBookingValidation(err, "closed_date "+constvars.CustomValidationErrorMessages["iso_datetime"])
	}
	day := utils.StartOfDay(parsed, uc.location)

	existing, err := uc.ClosedDateRepository.FindByClubAndDay(ctx, clubID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrClosedDateExists(nil, clubID, utils.FormatDate(day, uc.location))
	}

	now := uc.now().UTC()
	closedDate := &models.ClosedDate{
		ID:              uuid.NewString(),
		ClubID:          clubID,
		ClosedDate:      day,
		Reason:          request.Reason,
		CreatedByUserID: userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.ClosedDateRepository.Insert(ctx, closedDate); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "closed_date.created", requestID,
		zap.String(constvars.LoggingClosedDateIDKey, closedDate.ID),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)
	return closedDate, nil
}

func (uc *closedDateUsecase) FindAll(ctx context.Context, clubID string, from, to *time.Time) ([]models.ClosedDate, error) {
	if from == nil || to == nil {
		return uc.ClosedDateRepository.FindByClub(ctx, clubID, nil, nil)
	}
	start := utils.StartOfDay(*from, uc.location)
	end := utils.EndOfDay(*to, uc.location)
	return uc.ClosedDateRepository.FindByClub(ctx, clubID, &start, &end)
}

func (uc *closedDateUsecase) FindOne(ctx context.Context, clubID, closedDateID string) (*models.ClosedDate, error) {
	closedDate, err := uc.ClosedDateRepository.FindByID(ctx, closedDateID)
	if err != nil {
		return nil, err
	}
	if closedDate == nil || closedDate.ClubID != clubID {
		return nil, exceptions.ErrClosedDateNotFound(nil, closedDateID)
	}
	return closedDate, nil
}

func (uc *closedDateUsecase) Remove(ctx context.Context, clubID, closedDateID string) error {
	uc.Log.Info("closedDateUsecase.Remove called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClosedDateIDKey, closedDateID),
	)

	if _, err := uc.FindOne(ctx, clubID, closedDateID); err != nil {
		return err
	}
	deleted, err := uc.ClosedDateRepository.DeleteByID(ctx, closedDateID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrClosedDateNotFound(nil, closedDateID)
	}
	return nil
}

func (uc *closedDateUsecase) IsClubClosed(ctx context.Context, clubID string, date time.Time) (*responses.ClubClosedCheck, error) {
	day := utils.StartOfDay(date, uc.location)
	closure, err := uc.ClosedDateRepository.FindByClubAndDay(ctx, clubID, day)
	if err != nil {
		return nil, err
	}

	result := &responses.ClubClosedCheck{Date: utils.FormatDate(day, uc.location)}
	if closure != nil {
		result.IsClosed = true
		result.Closure = &responses.ClosedDateInfo{
			ID:         closure.ID,
			ClosedDate: closure.ClosedDate,
			Reason:     closure.Reason,
		}
	}
	return result, nil
}
