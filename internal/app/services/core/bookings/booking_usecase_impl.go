package bookings

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
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	ClubResources     contracts.ClubResourceRepository
	Locker            contracts.LockerService
	Publisher         contracts.EventPublisher
	Availability      *AvailabilityValidator
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	location          *time.Location
	now               func() time.Time
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	clubResources contracts.ClubResourceRepository,
	lockerService contracts.LockerService,
	publisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	location := internalConfig.Location()
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		ClubResources:     clubResources,
		Locker:            lockerService,
		Publisher:         publisher,
		Availability:      NewAvailabilityValidator(bookingRepository, location, logger),
		InternalConfig:    internalConfig,
		Log:               logger,
		location:          location,
		now:               time.Now,
	}
}

func (uc *bookingUsecase) Create(ctx context.Context, clubID, userID string, draft requests.CreateBookingDraft) (*responses.CreateBookingResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClubIDKey, clubID),
		zap.String("booking_type", draft.Kind()),
	)

	switch d := draft.(type) {
	case *requests.CreateSingleBooking:
		return uc.createSingle(ctx, clubID, userID, &d.CreateBookingBase, models.BookingTypeSingle, d.CoachID, d.StartDateTime, d.EndDateTime, d.DurationMinutes)
	case *requests.CreateCoachBooking:
		if d.CoachID == "" {
			return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientCoachRequired)
		}
		return uc.createSingle(ctx, clubID, userID, &d.CreateBookingBase, models.BookingTypeCoach, d.CoachID, d.StartDateTime, d.EndDateTime, d.DurationMinutes)
	case *requests.CreateFixedBooking:
		return uc.createFixed(ctx, clubID, userID, d)
	default:
		return nil, exceptions.ErrBookingValidation(requests.ErrUnknownBookingType, constvars.ErrClientUnknownBookingType)
	}
}

// resolveInterval computes the booking end from an explicit end or from the
// duration, in that order.
func (uc *bookingUsecase) resolveInterval(rawStart, rawEnd string, durationMinutes int) (time.Time, time.Time, error) {
	start, err := utils.ParseISOTime(rawStart, uc.location)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrBookingValidation(err, "start_date_time "+constvars.CustomValidationErrorMessages["iso_datetime"])
	}

	var end time.Time
	switch {
	case rawEnd != "":
		end, err = utils.ParseISOTime(rawEnd, uc.location)
		if err != nil {
			return time.Time{}, time.Time{}, exceptions.ErrBookingValidation(err, "end_date_time "+constvars.CustomValidationErrorMessages["iso_datetime"])
		}
	case durationMinutes > 0:
		end = start.Add(time.Duration(durationMinutes) * time.Minute)
	default:
		return time.Time{}, time.Time{}, exceptions.ErrBookingValidation(nil, constvars.ErrClientEndOrDurationRequired)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, exceptions.ErrBookingValidation(nil, constvars.ErrClientEndBeforeStart)
	}
	return start, end, nil
}

func (uc *bookingUsecase) ensureCourt(ctx context.Context, clubID, courtID string) error {
	court, err := uc.ClubResources.FindCourtByID(ctx, clubID, courtID)
	if err != nil {
		return err
	}
	if court == nil {
		return exceptions.ErrCourtNotFound(nil, courtID, clubID)
	}
	return nil
}

func (uc *bookingUsecase) ensureCoach(ctx context.Context, clubID, coachID string) error {
	if coachID == "" {
		return nil
	}
	coach, err := uc.ClubResources.FindCoachByID(ctx, clubID, coachID)
	if err != nil {
		return err
	}
	if coach == nil {
		return exceptions.ErrCoachNotFound(nil, coachID, clubID)
	}
	return nil
}

// validateResources checks the court and, when present, the coach.
func (uc *bookingUsecase) validateResources(ctx context.Context, courtID, coachID string, start, end time.Time, excludeBookingID string) error {
	if err := uc.Availability.ValidateAvailability(ctx, models.ResourceCourt, courtID, start, end, excludeBookingID); err != nil {
		return err
	}
	if coachID == "" {
		return nil
	}
	return uc.Availability.ValidateAvailability(ctx, models.ResourceCoach, coachID, start, end, excludeBookingID)
}

func (uc *bookingUsecase) newBooking(clubID, userID string, base *requests.CreateBookingBase, bookingType models.BookingType, coachID string, start, end time.Time) models.Booking {
	now := uc.now().UTC()
	return models.Booking{
		ID:                uuid.NewString(),
		ClubID:            clubID,
		CourtID:           base.CourtID,
		CoachID:           coachID,
		CustomerID:        base.CustomerID,
		BookingName:       base.BookingName,
		Phone:             base.Phone,
		BookingType:       bookingType,
		StartDateTime:     start,
		EndDateTime:       end,
		DurationMinutes:   utils.DurationInMinutes(start, end),
		Price:             base.Price,
		TotalReceived:     0,
		PaymentStatus:     models.PaymentStatusNotPaid,
		BookingCategoryID: base.BookingCategoryID,
		Notes:             base.Notes,
		CreatedByUserID:   userID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (uc *bookingUsecase) createSingle(ctx context.Context, clubID, userID string, base *requests.CreateBookingBase, bookingType models.BookingType, coachID, rawStart, rawEnd string, durationMinutes int) (*responses.CreateBookingResult, error) {
	start, end, err := uc.resolveInterval(rawStart, rawEnd, durationMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureCourt(ctx, clubID, base.CourtID); err != nil {
		return nil, err
	}
	if err := uc.ensureCoach(ctx, clubID, coachID); err != nil {
		return nil, err
	}

	release, err := uc.lockResources(ctx, []lockWindow{
		{Kind: models.ResourceCourt, ResourceID: base.CourtID, Start: start, End: end},
		{Kind: models.ResourceCoach, ResourceID: coachID, Start: start, End: end},
	})
	if err != nil {
		return nil, err
	}
	defer release(context.WithoutCancel(ctx))

	if err := uc.validateResources(ctx, base.CourtID, coachID, start, end, ""); err != nil {
		return nil, err
	}

	booking := uc.newBooking(clubID, userID, base, bookingType, coachID, start, end)
	if err := uc.BookingRepository.Insert(ctx, &booking); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventBookingCreated, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingBookingIDKey, booking.ID),
		zap.String(constvars.LoggingCourtIDKey, booking.CourtID),
	)
	uc.publishBookingEvent(ctx, constvars.EventBookingCreated, &booking, 1)

	return &responses.CreateBookingResult{
		Bookings: []models.Booking{booking},
		Created:  1,
	}, nil
}

func (uc *bookingUsecase) createFixed(ctx context.Context, clubID, userID string, d *requests.CreateFixedBooking) (*responses.CreateBookingResult, error) {
	requestID := utils.GetRequestID(ctx)

	first, err := utils.ParseISOTime(d.StartDateTime, uc.location)
	if err != nil {
		return nil, exceptions.ErrBookingValidation(err, "start_date_time "+constvars.CustomValidationErrorMessages["iso_datetime"])
	}
	endDate, err := utils.ParseISOTime(d.RecurrenceEndDate, uc.location)
	if err != nil {
		return nil, exceptions.ErrBookingValidation(err, "recurrence_end_date "+constvars.CustomValidationErrorMessages["iso_datetime"])
	}

	occurrences, days, err := expandFixed(first, d.DurationMinutes, d.RepeatedDayOfWeek, d.RepeatedDaysOfWeek, endDate)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureCourt(ctx, clubID, d.CourtID); err != nil {
		return nil, err
	}

	windows := make([]lockWindow, 0, len(occurrences))
	for _, o := range occurrences {
		windows = append(windows, lockWindow{Kind: models.ResourceCourt, ResourceID: d.CourtID, Start: o.Start, End: o.End})
	}
	release, err := uc.lockResources(ctx, windows)
	if err != nil {
		return nil, err
	}
	defer release(context.WithoutCancel(ctx))

	conflicted := make([]bool, len(occurrences))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(uc.InternalConfig.Booking.MaxParallelChecks, 1))
	for i, o := range occurrences {
		i, o := i, o
		g.Go(func() error {
			conflicts, err := uc.Availability.FindConflicts(gctx, models.ResourceCourt, d.CourtID, o.Start, o.End, "")
			if err != nil {
				return err
			}
			conflicted[i] = len(conflicts) > 0
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seriesID := uuid.NewString()
	recurrenceEnd := utils.StartOfDay(endDate, uc.location)

	var singleDay models.DayOfWeek
	var multiDays []models.DayOfWeek
	if len(d.RepeatedDaysOfWeek) > 0 {
		multiDays = days
	} else {
		singleDay = days[0]
	}

	created := make([]models.Booking, 0, len(occurrences))
	for i, o := range occurrences {
		if conflicted[i] {
			continue
		}
		booking := uc.newBooking(clubID, userID, &d.CreateBookingBase, models.BookingTypeFixed, "", o.Start, o.End)
		booking.SeriesID = seriesID
		booking.RepeatedDayOfWeek = singleDay
		booking.RepeatedDaysOfWeek = multiDays
		booking.RecurrenceEndDate = &recurrenceEnd
		created = append(created, booking)
	}

	skipped := len(occurrences) - len(created)
	if len(created) == 0 {
		uc.Log.Info("bookingUsecase.createFixed every occurrence conflicts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(occurrences)),
		)
		return nil, exceptions.ErrAllOccurrencesConflict(nil, len(occurrences))
	}

	if err := uc.BookingRepository.InsertMany(ctx, created); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.EventBookingCreated, requestID,
		zap.String(constvars.LoggingSeriesIDKey, seriesID),
		zap.Int("created", len(created)),
		zap.Int("skipped", skipped),
	)
	uc.publishBookingEvent(ctx, constvars.EventBookingCreated, &created[0], int64(len(created)))

	return &responses.CreateBookingResult{
		Bookings: created,
		SeriesID: seriesID,
		Created:  len(created),
		Skipped:  skipped,
	}, nil
}

func (uc *bookingUsecase) FindOne(ctx context.Context, clubID, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.ClubID != clubID {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}
	return booking, nil
}

func (uc *bookingUsecase) FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.Booking, error) {
	uc.Log.Info("bookingUsecase.FindByClub called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)
	if from == nil || to == nil {
		from, to = nil, nil
	}
	return uc.BookingRepository.FindByClub(ctx, clubID, from, to)
}

func (uc *bookingUsecase) Update(ctx context.Context, clubID, bookingID string, request *requests.UpdateBooking) (*models.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	// a price change re-derives the payment status, so it shares the ledger
	// lock with payment recording
	if request.Price != nil {
		release, err := locker.AcquireWithRetry(ctx, uc.Locker, uc.Log, locker.PaymentLedgerKey(bookingID), locker.AcquireOptions{
			TTL:     uc.InternalConfig.Booking.LockTTL,
			Retries: uc.InternalConfig.Booking.LockRetries,
			Backoff: uc.InternalConfig.Booking.LockRetryBackoff,
		})
		if err != nil {
			return nil, err
		}
		defer release(context.WithoutCancel(ctx))
	}

	existing, err := uc.FindOne(ctx, clubID, bookingID)
	if err != nil {
		return nil, err
	}

	start, end := existing.StartDateTime, existing.EndDateTime
	if request.StartDateTime != nil {
		if start, err = utils.ParseISOTime(*request.StartDateTime, uc.location); err != nil {
			return nil, exceptions.ErrBookingValidation(err, "start_date_time "+constvars.CustomValidationErrorMessages["iso_datetime"])
		}
	}
	if request.EndDateTime != nil {
		if end, err = utils.ParseISOTime(*request.EndDateTime, uc.location); err != nil {
			return nil, exceptions.ErrBookingValidation(err, "end_date_time "+constvars.CustomValidationErrorMessages["iso_datetime"])
		}
	}

	courtID := existing.CourtID
	courtChanged := request.CourtID != nil && *request.CourtID != existing.CourtID
	if courtChanged {
		courtID = *request.CourtID
		if err := uc.ensureCourt(ctx, clubID, courtID); err != nil {
			return nil, err
		}
	}

	if existing.BookingType == models.BookingTypeCoach && request.CoachID != nil && *request.CoachID == "" {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientCoachRequired)
	}

	coachID := existing.CoachID
	coachChanged := request.CoachID != nil && *request.CoachID != existing.CoachID
	if coachChanged {
		coachID = *request.CoachID
		if err := uc.ensureCoach(ctx, clubID, coachID); err != nil {
			return nil, err
		}
	}

	update := models.BookingUpdate{
		CustomerID:        request.CustomerID,
		BookingName:       request.BookingName,
		Phone:             request.Phone,
		Price:             request.Price,
		BookingCategoryID: request.BookingCategoryID,
		Notes:             request.Notes,
		UpdatedAt:         uc.now().UTC(),
	}
	if request.Price != nil {
		status := models.DerivePaymentStatus(existing.TotalReceived, *request.Price)
		update.PaymentStatus = &status
	}

	scheduleChanged := request.StartDateTime != nil || request.EndDateTime != nil || courtChanged || coachChanged
	if scheduleChanged {
		if !end.After(start) {
			return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientEndBeforeStart)
		}

		release, err := uc.lockResources(ctx, []lockWindow{
			{Kind: models.ResourceCourt, ResourceID: courtID, Start: start, End: end},
			{Kind: models.ResourceCoach, ResourceID: coachID, Start: start, End: end},
		})
		if err != nil {
			return nil, err
		}
		defer release(context.WithoutCancel(ctx))

		if err := uc.validateResources(ctx, courtID, coachID, start, end, existing.ID); err != nil {
			return nil, err
		}

		duration := utils.DurationInMinutes(start, end)
		update.StartDateTime = &start
		update.EndDateTime = &end
		update.DurationMinutes = &duration
		if courtChanged {
			update.CourtID = &courtID
		}
		if coachChanged {
			update.CoachID = &coachID
		}
	}

	updated, err := uc.BookingRepository.Update(ctx, existing.ID, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}

	uc.publishBookingEvent(ctx, constvars.EventBookingUpdated, updated, 1)
	return updated, nil
}

func (uc *bookingUsecase) DragDropUpdate(ctx context.Context, clubID, bookingID string, request *requests.DragDropBooking) (*models.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.DragDropUpdate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	start, end, err := uc.resolveInterval(request.StartDateTime, request.EndDateTime, 0)
	if err != nil {
		return nil, err
	}

	existing, err := uc.FindOne(ctx, clubID, bookingID)
	if err != nil {
		return nil, err
	}

	courtID := existing.CourtID
	if request.CourtID != "" {
		courtID = request.CourtID
		if err := uc.ensureCourt(ctx, clubID, courtID); err != nil {
			return nil, err
		}
	}
	coachID := existing.CoachID
	if request.CoachID != "" {
		coachID = request.CoachID
		if err := uc.ensureCoach(ctx, clubID, coachID); err != nil {
			return nil, err
		}
	}

	release, err := uc.lockResources(ctx, []lockWindow{
		{Kind: models.ResourceCourt, ResourceID: courtID, Start: start, End: end},
		{Kind: models.ResourceCoach, ResourceID: coachID, Start: start, End: end},
	})
	if err != nil {
		return nil, err
	}
	defer release(context.WithoutCancel(ctx))

	if err := uc.validateResources(ctx, courtID, coachID, start, end, existing.ID); err != nil {
		return nil, err
	}

	duration := utils.DurationInMinutes(start, end)
	update := models.BookingUpdate{
		StartDateTime:   &start,
		EndDateTime:     &end,
		DurationMinutes: &duration,
		UpdatedAt:       uc.now().UTC(),
	}
	if request.CourtID != "" {
		update.CourtID = &request.CourtID
	}
	if request.CoachID != "" {
		update.CoachID = &request.CoachID
	}

	updated, err := uc.BookingRepository.Update(ctx, existing.ID, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrBookingNotFound(nil, bookingID)
	}

	uc.publishBookingEvent(ctx, constvars.EventBookingRescheduled, updated, 1)
	return updated, nil
}

func (uc *bookingUsecase) Remove(ctx context.Context, clubID, bookingID string) error {
	uc.Log.Info("bookingUsecase.Remove called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return uc.deleteOne(ctx, clubID, bookingID)
}

// CancelOccurrence removes one booking of a series and leaves the others.
func (uc *bookingUsecase) CancelOccurrence(ctx context.Context, clubID, bookingID string) error {
	uc.Log.Info("bookingUsecase.CancelOccurrence called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return uc.deleteOne(ctx, clubID, bookingID)
}

func (uc *bookingUsecase) deleteOne(ctx context.Context, clubID, bookingID string) error {
	existing, err := uc.FindOne(ctx, clubID, bookingID)
	if err != nil {
		return err
	}

	deleted, err := uc.BookingRepository.DeleteByID(ctx, existing.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrBookingNotFound(nil, bookingID)
	}

	uc.publishBookingEvent(ctx, constvars.EventBookingCancelled, existing, 1)
	return nil
}

func (uc *bookingUsecase) CancelSeries(ctx context.Context, clubID, seriesID string) (*responses.CancelSeriesResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.CancelSeries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSeriesIDKey, seriesID),
	)

	deleted, err := uc.BookingRepository.DeleteBySeriesID(ctx, clubID, seriesID)
	if err != nil {
		return nil, err
	}

	if deleted > 0 {
		uc.publish(ctx, constvars.EventBookingSeriesCancelled, events.BookingEvent{
			Event:      constvars.EventBookingSeriesCancelled,
			ClubID:     clubID,
			SeriesID:   seriesID,
			Count:      deleted,
			OccurredAt: uc.now().UTC(),
		})
	}

	return &responses.CancelSeriesResult{SeriesID: seriesID, Deleted: deleted}, nil
}

func (uc *bookingUsecase) publishBookingEvent(ctx context.Context, routingKey string, booking *models.Booking, count int64) {
	uc.publish(ctx, routingKey, events.BookingEvent{
		Event:         routingKey,
		BookingID:     booking.ID,
		ClubID:        booking.ClubID,
		SeriesID:      booking.SeriesID,
		CourtID:       booking.CourtID,
		CoachID:       booking.CoachID,
		BookingName:   booking.BookingName,
		Phone:         booking.Phone,
		StartDateTime: booking.StartDateTime,
		EndDateTime:   booking.EndDateTime,
		Count:         count,
		OccurredAt:    uc.now().UTC(),
	})
}

// publish never fails the request; the booking is already persisted.
func (uc *bookingUsecase) publish(ctx context.Context, routingKey string, event events.BookingEvent) {
	if uc.Publisher == nil {
		return
	}
	if err := uc.Publisher.PublishJSON(ctx, routingKey, event); err != nil {
		uc.Log.Warn("bookingUsecase.publish failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}
