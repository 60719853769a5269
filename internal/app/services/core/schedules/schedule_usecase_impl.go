package schedules

import (
	"bytes"
	"context"
	"fmt"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"path"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type scheduleUsecase struct {
	BookingRepository    contracts.BookingRepository
	ClubResources        contracts.ClubResourceRepository
	ClosedDateRepository contracts.ClosedDateRepository
	Storage              contracts.Storage
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	location             *time.Location
	now                  func() time.Time
}

func NewScheduleUsecase(
	bookingRepository contracts.BookingRepository,
	clubResources contracts.ClubResourceRepository,
	closedDateRepository contracts.ClosedDateRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		BookingRepository:    bookingRepository,
		ClubResources:        clubResources,
		ClosedDateRepository: closedDateRepository,
		Storage:              storage,
		InternalConfig:       internalConfig,
		Log:                  logger,
		location:             internalConfig.Location(),
		now:                  time.Now,
	}
}

func (uc *scheduleUsecase) GetDaySchedule(ctx context.Context, clubID string, date time.Time) ([]responses.CourtSchedule, error) {
	uc.Log.Info("scheduleUsecase.GetDaySchedule called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)
	return uc.build(ctx, clubID, utils.StartOfDay(date, uc.location), utils.EndOfDay(date, uc.location))
}

func (uc *scheduleUsecase) GetWeekSchedule(ctx context.Context, clubID string, from, to time.Time) ([]responses.CourtSchedule, error) {
	uc.Log.Info("scheduleUsecase.GetWeekSchedule called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)
	start, end := utils.StartOfDay(from, uc.location), utils.EndOfDay(to, uc.location)
	if end.Before(start) {
		return nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientInvalidDateRange)
	}
	return uc.build(ctx, clubID, start, end)
}

// build groups the window's bookings by court in order of first appearance
// and attaches the club closures of the window to every court.
func (uc *scheduleUsecase) build(ctx context.Context, clubID string, start, end time.Time) ([]responses.CourtSchedule, error) {
	bookings, err := uc.BookingRepository.FindInRange(ctx, clubID, start, end)
	if err != nil {
		return nil, err
	}

	var courtOrder, coachIDs, categoryIDs []string
	seenCourt := make(map[string]bool)
	seenCoach := make(map[string]bool)
	seenCategory := make(map[string]bool)
	for _, b := range bookings {
		if !seenCourt[b.CourtID] {
			seenCourt[b.CourtID] = true
			courtOrder = append(courtOrder, b.CourtID)
		}
		if b.CoachID != "" && !seenCoach[b.CoachID] {
			seenCoach[b.CoachID] = true
			coachIDs = append(coachIDs, b.CoachID)
		}
		if b.BookingCategoryID != "" && !seenCategory[b.BookingCategoryID] {
			seenCategory[b.BookingCategoryID] = true
			categoryIDs = append(categoryIDs, b.BookingCategoryID)
		}
	}

	courts, err := uc.ClubResources.FindCourtsByIDs(ctx, courtOrder)
	if err != nil {
		return nil, err
	}
	coaches, err := uc.ClubResources.FindCoachesByIDs(ctx, coachIDs)
	if err != nil {
		return nil, err
	}
	categories, err := uc.ClubResources.FindCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	closures, err := uc.ClosedDateRepository.FindByClub(ctx, clubID, &start, &end)
	if err != nil {
		return nil, err
	}

	closedDates := make([]responses.ClosedDateInfo, 0, len(closures))
	for _, c := range closures {
		closedDates = append(closedDates, responses.ClosedDateInfo{ID: c.ID, ClosedDate: c.ClosedDate, Reason: c.Reason})
	}

	byCourt := make(map[string]*responses.CourtSchedule, len(courtOrder))
	schedule := make([]responses.CourtSchedule, 0, len(courtOrder))
	for _, courtID := range courtOrder {
		schedule = append(schedule, responses.CourtSchedule{
			CourtID:     courtID,
			CourtName:   courts[courtID].Name,
			Bookings:    []responses.ScheduleEntry{},
			ClosedDates: closedDates,
		})
	}
	for i := range schedule {
		byCourt[schedule[i].CourtID] = &schedule[i]
	}

	for _, b := range bookings {
		court := byCourt[b.CourtID]
		court.Bookings = append(court.Bookings, toScheduleEntry(b, coaches, categories))
	}
	return schedule, nil
}

func toScheduleEntry(b models.Booking, coaches map[string]models.Coach, categories map[string]models.BookingCategory) responses.ScheduleEntry {
	entry := responses.ScheduleEntry{
		ID:              b.ID,
		BookingName:     b.BookingName,
		Phone:           b.Phone,
		BookingType:     string(b.BookingType),
		StartDateTime:   b.StartDateTime,
		EndDateTime:     b.EndDateTime,
		DurationMinutes: b.DurationMinutes,
		CoachID:         b.CoachID,
		CategoryID:      b.BookingCategoryID,
		SeriesID:        b.SeriesID,
		Price:           b.Price,
		TotalReceived:   b.TotalReceived,
		PaymentStatus:   string(b.PaymentStatus),
		Notes:           b.Notes,
	}
	if coach, ok := coaches[b.CoachID]; ok {
		entry.CoachName = coach.FullName
	}
	if category, ok := categories[b.BookingCategoryID]; ok {
		entry.CategoryName = category.Name
		entry.CategoryColor = category.ColorHex
	}
	return entry
}

type scheduleExportDocument struct {
	ClubID      string                    `json:"club_id"`
	From        string                    `json:"from"`
	To          string                    `json:"to"`
	Timezone    string                    `json:"timezone"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Courts      []responses.CourtSchedule `json:"courts"`
}

// ExportWeekSchedule stores the week schedule as a JSON object and returns a
// presigned download link.
func (uc *scheduleUsecase) ExportWeekSchedule(ctx context.Context, clubID string, from, to time.Time) (*responses.ScheduleExport, error) {
	requestID := utils.GetRequestID(ctx)

	schedule, err := uc.GetWeekSchedule(ctx, clubID, from, to)
	if err != nil {
		return nil, err
	}

	fromDate, toDate := utils.FormatDate(from, uc.location), utils.FormatDate(to, uc.location)
	body, err := json.Marshal(scheduleExportDocument{
		ClubID:      clubID,
		From:        fromDate,
		To:          toDate,
		Timezone:    uc.location.String(),
		GeneratedAt: uc.now().UTC(),
		Courts:      schedule,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := path.Join(
		constvars.MinioScheduleExportPrefix,
		clubID,
		utils.GenerateFileName("week", fmt.Sprintf("%s_%s", fromDate, toDate), ".json"),
	)
	if err := uc.Storage.UploadFile(ctx, objectName, bytes.NewReader(body), int64(len(body)), constvars.MIMEApplicationJSON); err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, objectName, expiry)
	if err != nil {
		return nil, err
	}

	bookingCount := 0
	for _, court := range schedule {
		bookingCount += len(court.Bookings)
	}

	utils.LogBusinessEvent(uc.Log, "schedule.exported", requestID,
		zap.String(constvars.LoggingClubIDKey, clubID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.ScheduleExport{
		ObjectName:   objectName,
		DownloadURL:  url,
		ExpiresAt:    uc.now().UTC().Add(expiry),
		CourtsCount:  len(schedule),
		BookingCount: bookingCount,
	}, nil
}
