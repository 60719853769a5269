package schedules

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"padel-service/internal/app/config"
	"padel-service/internal/app/models"
	"padel-service/internal/app/services/core/bookings"
	closedDates "padel-service/internal/app/services/core/closed_dates"
	"padel-service/internal/app/services/core/clubs"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	body, _ := io.ReadAll(reader)
	args := m.Called(objectName, string(body), size, contentType)
	return args.Error(0)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(objectName, expiry)
	return args.String(0), args.Error(1)
}

func at(day, hour int) time.Time {
	return time.Date(2025, 11, day, hour, 0, 0, 0, time.UTC)
}

func booking(id, courtID string, start time.Time, minutes int) models.Booking {
	return models.Booking{
		ID:              id,
		ClubID:          "club-1",
		CourtID:         courtID,
		BookingName:     "Booking " + id,
		BookingType:     models.BookingTypeSingle,
		StartDateTime:   start,
		EndDateTime:     start.Add(time.Duration(minutes) * time.Minute),
		DurationMinutes: minutes,
		PaymentStatus:   models.PaymentStatusNotPaid,
	}
}

func newUsecase(storage *MockStorage) *scheduleUsecase {
	withCoach := booking("b2", "court-1", at(24, 12), 60)
	withCoach.CoachID = "coach-1"
	withCoach.BookingCategoryID = "cat-1"

	bookingRepo := bookings.NewBookingMemoryRepository(
		booking("b1", "court-2", at(24, 9), 60),
		withCoach,
		booking("b3", "court-1", at(24, 18), 90),
		booking("overnight", "court-3", at(23, 23), 120),
		booking("spanning", "court-4", at(23, 8), 48*60),
		booking("tomorrow", "court-1", at(25, 10), 60),
		models.Booking{ID: "other-club", ClubID: "club-2", CourtID: "court-1", StartDateTime: at(24, 10), EndDateTime: at(24, 11)},
	)
	resources := clubs.NewClubResourceMemoryRepository().
		AddCourt(models.Court{ID: "court-1", ClubID: "club-1", Name: "Center Court"}).
		AddCourt(models.Court{ID: "court-2", ClubID: "club-1", Name: "Court 2"}).
		AddCoach(models.Coach{ID: "coach-1", ClubID: "club-1", FullName: "Omar Coach"}).
		AddCategory(models.BookingCategory{ID: "cat-1", ClubID: "club-1", Name: "Academy", ColorHex: "#FF8800"})
	closures := closedDates.NewClosedDateMemoryRepository(
		models.ClosedDate{ID: "cd-1", ClubID: "club-1", ClosedDate: at(24, 0), Reason: "Maintenance"},
		models.ClosedDate{ID: "cd-2", ClubID: "club-1", ClosedDate: at(30, 0), Reason: "Later"},
	)

	cfg := &config.InternalConfig{Minio: config.AppMinio{PreSignedUrlObjectExpiryInHours: 2}}
	return NewScheduleUsecase(bookingRepo, resources, closures, storage, cfg, zap.NewNop()).(*scheduleUsecase)
}

func TestScheduleUsecase_GetDaySchedule(t *testing.T) {
	uc := newUsecase(nil)

	schedule, err := uc.GetDaySchedule(context.Background(), "club-1", at(24, 15))
	require.NoError(t, err)

	var courtIDs []string
	for _, court := range schedule {
		courtIDs = append(courtIDs, court.CourtID)
	}
	assert.Equal(t, []string{"court-4", "court-3", "court-2", "court-1"}, courtIDs, "first appearance by start time")

	t.Run("enriched entries", func(t *testing.T) {
		center := schedule[3]
		assert.Equal(t, "Center Court", center.CourtName)
		require.Len(t, center.Bookings, 2)
		assert.Equal(t, "b2", center.Bookings[0].ID)
		assert.Equal(t, "Omar Coach", center.Bookings[0].CoachName)
		assert.Equal(t, "Academy", center.Bookings[0].CategoryName)
		assert.Equal(t, "#FF8800", center.Bookings[0].CategoryColor)
	})

	t.Run("unknown court keeps an empty name", func(t *testing.T) {
		assert.Empty(t, schedule[0].CourtName)
	})

	t.Run("closures attached to every court", func(t *testing.T) {
		for _, court := range schedule {
			require.Len(t, court.ClosedDates, 1)
			assert.Equal(t, "cd-1", court.ClosedDates[0].ID)
		}
	})
}

func TestScheduleUsecase_GetWeekSchedule(t *testing.T) {
	uc := newUsecase(nil)

	t.Run("window covers both days", func(t *testing.T) {
		schedule, err := uc.GetWeekSchedule(context.Background(), "club-1", at(24, 0), at(25, 0))
		require.NoError(t, err)

		total := 0
		for _, court := range schedule {
			total += len(court.Bookings)
		}
		assert.Equal(t, 6, total)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := uc.GetWeekSchedule(context.Background(), "club-1", at(25, 0), at(24, 0))
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestScheduleUsecase_ExportWeekSchedule(t *testing.T) {
	storage := new(MockStorage)
	storage.On("UploadFile",
		mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, "schedules/club-1/week_2025-11-24_2025-11-30_") }),
		mock.MatchedBy(func(body string) bool { return strings.Contains(body, `"club_id":"club-1"`) }),
		mock.Anything,
		constvars.MIMEApplicationJSON,
	).Return(nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, 2*time.Hour).Return("https://minio.local/signed", nil)

	uc := newUsecase(storage)
	export, err := uc.ExportWeekSchedule(context.Background(), "club-1", at(24, 0), at(30, 0))
	require.NoError(t, err)

	assert.Equal(t, "https://minio.local/signed", export.DownloadURL)
	assert.Equal(t, 4, export.CourtsCount)
	assert.Equal(t, 6, export.BookingCount)
	storage.AssertExpectations(t)
}
