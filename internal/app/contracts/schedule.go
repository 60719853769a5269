package contracts

import (
	"context"
	"padel-service/internal/pkg/dto/responses"
	"time"
)

type ScheduleUsecase interface {
	GetDaySchedule(ctx context.Context, clubID string, date time.Time) ([]responses.CourtSchedule, error)
	GetWeekSchedule(ctx context.Context, clubID string, from, to time.Time) ([]responses.CourtSchedule, error)
	ExportWeekSchedule(ctx context.Context, clubID string, from, to time.Time) (*responses.ScheduleExport, error)
}
