package contracts

import (
	"context"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"time"
)

type ClosedDateUsecase interface {
	Create(ctx context.Context, clubID, userID string, request *requests.CreateClosedDate) (*models.ClosedDate, error)
	FindAll(ctx context.Context, clubID string, from, to *time.Time) ([]models.ClosedDate, error)
	FindOne(ctx context.Context, clubID, closedDateID string) (*models.ClosedDate, error)
	Remove(ctx context.Context, clubID, closedDateID string) error
	IsClubClosed(ctx context.Context, clubID string, date time.Time) (*responses.ClubClosedCheck, error)
}

type ClosedDateRepository interface {
	Insert(ctx context.Context, closedDate *models.ClosedDate) error
	FindByClubAndDay(ctx context.Context, clubID string, day time.Time) (*models.ClosedDate, error)
	FindByClub(ctx context.Context, clubID string, from, to *time.Time) ([]models.ClosedDate, error)
	FindByID(ctx context.Context, closedDateID string) (*models.ClosedDate, error)
	DeleteByID(ctx context.Context, closedDateID string) (bool, error)
}
