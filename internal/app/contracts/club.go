package contracts

import (
	"context"
	"padel-service/internal/app/models"
)

// ClubResourceRepository reads the courts, coaches and booking categories
// that belong to a club. Lookups by id return nil without error when absent.
type ClubResourceRepository interface {
	FindCourtByID(ctx context.Context, clubID, courtID string) (*models.Court, error)
	FindCoachByID(ctx context.Context, clubID, coachID string) (*models.Coach, error)
	FindCourtsByIDs(ctx context.Context, ids []string) (map[string]models.Court, error)
	FindCoachesByIDs(ctx context.Context, ids []string) (map[string]models.Coach, error)
	FindCategoriesByIDs(ctx context.Context, ids []string) (map[string]models.BookingCategory, error)
}
