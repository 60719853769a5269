package clubs

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
)

// ClubResourceMemoryRepository holds courts, coaches and categories in maps.
type ClubResourceMemoryRepository struct {
	Courts     map[string]models.Court
	Coaches    map[string]models.Coach
	Categories map[string]models.BookingCategory
}

var _ contracts.ClubResourceRepository = (*ClubResourceMemoryRepository)(nil)

func NewClubResourceMemoryRepository() *ClubResourceMemoryRepository {
	return &ClubResourceMemoryRepository{
		Courts:     make(map[string]models.Court),
		Coaches:    make(map[string]models.Coach),
		Categories: make(map[string]models.BookingCategory),
	}
}

func (repo *ClubResourceMemoryRepository) AddCourt(c models.Court) *ClubResourceMemoryRepository {
	repo.Courts[c.ID] = c
	return repo
}

func (repo *ClubResourceMemoryRepository) AddCoach(c models.Coach) *ClubResourceMemoryRepository {
	repo.Coaches[c.ID] = c
	return repo
}

func (repo *ClubResourceMemoryRepository) AddCategory(c models.BookingCategory) *ClubResourceMemoryRepository {
	repo.Categories[c.ID] = c
	return repo
}

func (repo *ClubResourceMemoryRepository) FindCourtByID(_ context.Context, clubID, courtID string) (*models.Court, error) {
	c, ok := repo.Courts[courtID]
	if !ok || c.ClubID != clubID {
		return nil, nil
	}
	return &c, nil
}

func (repo *ClubResourceMemoryRepository) FindCoachByID(_ context.Context, clubID, coachID string) (*models.Coach, error) {
	c, ok := repo.Coaches[coachID]
	if !ok || c.ClubID != clubID {
		return nil, nil
	}
	return &c, nil
}

func (repo *ClubResourceMemoryRepository) FindCourtsByIDs(_ context.Context, ids []string) (map[string]models.Court, error) {
	return pick(repo.Courts, ids), nil
}

func (repo *ClubResourceMemoryRepository) FindCoachesByIDs(_ context.Context, ids []string) (map[string]models.Coach, error) {
	return pick(repo.Coaches, ids), nil
}

func (repo *ClubResourceMemoryRepository) FindCategoriesByIDs(_ context.Context, ids []string) (map[string]models.BookingCategory, error) {
	return pick(repo.Categories, ids), nil
}

func pick[T any](source map[string]T, ids []string) map[string]T {
	out := make(map[string]T, len(ids))
	for _, id := range ids {
		if v, ok := source[id]; ok {
			out[id] = v
		}
	}
	return out
}
