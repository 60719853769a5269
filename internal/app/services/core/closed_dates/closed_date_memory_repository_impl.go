package closedDates

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"sort"
	"sync"
	"time"
)

type ClosedDateMemoryRepository struct {
	mu          sync.RWMutex
	closedDates map[string]models.ClosedDate
}

var _ contracts.ClosedDateRepository = (*ClosedDateMemoryRepository)(nil)

func NewClosedDateMemoryRepository(seed ...models.ClosedDate) *ClosedDateMemoryRepository {
	repo := &ClosedDateMemoryRepository{closedDates: make(map[string]models.ClosedDate)}
	for _, c := range seed {
		repo.closedDates[c.ID] = c
	}
	return repo
}

func (repo *ClosedDateMemoryRepository) Insert(_ context.Context, closedDate *models.ClosedDate) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.closedDates[closedDate.ID] = *closedDate
	return nil
}

func (repo *ClosedDateMemoryRepository) FindByClubAndDay(_ context.Context, clubID string, day time.Time) (*models.ClosedDate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	next := day.Add(24 * time.Hour)
	for _, c := range repo.closedDates {
		if c.ClubID == clubID && !c.ClosedDate.Before(day) && c.ClosedDate.Before(next) {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *ClosedDateMemoryRepository) FindByClub(_ context.Context, clubID string, from, to *time.Time) ([]models.ClosedDate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]models.ClosedDate, 0)
	for _, c := range repo.closedDates {
		if c.ClubID != clubID {
			continue
		}
		if from != nil && to != nil && (c.ClosedDate.Before(*from) || c.ClosedDate.After(*to)) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClosedDate.Before(out[j].ClosedDate) })
	return out, nil
}

func (repo *ClosedDateMemoryRepository) FindByID(_ context.Context, closedDateID string) (*models.ClosedDate, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	c, ok := repo.closedDates[closedDateID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (repo *ClosedDateMemoryRepository) DeleteByID(_ context.Context, closedDateID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.closedDates[closedDateID]; !ok {
		return false, nil
	}
	delete(repo.closedDates, closedDateID)
	return true, nil
}
