package bookings

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"sort"
	"sync"
	"time"
)

// BookingMemoryRepository mirrors the Mongo query semantics in process. It
// backs usecase tests across packages.
type BookingMemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

var _ contracts.BookingRepository = (*BookingMemoryRepository)(nil)

func NewBookingMemoryRepository(seed ...models.Booking) *BookingMemoryRepository {
	repo := &BookingMemoryRepository{bookings: make(map[string]models.Booking)}
	for _, b := range seed {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (repo *BookingMemoryRepository) filter(match func(b models.Booking) bool) []models.Booking {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range repo.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartDateTime.Equal(out[j].StartDateTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDateTime.Before(out[j].StartDateTime)
	})
	return out
}

func (repo *BookingMemoryRepository) FindByID(_ context.Context, bookingID string) (*models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	b, ok := repo.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (repo *BookingMemoryRepository) FindByClub(_ context.Context, clubID string, from, to *time.Time) ([]models.Booking, error) {
	return repo.filter(func(b models.Booking) bool {
		if b.ClubID != clubID {
			return false
		}
		if from != nil && to != nil {
			return !b.StartDateTime.Before(*from) && !b.StartDateTime.After(*to)
		}
		return true
	}), nil
}

func (repo *BookingMemoryRepository) FindOverlapping(_ context.Context, kind models.ResourceKind, resourceID string, start, end time.Time) ([]models.Booking, error) {
	return repo.filter(func(b models.Booking) bool {
		return b.ResourceID(kind) == resourceID && b.StartDateTime.Before(end) && b.EndDateTime.After(start)
	}), nil
}

func (repo *BookingMemoryRepository) FindInRange(_ context.Context, clubID string, start, end time.Time) ([]models.Booking, error) {
	within := func(t time.Time) bool { return !t.Before(start) && !t.After(end) }
	return repo.filter(func(b models.Booking) bool {
		if b.ClubID != clubID {
			return false
		}
		spans := !b.StartDateTime.After(start) && !b.EndDateTime.Before(end)
		return within(b.StartDateTime) || within(b.EndDateTime) || spans
	}), nil
}

func (repo *BookingMemoryRepository) FindStartingBetween(_ context.Context, from, to time.Time) ([]models.Booking, error) {
	return repo.filter(func(b models.Booking) bool {
		return !b.StartDateTime.Before(from) && b.StartDateTime.Before(to)
	}), nil
}

func (repo *BookingMemoryRepository) Insert(_ context.Context, booking *models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.bookings[booking.ID] = *booking
	return nil
}

func (repo *BookingMemoryRepository) InsertMany(_ context.Context, bookings []models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return nil
}

func (repo *BookingMemoryRepository) Update(_ context.Context, bookingID string, update models.BookingUpdate) (*models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	b, ok := repo.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	if update.CourtID != nil {
		b.CourtID = *update.CourtID
	}
	if update.CoachID != nil {
		b.CoachID = *update.CoachID
	}
	if update.CustomerID != nil {
		b.CustomerID = *update.CustomerID
	}
	if update.BookingName != nil {
		b.BookingName = *update.BookingName
	}
	if update.Phone != nil {
		b.Phone = *update.Phone
	}
	if update.StartDateTime != nil {
		b.StartDateTime = *update.StartDateTime
	}
	if update.EndDateTime != nil {
		b.EndDateTime = *update.EndDateTime
	}
	if update.DurationMinutes != nil {
		b.DurationMinutes = *update.DurationMinutes
	}
	if update.Price != nil {
		b.Price = *update.Price
	}
	if update.PaymentStatus != nil {
		b.PaymentStatus = *update.PaymentStatus
	}
	if update.BookingCategoryID != nil {
		b.BookingCategoryID = *update.BookingCategoryID
	}
	if update.Notes != nil {
		b.Notes = *update.Notes
	}
	b.UpdatedAt = update.UpdatedAt
	repo.bookings[bookingID] = b
	return &b, nil
}

func (repo *BookingMemoryRepository) UpdatePaymentSummary(_ context.Context, bookingID string, totalReceived float64, status models.PaymentStatus) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if b, ok := repo.bookings[bookingID]; ok {
		b.TotalReceived = totalReceived
		b.PaymentStatus = status
		repo.bookings[bookingID] = b
	}
	return nil
}

func (repo *BookingMemoryRepository) DeleteByID(_ context.Context, bookingID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.bookings[bookingID]; !ok {
		return false, nil
	}
	delete(repo.bookings, bookingID)
	return true, nil
}

func (repo *BookingMemoryRepository) DeleteBySeriesID(_ context.Context, clubID, seriesID string) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	var deleted int64
	for id, b := range repo.bookings {
		if seriesID != "" && b.ClubID == clubID && b.SeriesID == seriesID {
			delete(repo.bookings, id)
			deleted++
		}
	}
	return deleted, nil
}
