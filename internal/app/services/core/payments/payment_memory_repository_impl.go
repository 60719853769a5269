package payments

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"sort"
	"sync"
	"time"
)

type PaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments map[string]models.Payment
}

var _ contracts.PaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{payments: make(map[string]models.Payment)}
}

func (r *PaymentMemoryRepository) list(match func(models.Payment) bool) []models.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Payment, 0)
	for _, p := range r.payments {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.Before(out[j].PaidAt) })
	return out
}

func (r *PaymentMemoryRepository) Create(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = *payment
	return nil
}

func (r *PaymentMemoryRepository) FindByID(_ context.Context, paymentID string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[paymentID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PaymentMemoryRepository) FindByBookingID(_ context.Context, bookingID string) ([]models.Payment, error) {
	return r.list(func(p models.Payment) bool { return p.BookingID == bookingID }), nil
}

func (r *PaymentMemoryRepository) FindByClub(_ context.Context, clubID string, from, to *time.Time) ([]models.Payment, error) {
	return r.list(func(p models.Payment) bool {
		if p.ClubID != clubID {
			return false
		}
		if from != nil && to != nil {
			return !p.PaidAt.Before(*from) && !p.PaidAt.After(*to)
		}
		return true
	}), nil
}

func (r *PaymentMemoryRepository) SumByBookingID(ctx context.Context, bookingID string) (float64, error) {
	var total float64
	payments, _ := r.FindByBookingID(ctx, bookingID)
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

func (r *PaymentMemoryRepository) DeleteByID(_ context.Context, paymentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[paymentID]; !ok {
		return false, nil
	}
	delete(r.payments, paymentID)
	return true, nil
}
