package auth

import (
	"context"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"strings"
	"sync"
)

type UserMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

var _ contracts.UserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository(seed ...models.User) *UserMemoryRepository {
	repo := &UserMemoryRepository{users: make(map[string]models.User)}
	for _, u := range seed {
		u.Email = strings.ToLower(u.Email)
		repo.users[u.ID] = u
	}
	return repo
}

func (r *UserMemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.ToLower(email)
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserMemoryRepository) Upsert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	r.users[user.ID] = *user
	return nil
}

type CustomerMemoryRepository struct {
	mu        sync.RWMutex
	customers []models.Customer
}

var _ contracts.CustomerRepository = (*CustomerMemoryRepository)(nil)

func NewCustomerMemoryRepository() *CustomerMemoryRepository {
	return &CustomerMemoryRepository{}
}

func (r *CustomerMemoryRepository) FindByPhone(_ context.Context, clubID, phone string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ClubID == clubID && c.Phone == phone {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *CustomerMemoryRepository) Insert(_ context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *CustomerMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers)
}
