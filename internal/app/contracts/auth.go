package contracts

import (
	"context"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	SendCustomerOTP(ctx context.Context, clubID string, request *requests.SendCustomerOTP) (*responses.SendOTP, error)
	VerifyCustomerOTP(ctx context.Context, clubID string, request *requests.VerifyCustomerOTP) (*responses.VerifyOTP, error)
	ParseToken(ctx context.Context, token string) (*models.SessionData, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

type CustomerRepository interface {
	FindByPhone(ctx context.Context, clubID, phone string) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) error
}
