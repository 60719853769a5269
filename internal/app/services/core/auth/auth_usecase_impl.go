package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"padel-service/internal/app/config"
	"padel-service/internal/app/contracts"
	"padel-service/internal/app/models"
	"padel-service/internal/app/services/shared/jwtmanager"
	"padel-service/internal/app/services/shared/ratelimiter"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenTypeBearer = "Bearer"

type authUsecase struct {
	UserRepository     contracts.UserRepository
	CustomerRepository contracts.CustomerRepository
	RedisRepository    contracts.RedisRepository
	RateLimiter        *ratelimiter.ResourceLimiter
	OTPNotifier        contracts.OTPNotifier
	JWTManager         *jwtmanager.JWTManager
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
	generateOTP        func(length int) (string, error)
}

type customerOTPState struct {
	OTP         string `json:"otp"`
	BookingName string `json:"booking_name,omitempty"`
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	customerRepository contracts.CustomerRepository,
	redisRepository contracts.RedisRepository,
	rateLimiter *ratelimiter.ResourceLimiter,
	otpNotifier contracts.OTPNotifier,
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:     userRepository,
		CustomerRepository: customerRepository,
		RedisRepository:    redisRepository,
		RateLimiter:        rateLimiter,
		OTPNotifier:        otpNotifier,
		JWTManager:         jwtManager,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
		generateOTP:        utils.GenerateOTP,
	}
}

func customerOTPKey(clubID, phone string) string {
	return fmt.Sprintf("%s:%s:%s", constvars.RedisKeyPrefixCustomerOTP, clubID, phone)
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, string(role))
	}

	token, err := uc.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		Subject: user.ID,
		TTL:     time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour,
		Claims: jwtmanager.Claims{
			Email:   user.Email,
			ClubIDs: user.ClubIDs,
			Roles:   roles,
		},
	})
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error creating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "staff_logged_in", requestID, zap.String("user_id", user.ID))
	return &responses.LoginUser{
		AccessToken: token.Token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   token.ExpiresAt,
		UserID:      user.ID,
		FullName:    user.FullName,
		Roles:       roles,
	}, nil
}

func (uc *authUsecase) SendCustomerOTP(ctx context.Context, clubID string, request *requests.SendCustomerOTP) (*responses.SendOTP, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.SendCustomerOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)

	limit, err := uc.RateLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      clubID + ":" + request.Phone,
		LimiterGroupName:  constvars.RateLimitGroupOTP,
		WindowDurationSec: uc.InternalConfig.OTP.WindowInSeconds,
		MaxQuota:          uc.InternalConfig.OTP.MaxRequestsPerWindow,
	})
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		return nil, exceptions.ErrTooManyRequests(nil, request.Phone).WithData(map[string]int{
			"retry_after_seconds": limit.RetryAfterSecs,
		})
	}

	otp, err := uc.generateOTP(constvars.OTPLength)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.OTP.ExpiredTimeInMinutes) * time.Minute
	key := customerOTPKey(clubID, request.Phone)
	state := customerOTPState{OTP: otp, BookingName: strings.TrimSpace(request.BookingName)}
	if err := uc.RedisRepository.Set(ctx, key, state, ttl); err != nil {
		return nil, err
	}

	if err := uc.OTPNotifier.SendOTP(ctx, request.Phone, otp, state.BookingName); err != nil {
		uc.Log.Error("authUsecase.SendCustomerOTP error queueing otp",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if delErr := uc.RedisRepository.Delete(ctx, key); delErr != nil {
			uc.Log.Warn("authUsecase.SendCustomerOTP error discarding otp",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	return &responses.SendOTP{
		Phone:     request.Phone,
		ExpiresIn: int(ttl.Seconds()),
	}, nil
}

func (uc *authUsecase) VerifyCustomerOTP(ctx context.Context, clubID string, request *requests.VerifyCustomerOTP) (*responses.VerifyOTP, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.VerifyCustomerOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClubIDKey, clubID),
	)

	key := customerOTPKey(clubID, request.Phone)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrOTPExpired(nil)
	}

	var state customerOTPState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if subtle.ConstantTimeCompare([]byte(state.OTP), []byte(request.OTP)) != 1 {
		return nil, exceptions.ErrOTPInvalid(nil)
	}
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		return nil, err
	}

	customer, isNew, err := uc.findOrCreateCustomer(ctx, clubID, request.Phone, state.BookingName)
	if err != nil {
		return nil, err
	}

	token, err := uc.JWTManager.CreateToken(ctx, &jwtmanager.CreateTokenInput{
		Subject: customer.ID,
		TTL:     time.Duration(uc.InternalConfig.JWT.CustomerExpTimeInDays) * 24 * time.Hour,
		Claims: jwtmanager.Claims{
			Phone:    customer.Phone,
			ClubID:   clubID,
			Roles:    []string{string(models.RoleCustomer)},
			Customer: true,
		},
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "customer_verified", requestID,
		zap.String(constvars.LoggingClubIDKey, clubID),
		zap.Bool("is_new", isNew),
	)
	return &responses.VerifyOTP{
		AccessToken: token.Token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   token.ExpiresAt,
		CustomerID:  customer.ID,
		IsNew:       isNew,
	}, nil
}

func (uc *authUsecase) findOrCreateCustomer(ctx context.Context, clubID, phone, name string) (*models.Customer, bool, error) {
	customer, err := uc.CustomerRepository.FindByPhone(ctx, clubID, phone)
	if err != nil {
		return nil, false, err
	}
	if customer != nil {
		return customer, false, nil
	}

	now := uc.now().UTC()
	customer = &models.Customer{
		ID:        uuid.NewString(),
		ClubID:    clubID,
		FullName:  name,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.CustomerRepository.Insert(ctx, customer); err != nil {
		return nil, false, err
	}
	return customer, true, nil
}

func (uc *authUsecase) ParseToken(ctx context.Context, token string) (*models.SessionData, error) {
	out, err := uc.JWTManager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: token})
	if err != nil {
		return nil, exceptions.ErrTokenMissing(err)
	}
	if !out.Valid || out.Claims == nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	claims := out.Claims
	roles := make([]models.UserRole, 0, len(claims.Roles))
	for _, role := range claims.Roles {
		roles = append(roles, models.UserRole(role))
	}
	return &models.SessionData{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Phone:    claims.Phone,
		ClubID:   claims.ClubID,
		ClubIDs:  claims.ClubIDs,
		Roles:    roles,
		Customer: claims.Customer,
	}, nil
}
