package jwtmanager

import (
	"context"
	"fmt"
	"padel-service/internal/app/config"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Claims carries the session principal inside the access token.
type Claims struct {
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	ClubID   string   `json:"club_id,omitempty"`
	ClubIDs  []string `json:"club_ids,omitempty"`
	Roles    []string `json:"roles"`
	Customer bool     `json:"customer,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	issuer string
	now    func() time.Time
}

type CreateTokenInput struct {
	Subject string
	TTL     time.Duration
	Claims  Claims
}

type CreateTokenOutput struct {
	Token     string
	ExpiresAt time.Time
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid  bool
	Claims *Claims
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		issuer: cfg.JWT.Issuer,
		now:    time.Now,
	}, nil
}

func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	j.log.Debug("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)))

	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if in.TTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}

	now := j.now().UTC()
	expiresAt := now.Add(in.TTL)

	claims := in.Claims
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   in.Subject,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyToken reports Valid=false for bad signatures and expired tokens.
// An error is returned only for malformed input.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID := utils.GetRequestID(ctx)

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, fmt.Errorf("token is required")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(in.Token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		j.log.Info("JWTManager.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}

	if j.issuer != "" && claims.Issuer != j.issuer {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	return &VerifyTokenOutput{Valid: true, Claims: claims}, nil
}
