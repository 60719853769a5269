package locker

import (
	"context"
	"fmt"
	"padel-service/internal/app/contracts"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errLockNotOwned = fmt.Errorf("lock not owned by this client")
	errLockNotFound = fmt.Errorf("lock not found")
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
		zap.Duration(constvars.LoggingDurationKey, expiration),
	)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return false, "", nil
	}

	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID := utils.GetRequestID(ctx)

	if err := s.checkOwnership(ctx, key, lockValue); err != nil {
		if err == errLockNotFound {
			return nil
		}
		s.Log.Error("lockService.Unlock ownership check failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return err
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		s.Log.Error("lockService.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Debug("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
	)
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	if err := s.checkOwnership(ctx, key, lockValue); err != nil {
		return err
	}
	ok, err := s.redisRepo.Expire(ctx, key, expiration)
	if err != nil {
		return err
	}
	if !ok {
		return errLockNotFound
	}
	return nil
}

// checkOwnership compares the stored value with the JSON encoded lockValue
// written by TryLock.
func (s *lockService) checkOwnership(ctx context.Context, key, lockValue string) error {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}
	if storedVal == "" {
		return errLockNotFound
	}

	expected, err := json.Marshal(lockValue)
	if err != nil {
		return err
	}
	if storedVal != string(expected) {
		return errLockNotOwned
	}
	return nil
}
