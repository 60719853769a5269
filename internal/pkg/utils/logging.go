package utils

import (
	"context"
	"time"

	"padel-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOperation runs fn and records its outcome and duration under the
// request id carried by ctx.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func(ctx context.Context) error) error {
	started := time.Now()
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
	}

	err := fn(ctx)

	fields = append(fields,
		zap.Duration(constvars.LoggingDurationKey, time.Since(started)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	)
	if err != nil {
		logger.Warn("Operation failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", fields...)
	return nil
}

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	logger.Info("Business event",
		append([]zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
		}, fields...)...,
	)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
