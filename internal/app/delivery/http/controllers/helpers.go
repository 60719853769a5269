package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"padel-service/internal/app/config"
	"padel-service/internal/app/delivery/http/middlewares"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func requestContext(r *http.Request, cfg *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(cfg.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func readBody(r *http.Request, cfg *config.InternalConfig) ([]byte, error) {
	limit := int64(cfg.App.RequestBodyLimitInMegabyte) << 20
	if limit <= 0 {
		limit = 2 << 20
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return data, nil
}

func decodeAndValidate(r *http.Request, cfg *config.InternalConfig, dst any) error {
	data, err := readBody(r, cfg)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func sessionUserID(r *http.Request) string {
	if session, ok := middlewares.SessionFromContext(r.Context()); ok {
		return session.UserID
	}
	return ""
}

// parseDateQuery reads a YYYY-MM-DD query param in loc. An absent param yields nil.
func parseDateQuery(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(constvars.DateLayout, raw, loc)
	if err != nil {
		return nil, exceptions.ErrQueryParamValidation(err, name)
	}
	return &t, nil
}

func requireDateQuery(r *http.Request, name string, loc *time.Location) (time.Time, error) {
	t, err := parseDateQuery(r, name, loc)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, exceptions.ErrQueryParamValidation(nil, name)
	}
	return *t, nil
}

// parseDateRange returns a window only when both ends are given.
func parseDateRange(r *http.Request, fromName, toName string, loc *time.Location) (*time.Time, *time.Time, error) {
	from, err := parseDateQuery(r, fromName, loc)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateQuery(r, toName, loc)
	if err != nil {
		return nil, nil, err
	}
	if from == nil || to == nil {
		return nil, nil, nil
	}
	if to.Before(*from) {
		return nil, nil, exceptions.ErrBookingValidation(nil, constvars.ErrClientInvalidDateRange)
	}
	return from, to, nil
}

func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
