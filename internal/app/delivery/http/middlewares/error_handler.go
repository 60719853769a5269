package middlewares

import (
	"net/http"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in a handler into a 500 envelope.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
