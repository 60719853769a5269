package middlewares

import (
	"net/http"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// Authorize checks every role of the session against the casbin policy. Paths
// are matched relative to the API base path so policies stay version agnostic.
func (m *Middlewares) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		object := strings.TrimPrefix(r.URL.Path, m.InternalConfig.BasePath())
		if object == "" {
			object = "/"
		}

		roles := roleNames(session)
		for _, role := range roles {
			allowed, err := m.Enforcer.Enforce(role, object, r.Method)
			if err != nil {
				m.Log.Error("Authorize enforce error",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if allowed {
				next.ServeHTTP(w, r)
				return
			}
		}

		m.Log.Info("Authorize denied",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Strings(constvars.LoggingRolesKey, roles),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, object),
		)
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil, roles, r.Method, object))
	})
}
