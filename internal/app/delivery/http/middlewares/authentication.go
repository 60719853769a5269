package middlewares

import (
	"context"
	"net/http"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/exceptions"
	"padel-service/internal/pkg/utils"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		sessionData, err := m.AuthUsecase.ParseToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireClubAccess rejects principals that do not belong to the club in the URL.
func (m *Middlewares) RequireClubAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		clubID := chi.URLParam(r, constvars.URLParamClubID)
		if clubID != "" && !session.CanAccessClub(clubID) {
			m.Log.Info("club access denied",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingUserIDKey, session.UserID),
				zap.String(constvars.LoggingClubIDKey, clubID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil, roleNames(session), r.Method, r.URL.Path))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func SessionFromContext(ctx context.Context) (*models.SessionData, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.SessionData)
	return session, ok && session != nil
}

func roleNames(session *models.SessionData) []string {
	names := make([]string, 0, len(session.Roles))
	for _, role := range session.Roles {
		names = append(names, string(role))
	}
	return names
}
