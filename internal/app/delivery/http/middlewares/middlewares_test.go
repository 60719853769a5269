package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"padel-service/internal/app/config"
	"padel-service/internal/app/models"
	"padel-service/internal/pkg/constvars"
	"padel-service/internal/pkg/dto/requests"
	"padel-service/internal/pkg/dto/responses"
	"padel-service/internal/pkg/exceptions"

	"github.com/casbin/casbin/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	out, _ := args.Get(0).(*responses.LoginUser)
	return out, args.Error(1)
}

func (m *MockAuthUsecase) SendCustomerOTP(ctx context.Context, clubID string, request *requests.SendCustomerOTP) (*responses.SendOTP, error) {
	args := m.Called(ctx, clubID, request)
	out, _ := args.Get(0).(*responses.SendOTP)
	return out, args.Error(1)
}

func (m *MockAuthUsecase) VerifyCustomerOTP(ctx context.Context, clubID string, request *requests.VerifyCustomerOTP) (*responses.VerifyOTP, error) {
	args := m.Called(ctx, clubID, request)
	out, _ := args.Get(0).(*responses.VerifyOTP)
	return out, args.Error(1)
}

func (m *MockAuthUsecase) ParseToken(ctx context.Context, token string) (*models.SessionData, error) {
	args := m.Called(ctx, token)
	out, _ := args.Get(0).(*models.SessionData)
	return out, args.Error(1)
}

func newTestMiddlewares(t *testing.T, authUsecase *MockAuthUsecase) *Middlewares {
	t.Helper()
	enforcer, err := casbin.NewEnforcer("../../../../../resources/rbac_model.conf", "../../../../../resources/rbac_policy.csv")
	require.NoError(t, err)
	cfg := &config.InternalConfig{App: config.App{EndpointPrefix: "/api", Version: "v1", MaxRequests: 10}}
	return NewMiddlewares(zap.NewNop(), authUsecase, enforcer, cfg)
}

func newProtectedRouter(m *Middlewares) *chi.Mux {
	router := chi.NewRouter()
	router.Use(m.ErrorHandler)
	router.Route("/api/v1/clubs/{clubId}", func(r chi.Router) {
		r.Use(m.Authenticate, m.RequireClubAccess, m.Authorize)
		ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
		r.Get("/bookings", ok)
		r.Post("/bookings", ok)
		r.Get("/schedule/day", ok)
		r.Post("/closed-dates", ok)
		r.Delete("/payments/{paymentId}", ok)
	})
	return router
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	authUsecase.On("ParseToken", mock.Anything, "coach").Return(&models.SessionData{UserID: "u-coach", Roles: []models.UserRole{models.RoleCoach}}, nil)
	authUsecase.On("ParseToken", mock.Anything, "desk").Return(&models.SessionData{UserID: "u-desk", ClubIDs: []string{"club-1"}, Roles: []models.UserRole{models.RoleReceptionist}}, nil)
	authUsecase.On("ParseToken", mock.Anything, "admin").Return(&models.SessionData{UserID: "u-admin", Roles: []models.UserRole{models.RoleAdmin}}, nil)
	authUsecase.On("ParseToken", mock.Anything, "customer").Return(&models.SessionData{UserID: "cust", ClubID: "club-1", Customer: true, Roles: []models.UserRole{models.RoleCustomer}}, nil)
	authUsecase.On("ParseToken", mock.Anything, "expired").Return(nil, exceptions.ErrTokenInvalidOrExpired(nil))

	router := newProtectedRouter(newTestMiddlewares(t, authUsecase))

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"missing token", http.MethodGet, "/api/v1/clubs/club-1/bookings", "", http.StatusUnauthorized},
		{"expired token", http.MethodGet, "/api/v1/clubs/club-1/bookings", "expired", http.StatusUnauthorized},
		{"coach reads bookings", http.MethodGet, "/api/v1/clubs/club-1/bookings", "coach", http.StatusOK},
		{"coach cannot create bookings", http.MethodPost, "/api/v1/clubs/club-1/bookings", "coach", http.StatusForbidden},
		{"receptionist creates bookings", http.MethodPost, "/api/v1/clubs/club-1/bookings", "desk", http.StatusOK},
		{"receptionist removes payments", http.MethodDelete, "/api/v1/clubs/club-1/payments/p1", "desk", http.StatusOK},
		{"receptionist outside its club", http.MethodGet, "/api/v1/clubs/club-2/bookings", "desk", http.StatusForbidden},
		{"receptionist cannot close the club", http.MethodPost, "/api/v1/clubs/club-1/closed-dates", "desk", http.StatusForbidden},
		{"admin inherits manager rights", http.MethodPost, "/api/v1/clubs/club-9/closed-dates", "admin", http.StatusOK},
		{"customer reads the schedule", http.MethodGet, "/api/v1/clubs/club-1/schedule/day", "customer", http.StatusOK},
		{"customer cannot list bookings", http.MethodGet, "/api/v1/clubs/club-1/bookings", "customer", http.StatusForbidden},
		{"customer of another club", http.MethodGet, "/api/v1/clubs/club-2/schedule/day", "customer", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+tt.token)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRequestIDAndRecovery(t *testing.T) {
	m := newTestMiddlewares(t, new(MockAuthUsecase))
	router := chi.NewRouter()
	router.Use(m.RequestIDMiddleware, m.Tracing, m.Logging, m.ErrorHandler)
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })
	router.Get("/ok", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("generated request id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Contains(t, rr.Header().Get(constvars.HeaderXRequestID), constvars.REQUEST_ID_PREFIX)
	})

	t.Run("client request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("panic becomes a 500 envelope", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
	})
}
