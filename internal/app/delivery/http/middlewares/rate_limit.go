package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimitByIP caps every client at App.MaxRequests per second.
func (m *Middlewares) RateLimitByIP() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// AuthRateLimit is the stricter per-IP and per-endpoint cap for login and OTP routes.
func (m *Middlewares) AuthRateLimit() func(next http.Handler) http.Handler {
	perMinute := m.InternalConfig.App.MaxRequests
	if perMinute < 1 {
		perMinute = 1
	}
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	)
}
