package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewInternalConfig()

		assert.Equal(t, 10*time.Second, cfg.Booking.LockTTL)
		assert.Equal(t, 5, cfg.OTP.ExpiredTimeInMinutes)
		assert.Equal(t, 30, cfg.JWT.CustomerExpTimeInDays)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Europe/Madrid")
		t.Setenv("BOOKING_LOCK_TTL", "3s")
		t.Setenv("BOOKING_LOCK_RETRIES", "7")
		t.Setenv("REMINDER_WORKER_ENABLED", "false")

		cfg := NewInternalConfig()

		assert.Equal(t, "Europe/Madrid", cfg.Location().String())
		assert.Equal(t, 3*time.Second, cfg.Booking.LockTTL)
		assert.Equal(t, 7, cfg.Booking.LockRetries)
		assert.False(t, cfg.Reminder.Enabled)
	})

	t.Run("bad timezone falls back to utc", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")
		assert.Equal(t, time.UTC, NewInternalConfig().Location())
	})
}

func TestBasePath(t *testing.T) {
	cfg := &InternalConfig{App: App{EndpointPrefix: "/api", Version: "v1"}}
	assert.Equal(t, "/api/v1", cfg.BasePath())

	cfg.App.EndpointPrefix = "api/"
	assert.Equal(t, "/api/v1", cfg.BasePath())
}
