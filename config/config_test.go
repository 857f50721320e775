package config_test

import (
	"agency/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("APP_COMPANY_NAME=Northwind Studio\nAPP_BOOKING_UPCOMING_DAYS=14\n"), 0o600))

	t.Setenv("APP_COMPANY_NAME", "From Environment")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")
	t.Setenv("EXTERNAL_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	var cfg config.Config
	require.NoError(t, config.Load(&cfg, dotenv, filepath.Join(t.TempDir(), "missing.env")))
	t.Cleanup(func() { _ = os.Unsetenv("APP_BOOKING_UPCOMING_DAYS") })

	assert.Equal(t, "From Environment", cfg.App.Company.Name)
	assert.Equal(t, 14, cfg.App.Booking.UpcomingDays)
	assert.True(t, cfg.App.RateLimiter.Enable)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.External.Kafka.Brokers)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("APP_BOOKING_SLOT_LOCK_SECONDS", "ten")

	var cfg config.Config
	assert.Error(t, config.Load(&cfg))
}
