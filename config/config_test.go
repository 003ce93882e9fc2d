package config

import (
	"testing"

	"github.com/axionlabs/axion-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "a-secret-key-that-is-long-enough-123")
	t.Setenv("EMAIL_FROM_ADDRESS", "noreply@axionlabs.example")
	t.Setenv("EMAIL_ADMIN_ADDRESS", "hello@axionlabs.example")
	t.Setenv("RESEND_API_KEY", "re_test_key")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with required env set", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "axion_dev", cfg.Database.Name)
		assert.Equal(t, "localhost:6379", cfg.Redis.Address)
		assert.Equal(t, "Axion Labs", cfg.Email.FromName)
		assert.Equal(t, 10, cfg.RateLimit.SubmitRequestsPerWindow)
		assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_ENVIRONMENT", "production")
		t.Setenv("PORT", "9090")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "axion")
		t.Setenv("REDIS_ADDRESS", "cache.internal:6379")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "axion", cfg.Database.Name)
		assert.Equal(t, "cache.internal:6379", cfg.Redis.Address)
	})

	t.Run("short jwt secret rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JWT_SECRET_KEY", "too-short")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT secret key")
	})

	t.Run("missing email settings rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("EMAIL_ADMIN_ADDRESS", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "admin address")
	})

	t.Run("missing resend key rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("RESEND_API_KEY", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "resend API key")
	})
}

func TestDatabaseConfigConnString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "axion",
		Password: "pw",
		Name:     "axion",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=axion password=pw dbname=axion sslmode=disable",
		cfg.ConnString())

	cfg.SSLMode = "require"
	assert.Equal(t,
		"host=db.internal port=5432 user=axion password=pw dbname=axion sslmode=require",
		cfg.ConnString())
}
