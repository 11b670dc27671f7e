package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "salon_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 1.0, cfg.RateLimit.RequestsPerSecond)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("AUTH_RATE_LIMIT_BURST", "9")
	t.Setenv("DEALER_USERNAME", "boss")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.HTTP.Env)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "memory", cfg.DB.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 9, cfg.RateLimit.Burst)
	assert.Equal(t, "boss", cfg.Dealer.Username)
	assert.Equal(t, 10, cfg.Session.BcryptCost)
}

func TestNewRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := New()
	assert.ErrorContains(t, err, "SESSION_SECRET")

	t.Setenv("SESSION_SECRET", "real-secret")
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "real-secret", cfg.Session.Secret)
}
