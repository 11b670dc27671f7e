package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sm8ta/salon_dealership_service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Container {
	return &config.Container{
		App:       &config.App{Name: "salon-dealership", Env: "test", LogLevel: "error"},
		Session:   &config.Session{Secret: "test-secret", TTL: time.Hour, CookieName: "salon_session", BcryptCost: 4},
		DB:        &config.DB{Driver: "memory"},
		HTTP:      &config.HTTP{Port: "0", AllowedOrigins: []string{"http://localhost:4200"}},
		Redis:     &config.Redis{Enabled: false},
		RateLimit: &config.RateLimit{RequestsPerSecond: 100, Burst: 100},
		Dealer:    &config.Dealer{Username: "dealer", Password: "dealer-secret", FirstName: "Anna", LastName: "Nowak"},
	}
}

func TestNewWithMemoryDriverSeedsDealer(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Stop(context.Background()) })

	srv := httptest.NewServer(a.HTTPRouter.Engine())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/login", "application/json",
		strings.NewReader(`{"username":"dealer","password":"dealer-secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "salon_session" {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.False(t, session.Secure)
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.DB.Driver = "sqlite"

	_, err := New(context.Background(), cfg)
	assert.ErrorContains(t, err, `unknown DB_DRIVER "sqlite"`)
}

func TestStopIsSafeToRepeat(t *testing.T) {
	a, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)

	require.NoError(t, a.Stop(context.Background()))
	require.NoError(t, a.Stop(context.Background()))
}
