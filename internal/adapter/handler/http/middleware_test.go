package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/logger"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logger.LoggerAdapter {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logger.NewWithLogger(log)
}

func TestJWTTokenService(t *testing.T) {
	tokens := NewJWTTokenService("secret", discardLogger())
	now := time.Now()
	session := &domain.Session{ID: uuid.New(), UserID: 3, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	token, err := tokens.CreateToken(session)
	require.NoError(t, err)

	sessionID, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, sessionID)

	_, err = NewJWTTokenService("other", discardLogger()).VerifyToken(token)
	assert.Error(t, err)

	expired := &domain.Session{ID: uuid.New(), UserID: 3, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	token, err = tokens.CreateToken(expired)
	require.NoError(t, err)
	_, err = tokens.VerifyToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		SessionID:        session.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.VerifyToken(unsigned)
	assert.Error(t, err)
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(0.001, 2, discardLogger())

	router := gin.New()
	router.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))

	limiter.Cleanup(-time.Minute)
	limiter.mu.Lock()
	assert.Empty(t, limiter.limiters)
	limiter.mu.Unlock()
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
}

func TestParseCarFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	parse := func(query string) (domain.CarFilter, error) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/cars?"+query, nil)
		return parseCarFilter(c)
	}

	filter, err := parse("brand=Toy&year=2021&minPrice=100&maxPrice=200.5&available=true&salonId=3&page=3&limit=10")
	require.NoError(t, err)
	assert.Equal(t, "Toy", filter.Brand)
	assert.Equal(t, 2021, *filter.Year)
	assert.Equal(t, 100.0, *filter.MinPrice)
	assert.Equal(t, 200.5, *filter.MaxPrice)
	assert.True(t, *filter.Available)
	assert.Equal(t, int64(3), *filter.SalonID)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 20, filter.Offset)

	filter, err = parse("page=4")
	require.NoError(t, err)
	assert.Zero(t, filter.Limit)
	assert.Zero(t, filter.Offset)

	for _, query := range []string{
		"year=new", "minPrice=-1", "maxPrice=x", "available=maybe",
		"salonId=0", "page=0", "limit=101", "limit=-1",
	} {
		t.Run(query, func(t *testing.T) {
			_, err := parse(query)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrDealerOnly, http.StatusForbidden},
		{domain.ErrNotRenter, http.StatusForbidden},
		{fmt.Errorf("get: %w", domain.ErrCarNotFound), http.StatusNotFound},
		{domain.ErrCarUnavailable, http.StatusBadRequest},
		{domain.NewValidationError("bad"), http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorStatus(tt.err), tt.err.Error())
	}
}

func TestServiceErrorHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cars", nil)

	newServiceErrorResponse(c, discardLogger(), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
