package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
	"golang.org/x/time/rate"
)

// SessionMiddleware resolves the session cookie into a principal when one is
// present. Requests without a valid session pass through anonymously.
func SessionMiddleware(
	authService ports.AuthService,
	tokenService ports.TokenService,
	cookieName string,
	logger ports.LoggerPort,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sessionID, err := tokenService.VerifyToken(token)
		if err != nil {
			c.Next()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, domain.ErrUnauthenticated) {
				logger.Error("Failed to resolve session", map[string]interface{}{
					"error": err.Error(),
				})
			}
			c.Next()
			return
		}

		setPrincipal(c, user, sessionID)
		c.Next()
	}
}

// AuthRequired rejects anonymous requests with 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := getPrincipal(c); !ok {
			newErrorResponse(c, http.StatusUnauthorized, "authentication required")
			return
		}
		c.Next()
	}
}

// DealerRequired rejects anonymous requests with 401 and customers with 403.
func DealerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := getPrincipal(c)
		if !ok {
			newErrorResponse(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if !principal.IsDealer {
			newErrorResponse(c, http.StatusForbidden, domain.ErrDealerOnly.Error())
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request through the application logger.
func RequestLogger(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}
		if principal, ok := getPrincipal(c); ok {
			fields["user_id"] = principal.UserID
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("HTTP request", fields)
		case status >= http.StatusBadRequest:
			logger.Warn("HTTP request", fields)
		default:
			logger.Info("HTTP request", fields)
		}
	}
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	logger   ports.LoggerPort
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int, logger ports.LoggerPort) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("Rate limit exceeded", map[string]interface{}{
				"ip":   key,
				"path": c.FullPath(),
			})
			newErrorResponse(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}

// Cleanup drops limiters idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
}

// StartCleanup runs Cleanup every interval until stop is closed.
func (rl *RateLimiter) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup(interval)
			case <-stop:
				return
			}
		}
	}()
}
