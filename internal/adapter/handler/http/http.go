package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

const (
	principalKey = "authorization_principal"
	sessionIDKey = "authorization_session"
	userKey      = "authorization_user"
)

type errorResponse struct {
	Error string `json:"error" example:"car is not available"`
}

type messageResponse struct {
	Message string `json:"message" example:"car deleted"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func newMessageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, messageResponse{Message: message})
}

// errorStatus maps a domain error onto its HTTP status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// newServiceErrorResponse answers with the client-facing message of err.
// Unexpected errors are logged and hidden behind a generic message.
func newServiceErrorResponse(c *gin.Context, logger ports.LoggerPort, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]interface{}{
			"error":  err.Error(),
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		newErrorResponse(c, status, "internal server error")
		return
	}

	message := domain.PublicMessage(err)
	if message == "" {
		message = http.StatusText(status)
	}
	newErrorResponse(c, status, message)
}

func setPrincipal(c *gin.Context, user *domain.User, sessionID uuid.UUID) {
	c.Set(principalKey, domain.PrincipalOf(user))
	c.Set(userKey, user)
	c.Set(sessionIDKey, sessionID)
}

func getPrincipal(c *gin.Context) (domain.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := v.(domain.Principal)
	return principal, ok
}

func getCurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

func getSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessionIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// parseIDParam reads a positive integer path parameter, answering 400 otherwise.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		newErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
