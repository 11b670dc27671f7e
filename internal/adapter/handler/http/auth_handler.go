package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type AuthHandler struct {
	authService  ports.AuthService
	tokenService ports.TokenService
	cookie       CookieConfig
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

// CookieConfig describes the session cookie written on login and registration.
type CookieConfig struct {
	Name   string
	Secure bool
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required" example:"jkowalski"`
	Password  string `json:"password" binding:"required" example:"secret123"`
	FirstName string `json:"firstName" binding:"required" example:"Jan"`
	LastName  string `json:"lastName" binding:"required" example:"Kowalski"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"jkowalski"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	Username  string `json:"username" example:"jkowalski"`
	FirstName string `json:"firstName" example:"Jan"`
	LastName  string `json:"lastName" example:"Kowalski"`
	IsDealer  bool   `json:"isDealer" example:"false"`
}

type userEnvelope struct {
	User UserResponse `json:"user"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsDealer:  u.IsDealer,
	}
}

func NewAuthHandler(
	authService ports.AuthService,
	tokenService ports.TokenService,
	cookie CookieConfig,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		cookie:       cookie,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary Register a customer
// @Description Creates a customer account and opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} userEnvelope "Registered"
// @Failure 400 {object} errorResponse "Invalid data or username taken"
// @Failure 429 {object} errorResponse "Too many requests"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse in register", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "username, password, firstName and lastName are required")
		return
	}

	user, session, err := h.authService.Register(c.Request.Context(), &domain.Registration{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	if !h.writeSessionCookie(c, session) {
		return
	}
	c.JSON(http.StatusCreated, userEnvelope{User: newUserResponse(user)})
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} userEnvelope "Logged in"
// @Failure 400 {object} errorResponse "Invalid username or password"
// @Failure 429 {object} errorResponse "Too many requests"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, session, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	if !h.writeSessionCookie(c, session) {
		return
	}
	c.JSON(http.StatusOK, userEnvelope{User: newUserResponse(user)})
}

// @Summary Log out
// @Description Destroys the current session. Succeeds without a session too.
// @Tags auth
// @Produce json
// @Success 200 {object} messageResponse "Logged out"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if sessionID, ok := getSessionID(c); ok {
		if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
			newServiceErrorResponse(c, h.logger, err)
			return
		}
	}

	h.clearSessionCookie(c)
	newMessageResponse(c, http.StatusOK, "logged out")
}

// @Summary Current user
// @Tags auth
// @Security SessionCookie
// @Produce json
// @Success 200 {object} userEnvelope "Session user"
// @Failure 401 {object} errorResponse "No session"
// @Router /current-user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	user, ok := getCurrentUser(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}
	c.JSON(http.StatusOK, userEnvelope{User: newUserResponse(user)})
}

func (h *AuthHandler) writeSessionCookie(c *gin.Context, session *domain.Session) bool {
	token, err := h.tokenService.CreateToken(session)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return false
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
	return true
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
