package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type UserHandler struct {
	customerService ports.CustomerService
	cookie          CookieConfig
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" example:"jkowalski"`
	Password  *string `json:"password,omitempty" example:"newsecret"`
	FirstName *string `json:"firstName,omitempty" example:"Jan"`
	LastName  *string `json:"lastName,omitempty" example:"Kowalski"`
}

func NewUserHandler(
	customerService ports.CustomerService,
	cookie CookieConfig,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		customerService: customerService,
		cookie:          cookie,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary List customers
// @Tags users
// @Security SessionCookie
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 401 {object} errorResponse "No session"
// @Failure 403 {object} errorResponse "Dealer only"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	principal, _ := getPrincipal(c)
	users, err := h.customerService.ListCustomers(c.Request.Context(), principal)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get a customer
// @Tags users
// @Security SessionCookie
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} UserResponse
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	principal, _ := getPrincipal(c)
	user, err := h.customerService.GetCustomer(c.Request.Context(), principal, userID)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// @Summary Update a customer
// @Description Self or dealer. A new password is re-hashed.
// @Tags users
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errorResponse "Invalid data or username taken"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	principal, _ := getPrincipal(c)
	user, err := h.customerService.UpdateCustomer(c.Request.Context(), principal, userID, &domain.UserPatch{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// @Summary Delete a customer
// @Description Self or dealer. Rented cars go back on the market, owned cars lose their owner.
// @Tags users
// @Security SessionCookie
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	principal, _ := getPrincipal(c)
	if err := h.customerService.DeleteCustomer(c.Request.Context(), principal, userID); err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	if principal.UserID == userID {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	}
	newMessageResponse(c, http.StatusOK, "user deleted")
}

// @Summary Create a customer account
// @Description Dealer-issued account. The dealer session is left untouched.
// @Tags users
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account data"
// @Success 201 {object} userEnvelope
// @Failure 400 {object} errorResponse "Invalid data or username taken"
// @Failure 403 {object} errorResponse "Dealer only"
// @Router /admin/create-customer [post]
func (h *UserHandler) CreateCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "username, password, firstName and lastName are required")
		return
	}

	principal, _ := getPrincipal(c)
	user, err := h.customerService.CreateCustomer(c.Request.Context(), principal, &domain.Registration{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, userEnvelope{User: newUserResponse(user)})
}
