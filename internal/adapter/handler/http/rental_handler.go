package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

const dateLayout = "2006-01-02"

type RentalHandler struct {
	rentalService ports.RentalService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type RentalRequest struct {
	CarID     int64  `json:"carId" binding:"required" example:"1"`
	StartDate string `json:"startDate" binding:"required" example:"2025-06-01"`
	EndDate   string `json:"endDate" binding:"required" example:"2025-06-07"`
}

type RentalResponse struct {
	ID        int64  `json:"id" example:"1"`
	CarID     int64  `json:"carId" example:"1"`
	UserID    int64  `json:"userId" example:"2"`
	StartDate string `json:"startDate" example:"2025-06-01"`
	EndDate   string `json:"endDate" example:"2025-06-07"`
}

func newRentalResponse(r *domain.Rental) RentalResponse {
	return RentalResponse{
		ID:        r.ID,
		CarID:     r.CarID,
		UserID:    r.UserID,
		StartDate: r.StartDate.Format(dateLayout),
		EndDate:   r.EndDate.Format(dateLayout),
	}
}

func NewRentalHandler(rentalService ports.RentalService, logger ports.LoggerPort, metrics ports.MetricsPort) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary List rental windows
// @Tags rentals
// @Security SessionCookie
// @Produce json
// @Param carId query int false "Only windows of this car"
// @Success 200 {array} RentalResponse
// @Failure 400 {object} errorResponse "Invalid carId"
// @Failure 401 {object} errorResponse "No session"
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var carID *int64
	if v := c.Query("carId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			newErrorResponse(c, http.StatusBadRequest, "invalid carId")
			return
		}
		carID = &id
	}

	rentals, err := h.rentalService.ListRentals(c.Request.Context(), carID)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	resp := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		resp = append(resp, newRentalResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Add a rental window
// @Description Dates as YYYY-MM-DD or RFC3339. Windows of one car may not overlap.
// @Tags rentals
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body RentalRequest true "Rental window"
// @Success 201 {object} RentalResponse
// @Failure 400 {object} errorResponse "Invalid dates or overlap"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /rentals [post]
func (h *RentalHandler) AddRental(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "carId, startDate and endDate are required")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid startDate")
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid endDate")
		return
	}

	principal, _ := getPrincipal(c)
	rental, err := h.rentalService.AddRental(c.Request.Context(), principal, req.CarID, startDate, endDate)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, newRentalResponse(rental))
}

// @Summary Remove a rental window
// @Tags rentals
// @Security SessionCookie
// @Produce json
// @Param id path int true "Rental id"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Rental not found"
// @Router /rentals/{id} [delete]
func (h *RentalHandler) RemoveRental(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rentalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	principal, _ := getPrincipal(c)
	if err := h.rentalService.RemoveRental(c.Request.Context(), principal, rentalID); err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	newMessageResponse(c, http.StatusOK, "rental removed")
}

// parseDate accepts a calendar date or a full RFC3339 timestamp. A timestamp
// keeps the day of its own offset, so "Z" values count as UTC days.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
