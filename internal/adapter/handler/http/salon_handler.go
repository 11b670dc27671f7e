package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type SalonHandler struct {
	salonService ports.SalonService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type SalonRequest struct {
	Name     string `json:"name" binding:"required" example:"Salon Centrum"`
	Location string `json:"location" binding:"required" example:"Warszawa"`
}

func NewSalonHandler(salonService ports.SalonService, logger ports.LoggerPort, metrics ports.MetricsPort) *SalonHandler {
	return &SalonHandler{
		salonService: salonService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary List salons
// @Tags salons
// @Produce json
// @Success 200 {array} domain.Salon
// @Router /salons [get]
func (h *SalonHandler) ListSalons(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	salons, err := h.salonService.ListSalons(c.Request.Context())
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	if salons == nil {
		salons = []*domain.Salon{}
	}
	c.JSON(http.StatusOK, salons)
}

// @Summary Get a salon with its cars
// @Tags salons
// @Produce json
// @Param id path int true "Salon id"
// @Success 200 {object} domain.Salon
// @Failure 404 {object} errorResponse "Salon not found"
// @Router /salons/{id} [get]
func (h *SalonHandler) GetSalon(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	salonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	salon, err := h.salonService.GetSalonWithCars(c.Request.Context(), salonID)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, salon)
}

// @Summary Create a salon
// @Tags salons
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body SalonRequest true "Salon data"
// @Success 201 {object} domain.Salon
// @Failure 400 {object} errorResponse "Invalid data"
// @Failure 403 {object} errorResponse "Dealer only"
// @Router /salons [post]
func (h *SalonHandler) CreateSalon(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req SalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "name and location are required")
		return
	}

	principal, _ := getPrincipal(c)
	salon, err := h.salonService.CreateSalon(c.Request.Context(), principal, &domain.Salon{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, salon)
}

// @Summary Update a salon
// @Tags salons
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "Salon id"
// @Param request body domain.SalonPatch true "Fields to change"
// @Success 200 {object} domain.Salon
// @Failure 400 {object} errorResponse "Invalid data"
// @Failure 403 {object} errorResponse "Dealer only"
// @Failure 404 {object} errorResponse "Salon not found"
// @Router /salons/{id} [put]
func (h *SalonHandler) UpdateSalon(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	salonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch domain.SalonPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	principal, _ := getPrincipal(c)
	salon, err := h.salonService.UpdateSalon(c.Request.Context(), principal, salonID, &patch)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, salon)
}

// @Summary Delete a salon
// @Description Cars of the salon stay in the catalog without a salon.
// @Tags salons
// @Security SessionCookie
// @Produce json
// @Param id path int true "Salon id"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorResponse "Dealer only"
// @Failure 404 {object} errorResponse "Salon not found"
// @Router /salons/{id} [delete]
func (h *SalonHandler) DeleteSalon(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	salonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	principal, _ := getPrincipal(c)
	if err := h.salonService.DeleteSalon(c.Request.Context(), principal, salonID); err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	newMessageResponse(c, http.StatusOK, "salon deleted")
}
