package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

const maxPageLimit = 100

type CarHandler struct {
	carService ports.CarService
	logger     ports.LoggerPort
	metrics    ports.MetricsPort
}

type CarRequest struct {
	Brand              string   `json:"brand" binding:"required" example:"Toyota"`
	Model              string   `json:"model" binding:"required" example:"Corolla"`
	Year               int      `json:"year" binding:"required" example:"2021"`
	VIN                string   `json:"vin" binding:"required" example:"JTDBR32E720123456"`
	Price              *float64 `json:"price" binding:"required" example:"20000"`
	HorsePower         *int     `json:"horsePower,omitempty" example:"132"`
	IsAvailableForRent *bool    `json:"isAvailableForRent,omitempty" example:"true"`
	SalonID            *int64   `json:"salonId,omitempty" example:"1"`
}

type LeasingRequest struct {
	DownPayment *float64 `json:"downPayment" binding:"required" example:"5000"`
	Months      *int     `json:"months" binding:"required" example:"12"`
}

type RenterResponse struct {
	CarID    int64  `json:"carId" example:"1"`
	RenterID *int64 `json:"renterId" example:"2"`
}

func NewCarHandler(carService ports.CarService, logger ports.LoggerPort, metrics ports.MetricsPort) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     logger,
		metrics:    metrics,
	}
}

// @Summary List cars
// @Description Catalog with optional filters and pagination
// @Tags cars
// @Produce json
// @Param brand query string false "Brand substring, case-insensitive"
// @Param year query int false "Production year"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param available query bool false "Available for rent"
// @Param salonId query int false "Salon id"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Page size, up to 100"
// @Success 200 {array} domain.Car
// @Failure 400 {object} errorResponse "Invalid query"
// @Router /cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter, err := parseCarFilter(c)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cars, err := h.carService.ListCars(c.Request.Context(), filter)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	if cars == nil {
		cars = []*domain.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

// @Summary Get a car
// @Tags cars
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} domain.Car
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), carID)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

// @Summary Cars of the current user
// @Description Cars the caller owns or rents
// @Tags cars
// @Security SessionCookie
// @Produce json
// @Success 200 {array} domain.Car
// @Failure 401 {object} errorResponse "No session"
// @Router /cars/mine [get]
func (h *CarHandler) GetMyCars(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	principal, _ := getPrincipal(c)
	cars, err := h.carService.ListMyCars(c.Request.Context(), principal)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	if cars == nil {
		cars = []*domain.Car{}
	}
	c.JSON(http.StatusOK, cars)
}

// @Summary Create a car
// @Tags cars
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body CarRequest true "Car data"
// @Success 201 {object} domain.Car
// @Failure 400 {object} errorResponse "Invalid data or VIN taken"
// @Failure 401 {object} errorResponse "No session"
// @Failure 403 {object} errorResponse "Dealer only"
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse in create car", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "brand, model, year, vin and price are required")
		return
	}

	car := &domain.Car{
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		VIN:                req.VIN,
		Price:              *req.Price,
		HorsePower:         req.HorsePower,
		IsAvailableForRent: true,
		SalonID:            req.SalonID,
	}
	if req.IsAvailableForRent != nil {
		car.IsAvailableForRent = *req.IsAvailableForRent
	}

	principal, _ := getPrincipal(c)
	created, err := h.carService.CreateCar(c.Request.Context(), principal, car)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update a car
// @Description Partial update of the descriptive fields and availability
// @Tags cars
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "Car id"
// @Param request body domain.CarPatch true "Fields to change"
// @Success 200 {object} domain.Car
// @Failure 400 {object} errorResponse "Invalid data"
// @Failure 403 {object} errorResponse "Dealer only"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch domain.CarPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid JSON body")
		return
	}

	principal, _ := getPrincipal(c)
	updated, err := h.carService.UpdateCar(c.Request.Context(), principal, carID, &patch)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete a car
// @Tags cars
// @Security SessionCookie
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} messageResponse
// @Failure 401 {object} errorResponse "No session"
// @Failure 403 {object} errorResponse "Dealer only"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	principal, _ := getPrincipal(c)
	if err := h.carService.DeleteCar(c.Request.Context(), principal, carID); err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	newMessageResponse(c, http.StatusOK, "car deleted")
}

// @Summary Rent a car
// @Tags cars
// @Security SessionCookie
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} domain.Car
// @Failure 400 {object} errorResponse "Car is not available"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id}/rent [post]
func (h *CarHandler) RentCar(c *gin.Context) {
	h.carAction(c, "rent", h.carService.RentCar)
}

// @Summary Return a rented car
// @Tags cars
// @Security SessionCookie
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} domain.Car
// @Failure 400 {object} errorResponse "Car is not rented"
// @Failure 403 {object} errorResponse "Caller is not the renter"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id}/return [post]
func (h *CarHandler) ReturnCar(c *gin.Context) {
	h.carAction(c, "return", h.carService.ReturnCar)
}

// @Summary Buy a car
// @Tags cars
// @Security SessionCookie
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} domain.Car
// @Failure 400 {object} errorResponse "Car is not available"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id}/buy [post]
func (h *CarHandler) BuyCar(c *gin.Context) {
	h.carAction(c, "buy", h.carService.BuyCar)
}

type carActionFunc func(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error)

func (h *CarHandler) carAction(c *gin.Context, action string, do carActionFunc) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	principal, _ := getPrincipal(c)
	car, err := do(c.Request.Context(), principal, carID)
	if err != nil {
		h.metrics.RecordCarAction(action, actionOutcome(err))
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	h.metrics.RecordCarAction(action, "success")
	c.JSON(http.StatusOK, car)
}

// @Summary Leasing quote
// @Description Splits the price left after the down payment into monthly rates
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car id"
// @Param request body LeasingRequest true "Leasing terms"
// @Success 200 {object} domain.LeasingQuote
// @Failure 400 {object} errorResponse "Invalid terms"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id}/leasing [post]
func (h *CarHandler) LeasingQuote(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req LeasingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "downPayment and months are required")
		return
	}

	quote, err := h.carService.LeasingQuote(c.Request.Context(), carID, *req.DownPayment, *req.Months)
	if err != nil {
		h.metrics.RecordCarAction("lease", actionOutcome(err))
		newServiceErrorResponse(c, h.logger, err)
		return
	}

	h.metrics.RecordCarAction("lease", "success")
	c.JSON(http.StatusOK, quote)
}

// @Summary Current renter of a car
// @Tags cars
// @Produce json
// @Param id path int true "Car id"
// @Success 200 {object} RenterResponse
// @Failure 404 {object} errorResponse "Car not found"
// @Router /cars/{id}/renter [get]
func (h *CarHandler) GetRenter(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	car, err := h.carService.GetCar(c.Request.Context(), carID)
	if err != nil {
		newServiceErrorResponse(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, RenterResponse{CarID: car.ID, RenterID: car.RenterID})
}

func actionOutcome(err error) string {
	if errorStatus(err) == http.StatusInternalServerError {
		return "error"
	}
	return "rejected"
}

func parseCarFilter(c *gin.Context) (domain.CarFilter, error) {
	filter := domain.CarFilter{Brand: c.Query("brand")}

	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, domain.NewValidationError("invalid year")
		}
		filter.Year = &year
	}
	if v := c.Query("minPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return filter, domain.NewValidationError("invalid minPrice")
		}
		filter.MinPrice = &price
	}
	if v := c.Query("maxPrice"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return filter, domain.NewValidationError("invalid maxPrice")
		}
		filter.MaxPrice = &price
	}
	if v := c.Query("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return filter, domain.NewValidationError("invalid available")
		}
		filter.Available = &available
	}
	if v := c.Query("salonId"); v != "" {
		salonID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || salonID < 1 {
			return filter, domain.NewValidationError("invalid salonId")
		}
		filter.SalonID = &salonID
	}

	page := 1
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return filter, domain.NewValidationError("invalid page")
		}
		page = p
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 || limit > maxPageLimit {
			return filter, domain.NewValidationError("invalid limit")
		}
		filter.Limit = limit
	}
	if filter.Limit > 0 {
		filter.Offset = (page - 1) * filter.Limit
	}
	return filter, nil
}
