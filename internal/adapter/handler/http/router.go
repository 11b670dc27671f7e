package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/sm8ta/salon_dealership_service/internal/config"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Auth   *AuthHandler
	Car    *CarHandler
	User   *UserHandler
	Rental *RentalHandler
	Salon  *SalonHandler
}

func NewRouter(
	cfg *config.HTTP,
	session SessionSettings,
	authLimiter *RateLimiter,
	gatherer prometheus.Gatherer,
	logger ports.LoggerPort,
	h Handlers,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, errors.New("at least one allowed origin is required")
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Use(SessionMiddleware(session.AuthService, session.TokenService, session.CookieName, logger))

	// Auth routes
	limited := router.Group("")
	limited.Use(authLimiter.Handler())
	{
		limited.POST("/register", h.Auth.Register)
		limited.POST("/login", h.Auth.Login)
	}
	router.POST("/logout", h.Auth.Logout)
	router.GET("/current-user", AuthRequired(), h.Auth.CurrentUser)

	// Cars routes
	cars := router.Group("/cars")
	{
		cars.GET("", h.Car.ListCars)
		cars.GET("/mine", AuthRequired(), h.Car.GetMyCars)
		cars.GET("/:id", h.Car.GetCar)
		cars.GET("/:id/renter", h.Car.GetRenter)
		cars.POST("/:id/leasing", h.Car.LeasingQuote)
		cars.POST("", DealerRequired(), h.Car.CreateCar)
		cars.PUT("/:id", DealerRequired(), h.Car.UpdateCar)
		cars.DELETE("/:id", AuthRequired(), h.Car.DeleteCar)
		cars.POST("/:id/rent", AuthRequired(), h.Car.RentCar)
		cars.POST("/:id/return", AuthRequired(), h.Car.ReturnCar)
		cars.POST("/:id/buy", AuthRequired(), h.Car.BuyCar)
	}

	// Users routes
	users := router.Group("/users")
	users.Use(AuthRequired())
	{
		users.GET("", DealerRequired(), h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
	}
	router.POST("/admin/create-customer", DealerRequired(), h.User.CreateCustomer)

	// Rentals routes
	rentals := router.Group("/rentals")
	rentals.Use(AuthRequired())
	{
		rentals.GET("", h.Rental.ListRentals)
		rentals.POST("", h.Rental.AddRental)
		rentals.DELETE("/:id", h.Rental.RemoveRental)
	}

	// Salons routes
	salons := router.Group("/salons")
	{
		salons.GET("", h.Salon.ListSalons)
		salons.GET("/:id", h.Salon.GetSalon)
		salons.POST("", DealerRequired(), h.Salon.CreateSalon)
		salons.PUT("/:id", DealerRequired(), h.Salon.UpdateSalon)
		salons.DELETE("/:id", DealerRequired(), h.Salon.DeleteSalon)
	}

	return &Router{
		router: router,
		server: &http.Server{
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}, nil
}

// SessionSettings is what the session middleware needs to resolve a cookie.
type SessionSettings struct {
	AuthService  ports.AuthService
	TokenService ports.TokenService
	CookieName   string
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (r *Router) Serve(addr string) error {
	r.server.Addr = addr
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
