package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/salon_dealership_service/internal/adapter/handler/http"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/logger"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/memory"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/password"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/postgres"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/prometheus"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/redis"
	"github.com/sm8ta/salon_dealership_service/internal/config"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
	"github.com/sm8ta/salon_dealership_service/internal/core/services"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redisClient "github.com/redis/go-redis/v9"
)

const limiterCleanupInterval = 10 * time.Minute

type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *sql.DB
	RedisClient *redisClient.Client
	Cache       ports.CachePort
	HTTPRouter  *http.Router

	stopCleanup chan struct{}
}

// repositories bundles the storage backend chosen by DB_DRIVER.
type repositories struct {
	cars    ports.CarRepository
	users   ports.UserRepository
	rentals ports.RentalRepository
	salons  ports.SalonRepository
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env, cfg.App.LogLevel)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":       cfg.App.Name,
		"env":       cfg.App.Env,
		"db_driver": cfg.DB.Driver,
	})

	a := &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		stopCleanup: make(chan struct{}),
	}

	// Storage
	repos, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	// Set redis
	var sessions ports.SessionStore
	if cfg.Redis.Enabled {
		conn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := conn.Ping(ctx).Result(); err != nil {
			a.closeStorage()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.RedisClient = conn
		a.Cache = redis.NewRedisAdapter(conn)
		sessions = redis.NewSessionStore(conn)
	} else {
		loggerAdapter.Warn("Redis disabled, sessions and cache are kept in memory", nil)
		a.Cache = memory.NewCache()
		sessions = memory.NewSessionStore()
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	registry := promclient.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := prometheus.NewPrometheusAdapter(registry)

	// Services
	hasher := password.NewBcryptHasher(cfg.Session.BcryptCost)
	authService := services.NewAuthService(repos.users, sessions, hasher, loggerAdapter, validate, cfg.Session.TTL)
	carService := services.NewCarService(repos.cars, loggerAdapter, validate, a.Cache)
	customerService := services.NewCustomerService(repos.users, repos.cars, sessions, hasher, loggerAdapter, validate, a.Cache)
	rentalService := services.NewRentalService(repos.rentals, repos.cars, loggerAdapter, validate)
	salonService := services.NewSalonService(repos.salons, repos.cars, loggerAdapter, validate, a.Cache)

	if err := a.seedDealer(ctx, authService); err != nil {
		a.close()
		return nil, err
	}

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Session.Secret, loggerAdapter)
	cookie := http.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.App.Env == "production",
	}
	handlers := http.Handlers{
		Auth:   http.NewAuthHandler(authService, tokenService, cookie, loggerAdapter, metrics),
		Car:    http.NewCarHandler(carService, loggerAdapter, metrics),
		User:   http.NewUserHandler(customerService, cookie, loggerAdapter, metrics),
		Rental: http.NewRentalHandler(rentalService, loggerAdapter, metrics),
		Salon:  http.NewSalonHandler(salonService, loggerAdapter, metrics),
	}

	authLimiter := http.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, loggerAdapter)
	authLimiter.StartCleanup(limiterCleanupInterval, a.stopCleanup)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		http.SessionSettings{
			AuthService:  authService,
			TokenService: tokenService,
			CookieName:   cfg.Session.CookieName,
		},
		authLimiter,
		registry,
		loggerAdapter,
		handlers,
	)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}
	a.HTTPRouter = router

	return a, nil
}

func (a *App) openStorage(ctx context.Context) (*repositories, error) {
	switch a.Config.DB.Driver {
	case "memory":
		store := memory.NewStore()
		return &repositories{cars: store, users: store, rentals: store, salons: store}, nil
	case "postgres":
		db, err := postgres.Connect(ctx, a.Config.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db, a.Config.DB.MigrationsDir); err != nil {
			db.Close()
			return nil, err
		}
		a.DB = db
		return &repositories{
			cars:    postgres.NewCarRepository(db),
			users:   postgres.NewUserRepository(db),
			rentals: postgres.NewRentalRepository(db),
			salons:  postgres.NewSalonRepository(db),
		}, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", a.Config.DB.Driver)
	}
}

func (a *App) seedDealer(ctx context.Context, authService *services.AuthService) error {
	if a.Config.Dealer.Username == "" {
		a.Logger.Warn("DEALER_USERNAME not set, no dealer account ensured", nil)
		return nil
	}

	dealer, err := authService.EnsureDealer(ctx, &domain.Registration{
		Username:  a.Config.Dealer.Username,
		Password:  a.Config.Dealer.Password,
		FirstName: a.Config.Dealer.FirstName,
		LastName:  a.Config.Dealer.LastName,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure dealer account: %w", err)
	}

	a.Logger.Info("Dealer account ready", map[string]interface{}{
		"user_id": dealer.ID,
	})
	return nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	var errs []error
	if a.HTTPRouter != nil {
		if err := a.HTTPRouter.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP server shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
			errs = append(errs, err)
		}
	}
	a.close()

	a.Logger.Info("Application stopped", nil)
	return errors.Join(errs...)
}

func (a *App) close() {
	select {
	case <-a.stopCleanup:
	default:
		close(a.stopCleanup)
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
		a.RedisClient = nil
	}
	a.closeStorage()
}

func (a *App) closeStorage() {
	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
		a.DB = nil
	}
}
