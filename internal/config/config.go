package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App       *App
		Session   *Session
		DB        *DB
		HTTP      *HTTP
		Redis     *Redis
		RateLimit *RateLimit
		Dealer    *Dealer
	}

	App struct {
		Name     string
		Env      string
		LogLevel string
	}

	Session struct {
		Secret     string
		TTL        time.Duration
		CookieName string
		BcryptCost int
	}

	DB struct {
		Driver        string
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		SSLMode       string
		MaxOpenConns  int
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins []string
		URL            string
		ReadTimeout    time.Duration
		WriteTimeout   time.Duration
		IdleTimeout    time.Duration
	}

	Redis struct {
		Enabled  bool
		Address  string
		Password string
		DB       int
	}

	RateLimit struct {
		RequestsPerSecond float64
		Burst             int
	}

	// Dealer is the account ensured at startup; dealers cannot self-register.
	Dealer struct {
		Username  string
		Password  string
		FirstName string
		LastName  string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	env := getEnv("APP_ENV", "development")

	app := &App{
		Name:     getEnv("APP_NAME", "salon-dealership"),
		Env:      env,
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	session := &Session{
		Secret:     getEnv("SESSION_SECRET", "devsessionsecret"),
		TTL:        getDuration("SESSION_TTL", 24*time.Hour),
		CookieName: getEnv("SESSION_COOKIE_NAME", "salon_session"),
		BcryptCost: getInt("BCRYPT_COST", 10),
	}
	if env == "production" && session.Secret == "devsessionsecret" {
		return nil, errors.New("SESSION_SECRET must be set in production")
	}

	db := &DB{
		Driver:        getEnv("DB_DRIVER", "postgres"),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		User:          getEnv("DB_USER", "postgres"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          getEnv("DB_NAME", "salon_samochodowy"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:  getInt("DB_MAX_OPEN_CONNS", 10),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "3000"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:4200")),
		URL:            os.Getenv("HTTP_URL"),
		Env:            env,
		ReadTimeout:    getDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}

	redis := &Redis{
		Enabled:  getBool("REDIS_ENABLED", true),
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getInt("REDIS_DB", 0),
	}

	rateLimit := &RateLimit{
		RequestsPerSecond: getFloat("AUTH_RATE_LIMIT_RPS", 1),
		Burst:             getInt("AUTH_RATE_LIMIT_BURST", 5),
	}

	dealer := &Dealer{
		Username:  os.Getenv("DEALER_USERNAME"),
		Password:  os.Getenv("DEALER_PASSWORD"),
		FirstName: getEnv("DEALER_FIRST_NAME", "Dealer"),
		LastName:  getEnv("DEALER_LAST_NAME", "Account"),
	}

	return &Container{
		App:       app,
		Session:   session,
		DB:        db,
		HTTP:      http,
		Redis:     redis,
		RateLimit: rateLimit,
		Dealer:    dealer,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
