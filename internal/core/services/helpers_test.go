package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/logger"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/memory"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/password"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	store     *memory.Store
	sessions  *memory.SessionStore
	cache     *memory.Cache
	auth      *AuthService
	cars      *CarService
	customers *CustomerService
	rentals   *RentalService
	salons    *SalonService

	dealer   domain.Principal
	customer domain.Principal
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)
	lg := logger.NewWithLogger(log)

	store := memory.NewStore()
	sessions := memory.NewSessionStore()
	cache := memory.NewCache()
	hasher := password.NewBcryptHasher(bcrypt.MinCost)
	validate := NewValidator()

	env := &testEnv{
		store:     store,
		sessions:  sessions,
		cache:     cache,
		auth:      NewAuthService(store, sessions, hasher, lg, validate, time.Hour),
		cars:      NewCarService(store, lg, validate, cache),
		customers: NewCustomerService(store, store, sessions, hasher, lg, validate, cache),
		rentals:   NewRentalService(store, store, lg, validate),
		salons:    NewSalonService(store, store, lg, validate, cache),
	}

	dealer, err := env.auth.EnsureDealer(context.Background(), &domain.Registration{
		Username: "dealer", Password: "dealer-secret", FirstName: "Anna", LastName: "Nowak",
	})
	require.NoError(t, err)
	env.dealer = domain.PrincipalOf(dealer)
	env.customer = env.register(t, "jkowalski")
	return env
}

func (e *testEnv) register(t *testing.T, username string) domain.Principal {
	t.Helper()
	user, _, err := e.auth.Register(context.Background(), &domain.Registration{
		Username: username, Password: "secret123", FirstName: "Jan", LastName: "Kowalski",
	})
	require.NoError(t, err)
	return domain.PrincipalOf(user)
}

func (e *testEnv) addCar(t *testing.T, vin string) *domain.Car {
	t.Helper()
	car, err := e.cars.CreateCar(context.Background(), e.dealer, &domain.Car{
		Brand: "Toyota", Model: "Corolla", Year: 2021, VIN: vin, Price: 20000, IsAvailableForRent: true,
	})
	require.NoError(t, err)
	return car
}

func ptr[T any](v T) *T { return &v }
