package ports

import (
	"context"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

type CarRepository interface {
	CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetCarByID(ctx context.Context, carID int64) (*domain.Car, error)
	ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	ListCarsByUser(ctx context.Context, userID int64) ([]*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, carID int64) error

	// RentCar marks an available car as rented by renterID in one conditional
	// write. It returns domain.ErrCarUnavailable when the car is not available.
	RentCar(ctx context.Context, carID, renterID int64) (*domain.Car, error)
	// ReturnCar releases a car rented by renterID.
	ReturnCar(ctx context.Context, carID, renterID int64) (*domain.Car, error)
	// BuyCar assigns an available car to ownerID.
	BuyCar(ctx context.Context, carID, ownerID int64) (*domain.Car, error)
}

type CarService interface {
	CreateCar(ctx context.Context, actor domain.Principal, car *domain.Car) (*domain.Car, error)
	GetCar(ctx context.Context, carID int64) (*domain.Car, error)
	ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	ListMyCars(ctx context.Context, actor domain.Principal) ([]*domain.Car, error)
	UpdateCar(ctx context.Context, actor domain.Principal, carID int64, patch *domain.CarPatch) (*domain.Car, error)
	DeleteCar(ctx context.Context, actor domain.Principal, carID int64) error
	RentCar(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error)
	ReturnCar(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error)
	BuyCar(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error)
	LeasingQuote(ctx context.Context, carID int64, downPayment float64, months int) (*domain.LeasingQuote, error)
}
