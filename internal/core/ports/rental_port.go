package ports

import (
	"context"
	"time"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

type RentalRepository interface {
	// CreateRental stores the rental unless it overlaps another window of the
	// same car, in which case it returns domain.ErrRentalOverlap.
	CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetRentalByID(ctx context.Context, rentalID int64) (*domain.Rental, error)
	ListRentals(ctx context.Context, carID *int64) ([]*domain.Rental, error)
	DeleteRental(ctx context.Context, rentalID int64) error
}

type RentalService interface {
	AddRental(ctx context.Context, actor domain.Principal, carID int64, start, end time.Time) (*domain.Rental, error)
	ListRentals(ctx context.Context, carID *int64) ([]*domain.Rental, error)
	RemoveRental(ctx context.Context, actor domain.Principal, rentalID int64) error
}
