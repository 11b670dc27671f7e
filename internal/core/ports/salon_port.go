package ports

import (
	"context"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

type SalonRepository interface {
	CreateSalon(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	GetSalonByID(ctx context.Context, salonID int64) (*domain.Salon, error)
	ListSalons(ctx context.Context) ([]*domain.Salon, error)
	UpdateSalon(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	DeleteSalon(ctx context.Context, salonID int64) error
}

type SalonService interface {
	CreateSalon(ctx context.Context, actor domain.Principal, salon *domain.Salon) (*domain.Salon, error)
	GetSalonWithCars(ctx context.Context, salonID int64) (*domain.Salon, error)
	ListSalons(ctx context.Context) ([]*domain.Salon, error)
	UpdateSalon(ctx context.Context, actor domain.Principal, salonID int64, patch *domain.SalonPatch) (*domain.Salon, error)
	DeleteSalon(ctx context.Context, actor domain.Principal, salonID int64) error
}
