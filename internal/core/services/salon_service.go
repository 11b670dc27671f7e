package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type SalonService struct {
	salonRepo ports.SalonRepository
	carRepo   ports.CarRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
	cache     ports.CachePort
}

var _ ports.SalonService = (*SalonService)(nil)

func NewSalonService(
	salonRepo ports.SalonRepository,
	carRepo ports.CarRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *SalonService {
	return &SalonService{
		salonRepo: salonRepo,
		carRepo:   carRepo,
		logger:    logger,
		validate:  validate,
		cache:     cache,
	}
}

func (s *SalonService) CreateSalon(ctx context.Context, actor domain.Principal, salon *domain.Salon) (*domain.Salon, error) {
	if !actor.IsDealer {
		return nil, domain.ErrDealerOnly
	}
	salon.Name = strings.TrimSpace(salon.Name)
	salon.Location = strings.TrimSpace(salon.Location)
	if err := s.validate.Struct(salon); err != nil {
		return nil, validationError(err)
	}

	created, err := s.salonRepo.CreateSalon(ctx, salon)
	if err != nil {
		s.logger.Error("Failed to create salon", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Salon created", map[string]interface{}{
		"salon_id": created.ID,
	})
	return created, nil
}

func (s *SalonService) GetSalonWithCars(ctx context.Context, salonID int64) (*domain.Salon, error) {
	salon, err := s.salonRepo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	cars, err := s.carRepo.ListCars(ctx, domain.CarFilter{SalonID: &salonID})
	if err != nil {
		s.logger.Warn("Failed to get salon cars", map[string]interface{}{
			"error":    err.Error(),
			"salon_id": salonID,
		})
		cars = []*domain.Car{}
	}
	salon.Cars = cars
	return salon, nil
}

func (s *SalonService) ListSalons(ctx context.Context) ([]*domain.Salon, error) {
	return s.salonRepo.ListSalons(ctx)
}

func (s *SalonService) UpdateSalon(ctx context.Context, actor domain.Principal, salonID int64, patch *domain.SalonPatch) (*domain.Salon, error) {
	if !actor.IsDealer {
		return nil, domain.ErrDealerOnly
	}
	patch.Normalize()
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	salon, err := s.salonRepo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		salon.Name = *patch.Name
	}
	if patch.Location != nil {
		salon.Location = *patch.Location
	}

	updated, err := s.salonRepo.UpdateSalon(ctx, salon)
	if err != nil {
		s.logger.Error("Failed to update salon", map[string]interface{}{
			"error":    err.Error(),
			"salon_id": salonID,
		})
		return nil, err
	}
	return updated, nil
}

func (s *SalonService) DeleteSalon(ctx context.Context, actor domain.Principal, salonID int64) error {
	if !actor.IsDealer {
		return domain.ErrDealerOnly
	}
	cars, err := s.carRepo.ListCars(ctx, domain.CarFilter{SalonID: &salonID})
	if err != nil {
		return err
	}
	if err := s.salonRepo.DeleteSalon(ctx, salonID); err != nil {
		return err
	}
	// cars outlive their salon with salonId cleared
	for _, car := range cars {
		if err := s.cache.Delete(carCacheKey(car.ID)); err != nil {
			s.logger.Warn("Failed to invalidate car cache", map[string]interface{}{
				"error":  err.Error(),
				"car_id": car.ID,
			})
		}
	}

	s.logger.Info("Salon deleted", map[string]interface{}{
		"salon_id": salonID,
	})
	return nil
}
