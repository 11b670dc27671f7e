package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

const carCacheTTL = 15 * time.Minute

type CarService struct {
	carRepo  ports.CarRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
	now      func() time.Time
}

var _ ports.CarService = (*CarService)(nil)

func NewCarService(
	carRepo ports.CarRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CarService {
	return &CarService{
		carRepo:  carRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
		now:      time.Now,
	}
}

func carCacheKey(carID int64) string {
	return fmt.Sprintf("car:%d", carID)
}

func (s *CarService) validateCar(car *domain.Car) error {
	if err := s.validate.Struct(car); err != nil {
		return validationError(err)
	}
	if maxYear := s.now().Year() + 1; car.Year > maxYear {
		return domain.NewValidationError(fmt.Sprintf("year must not be after %d", maxYear))
	}
	return nil
}

func (s *CarService) CreateCar(ctx context.Context, actor domain.Principal, car *domain.Car) (*domain.Car, error) {
	if !actor.IsDealer {
		s.logger.Warn("Non-dealer tried to create a car", map[string]interface{}{
			"user_id": actor.UserID,
		})
		return nil, domain.ErrDealerOnly
	}

	car.Normalize()
	car.OwnerID, car.RenterID = nil, nil
	if err := s.validateCar(car); err != nil {
		s.logger.Warn("Car validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	created, err := s.carRepo.CreateCar(ctx, car)
	if err != nil {
		s.logger.Error("Failed to create car", map[string]interface{}{
			"error": err.Error(),
			"vin":   car.VIN,
		})
		return nil, err
	}

	s.logger.Info("Car created successfully", map[string]interface{}{
		"car_id": created.ID,
		"vin":    created.VIN,
	})
	return created, nil
}

func (s *CarService) GetCar(ctx context.Context, carID int64) (*domain.Car, error) {
	cacheKey := carCacheKey(carID)
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var car domain.Car
		if err := json.Unmarshal(cached, &car); err == nil {
			s.logger.Debug("Car found in cache", map[string]interface{}{
				"car_id": carID,
			})
			return &car, nil
		}
	}

	car, err := s.carRepo.GetCarByID(ctx, carID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get car", map[string]interface{}{
				"error":  err.Error(),
				"car_id": carID,
			})
		}
		return nil, err
	}

	s.storeInCache(car)
	return car, nil
}

func (s *CarService) ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, domain.NewValidationError("minPrice must not exceed maxPrice")
	}

	cars, err := s.carRepo.ListCars(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list cars", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Listed cars", map[string]interface{}{
		"cars_count": len(cars),
		"brand":      filter.Brand,
	})
	return cars, nil
}

func (s *CarService) ListMyCars(ctx context.Context, actor domain.Principal) ([]*domain.Car, error) {
	cars, err := s.carRepo.ListCarsByUser(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("Failed to list user cars", map[string]interface{}{
			"error":   err.Error(),
			"user_id": actor.UserID,
		})
		return nil, err
	}
	return cars, nil
}

func (s *CarService) UpdateCar(ctx context.Context, actor domain.Principal, carID int64, patch *domain.CarPatch) (*domain.Car, error) {
	if !actor.IsDealer {
		s.logger.Warn("Non-dealer tried to update a car", map[string]interface{}{
			"user_id": actor.UserID,
			"car_id":  carID,
		})
		return nil, domain.ErrDealerOnly
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	car, err := s.carRepo.GetCarByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if patch.IsAvailableForRent != nil && *patch.IsAvailableForRent != car.IsAvailableForRent {
		if state := car.State(); state == domain.CarOwned || state == domain.CarRented {
			return nil, domain.ErrCarLocked
		}
	}

	patch.Apply(car)
	if err := s.validateCar(car); err != nil {
		return nil, err
	}

	updated, err := s.carRepo.UpdateCar(ctx, car)
	if err != nil {
		s.logger.Error("Failed to update car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
		return nil, err
	}
	s.invalidate(carID)

	s.logger.Info("Car updated successfully", map[string]interface{}{
		"car_id": carID,
	})
	return updated, nil
}

func (s *CarService) DeleteCar(ctx context.Context, actor domain.Principal, carID int64) error {
	if !actor.IsDealer {
		s.logger.Warn("Non-dealer tried to delete a car", map[string]interface{}{
			"user_id": actor.UserID,
			"car_id":  carID,
		})
		return domain.ErrDealerOnly
	}

	if err := s.carRepo.DeleteCar(ctx, carID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to delete car", map[string]interface{}{
				"error":  err.Error(),
				"car_id": carID,
			})
		}
		return err
	}
	s.invalidate(carID)

	s.logger.Info("Car deleted successfully", map[string]interface{}{
		"car_id": carID,
	})
	return nil
}

func (s *CarService) RentCar(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error) {
	car, err := s.carRepo.RentCar(ctx, carID, actor.UserID)
	if err != nil {
		s.logger.Warn("Car rent rejected", map[string]interface{}{
			"error":   err.Error(),
			"car_id":  carID,
			"user_id": actor.UserID,
		})
		return nil, err
	}
	s.invalidate(carID)

	s.logger.Info("Car rented", map[string]interface{}{
		"car_id":  carID,
		"user_id": actor.UserID,
	})
	return car, nil
}

func (s *CarService) ReturnCar(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error) {
	car, err := s.carRepo.ReturnCar(ctx, carID, actor.UserID)
	if err != nil {
		s.logger.Warn("Car return rejected", map[string]interface{}{
			"error":   err.Error(),
			"car_id":  carID,
			"user_id": actor.UserID,
		})
		return nil, err
	}
	s.invalidate(carID)

	s.logger.Info("Car returned", map[string]interface{}{
		"car_id":  carID,
		"user_id": actor.UserID,
	})
	return car, nil
}

func (s *CarService) BuyCar(ctx context.Context, actor domain.Principal, carID int64) (*domain.Car, error) {
	car, err := s.carRepo.BuyCar(ctx, carID, actor.UserID)
	if err != nil {
		s.logger.Warn("Car purchase rejected", map[string]interface{}{
			"error":   err.Error(),
			"car_id":  carID,
			"user_id": actor.UserID,
		})
		return nil, err
	}
	s.invalidate(carID)

	s.logger.Info("Car bought", map[string]interface{}{
		"car_id":  carID,
		"user_id": actor.UserID,
	})
	return car, nil
}

func (s *CarService) LeasingQuote(ctx context.Context, carID int64, downPayment float64, months int) (*domain.LeasingQuote, error) {
	car, err := s.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	quote, err := domain.CalculateLeasing(car, downPayment, months)
	if err != nil {
		s.logger.Warn("Leasing quote rejected", map[string]interface{}{
			"error":        err.Error(),
			"car_id":       carID,
			"down_payment": downPayment,
			"months":       months,
		})
		return nil, err
	}
	return quote, nil
}

func (s *CarService) storeInCache(car *domain.Car) {
	data, err := json.Marshal(car)
	if err != nil {
		s.logger.Warn("Failed to marshal car for cache", map[string]interface{}{
			"error":  err.Error(),
			"car_id": car.ID,
		})
		return
	}
	if err := s.cache.Set(carCacheKey(car.ID), data, carCacheTTL); err != nil {
		s.logger.Warn("Failed to cache car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": car.ID,
		})
	}
}

func (s *CarService) invalidate(carID int64) {
	if err := s.cache.Delete(carCacheKey(carID)); err != nil {
		s.logger.Warn("Failed to invalidate car cache", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
	}
}
