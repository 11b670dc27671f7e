package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type RentalService struct {
	rentalRepo ports.RentalRepository
	carRepo    ports.CarRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
}

var _ ports.RentalService = (*RentalService)(nil)

func NewRentalService(
	rentalRepo ports.RentalRepository,
	carRepo ports.CarRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *RentalService {
	return &RentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
		logger:     logger,
		validate:   validate,
	}
}

func (s *RentalService) AddRental(ctx context.Context, actor domain.Principal, carID int64, start, end time.Time) (*domain.Rental, error) {
	rental := &domain.Rental{
		CarID:     carID,
		UserID:    actor.UserID,
		StartDate: domain.TruncateDay(start),
		EndDate:   domain.TruncateDay(end),
	}
	if err := s.validate.Struct(rental); err != nil {
		return nil, validationError(err)
	}
	if rental.EndDate.Before(rental.StartDate) {
		return nil, domain.NewValidationError("endDate must not be before startDate")
	}

	if _, err := s.carRepo.GetCarByID(ctx, carID); err != nil {
		return nil, err
	}

	created, err := s.rentalRepo.CreateRental(ctx, rental)
	if err != nil {
		if errors.Is(err, domain.ErrRentalOverlap) {
			s.logger.Warn("Rental window overlaps", map[string]interface{}{
				"car_id":  carID,
				"user_id": actor.UserID,
				"start":   rental.StartDate.Format(time.DateOnly),
				"end":     rental.EndDate.Format(time.DateOnly),
			})
		} else {
			s.logger.Error("Failed to create rental", map[string]interface{}{
				"error":  err.Error(),
				"car_id": carID,
			})
		}
		return nil, err
	}

	s.logger.Info("Rental created", map[string]interface{}{
		"rental_id": created.ID,
		"car_id":    carID,
		"user_id":   actor.UserID,
	})
	return created, nil
}

func (s *RentalService) ListRentals(ctx context.Context, carID *int64) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.ListRentals(ctx, carID)
	if err != nil {
		s.logger.Error("Failed to list rentals", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return rentals, nil
}

func (s *RentalService) RemoveRental(ctx context.Context, actor domain.Principal, rentalID int64) error {
	rental, err := s.rentalRepo.GetRentalByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if !actor.CanManage(rental.UserID) {
		s.logger.Warn("Access denied to remove rental", map[string]interface{}{
			"requester_id": actor.UserID,
			"rental_id":    rentalID,
		})
		return domain.ErrForbidden
	}

	if err := s.rentalRepo.DeleteRental(ctx, rentalID); err != nil {
		return err
	}

	s.logger.Info("Rental removed", map[string]interface{}{
		"rental_id":    rentalID,
		"requester_id": actor.UserID,
	})
	return nil
}
