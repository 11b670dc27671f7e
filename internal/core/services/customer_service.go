package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type CustomerService struct {
	userRepo ports.UserRepository
	carRepo  ports.CarRepository
	sessions ports.SessionStore
	hasher   ports.PasswordHasher
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

var _ ports.CustomerService = (*CustomerService)(nil)

func NewCustomerService(
	userRepo ports.UserRepository,
	carRepo ports.CarRepository,
	sessions ports.SessionStore,
	hasher ports.PasswordHasher,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CustomerService {
	return &CustomerService{
		userRepo: userRepo,
		carRepo:  carRepo,
		sessions: sessions,
		hasher:   hasher,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (s *CustomerService) ListCustomers(ctx context.Context, actor domain.Principal) ([]*domain.User, error) {
	if !actor.IsDealer {
		return nil, domain.ErrDealerOnly
	}

	customers, err := s.userRepo.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("Failed to list customers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, actor domain.Principal, userID int64) (*domain.User, error) {
	if !actor.CanManage(userID) {
		s.logger.Warn("Access denied to customer", map[string]interface{}{
			"requester_id": actor.UserID,
			"user_id":      userID,
		})
		return nil, domain.ErrForbidden
	}
	return s.loadCustomer(ctx, userID)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, actor domain.Principal, userID int64, patch *domain.UserPatch) (*domain.User, error) {
	if !actor.CanManage(userID) {
		s.logger.Warn("Access denied to update customer", map[string]interface{}{
			"requester_id": actor.UserID,
			"user_id":      userID,
		})
		return nil, domain.ErrForbidden
	}
	patch.Normalize()
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	user, err := s.loadCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		username := *patch.Username
		if username != user.Username {
			existing, err := s.userRepo.GetUserByUsername(ctx, username)
			switch {
			case err == nil && existing.ID != user.ID:
				return nil, domain.ErrUsernameTaken
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return nil, err
			}
			user.Username = username
		}
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to update customer", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	s.logger.Info("Customer updated", map[string]interface{}{
		"user_id":      userID,
		"requester_id": actor.UserID,
	})
	return updated, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, actor domain.Principal, userID int64) error {
	if !actor.CanManage(userID) {
		s.logger.Warn("Access denied to delete customer", map[string]interface{}{
			"requester_id": actor.UserID,
			"user_id":      userID,
		})
		return domain.ErrForbidden
	}
	if _, err := s.loadCustomer(ctx, userID); err != nil {
		return err
	}

	cars, err := s.carRepo.ListCarsByUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.logger.Error("Failed to delete customer", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return err
	}

	for _, car := range cars {
		if err := s.cache.Delete(carCacheKey(car.ID)); err != nil {
			s.logger.Warn("Failed to invalidate car cache", map[string]interface{}{
				"error":  err.Error(),
				"car_id": car.ID,
			})
		}
	}
	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		s.logger.Warn("Failed to drop sessions of deleted customer", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
	}

	s.logger.Info("Customer deleted", map[string]interface{}{
		"user_id":       userID,
		"requester_id":  actor.UserID,
		"released_cars": len(cars),
	})
	return nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, actor domain.Principal, reg *domain.Registration) (*domain.User, error) {
	if !actor.IsDealer {
		return nil, domain.ErrDealerOnly
	}

	user, err := createCustomerAccount(ctx, s.userRepo, s.hasher, s.validate, reg)
	if err != nil {
		s.logger.Warn("Customer creation rejected", map[string]interface{}{
			"error":     err.Error(),
			"username":  reg.Username,
			"dealer_id": actor.UserID,
		})
		return nil, err
	}

	s.logger.Info("Customer created by dealer", map[string]interface{}{
		"user_id":   user.ID,
		"dealer_id": actor.UserID,
	})
	return user, nil
}

func (s *CustomerService) loadCustomer(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsDealer {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
