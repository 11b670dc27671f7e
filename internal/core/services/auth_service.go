package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type AuthService struct {
	userRepo   ports.UserRepository
	sessions   ports.SessionStore
	hasher     ports.PasswordHasher
	logger     ports.LoggerPort
	validate   *validator.Validate
	sessionTTL time.Duration
	now        func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	userRepo ports.UserRepository,
	sessions ports.SessionStore,
	hasher ports.PasswordHasher,
	logger ports.LoggerPort,
	validate *validator.Validate,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		hasher:     hasher,
		logger:     logger,
		validate:   validate,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) Register(ctx context.Context, reg *domain.Registration) (*domain.User, *domain.Session, error) {
	user, err := createCustomerAccount(ctx, s.userRepo, s.hasher, s.validate, reg)
	if err != nil {
		s.logger.Warn("Registration rejected", map[string]interface{}{
			"error":    err.Error(),
			"username": reg.Username,
		})
		return nil, nil, err
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User registered", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, session, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("Login with unknown username", map[string]interface{}{
				"username": username,
			})
			return nil, nil, domain.ErrInvalidCredentials
		}
		s.logger.Error("Failed to load user for login", map[string]interface{}{
			"error":    err.Error(),
			"username": username,
		})
		return nil, nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Login with wrong password", map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User logged in", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("Failed to delete session", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID.String(),
		})
		return err
	}
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, sessionID uuid.UUID) (*domain.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = s.sessions.Delete(ctx, sessionID)
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	now := s.now()
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Failed to save session", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID,
		})
		return nil, err
	}
	return session, nil
}

// createCustomerAccount validates a registration and stores a non-dealer user with a hashed password.
func createCustomerAccount(
	ctx context.Context,
	userRepo ports.UserRepository,
	hasher ports.PasswordHasher,
	validate *validator.Validate,
	reg *domain.Registration,
) (*domain.User, error) {
	reg.Normalize()
	if err := validate.Struct(reg); err != nil {
		return nil, validationError(err)
	}

	if _, err := userRepo.GetUserByUsername(ctx, reg.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := hasher.Hash(reg.Password)
	if err != nil {
		return nil, err
	}

	return userRepo.CreateUser(ctx, &domain.User{
		Username:     reg.Username,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		IsDealer:     false,
	})
}

// EnsureDealer creates the dealer account unless one with that username exists.
func (s *AuthService) EnsureDealer(ctx context.Context, reg *domain.Registration) (*domain.User, error) {
	reg.Normalize()
	existing, err := s.userRepo.GetUserByUsername(ctx, reg.Username)
	if err == nil {
		if !existing.IsDealer {
			return nil, fmt.Errorf("user %q exists and is not a dealer", reg.Username)
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.validate.Struct(reg); err != nil {
		return nil, validationError(err)
	}
	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, err
	}

	dealer, err := s.userRepo.CreateUser(ctx, &domain.User{
		Username:     reg.Username,
		PasswordHash: hash,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		IsDealer:     true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dealer account created", map[string]interface{}{
		"user_id":  dealer.ID,
		"username": dealer.Username,
	})
	return dealer, nil
}
