package ports

import (
	"context"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListCustomers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	// DeleteUser removes the user, releases the cars they own or rent and drops their rentals.
	DeleteUser(ctx context.Context, userID int64) error
}

type CustomerService interface {
	ListCustomers(ctx context.Context, actor domain.Principal) ([]*domain.User, error)
	GetCustomer(ctx context.Context, actor domain.Principal, userID int64) (*domain.User, error)
	UpdateCustomer(ctx context.Context, actor domain.Principal, userID int64, patch *domain.UserPatch) (*domain.User, error)
	DeleteCustomer(ctx context.Context, actor domain.Principal, userID int64) error
	CreateCustomer(ctx context.Context, actor domain.Principal, reg *domain.Registration) (*domain.User, error)
}
