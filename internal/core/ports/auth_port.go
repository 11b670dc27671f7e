package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
)

// TokenService signs and verifies the value of the session cookie.
type TokenService interface {
	CreateToken(session *domain.Session) (string, error)
	VerifyToken(token string) (uuid.UUID, error)
}

type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	// DeleteByUser drops every session of the user.
	DeleteByUser(ctx context.Context, userID int64) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type AuthService interface {
	Register(ctx context.Context, reg *domain.Registration) (*domain.User, *domain.Session, error)
	Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// Authenticate resolves a session id into the current user record.
	Authenticate(ctx context.Context, sessionID uuid.UUID) (*domain.User, error)
	SessionTTL() time.Duration
}
