package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, session, err := env.auth.Register(ctx, &domain.Registration{
		Username: "  mnowak ", Password: "secret123", FirstName: "Marta", LastName: "Nowak",
	})
	require.NoError(t, err)
	assert.Equal(t, "mnowak", user.Username)
	assert.False(t, user.IsDealer)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, time.Hour, session.ExpiresAt.Sub(session.CreatedAt))

	_, _, err = env.auth.Register(ctx, &domain.Registration{
		Username: "mnowak", Password: "other-pass", FirstName: "M", LastName: "N",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	customers, err := env.customers.ListCustomers(ctx, env.dealer)
	require.NoError(t, err)
	count := 0
	for _, c := range customers {
		if c.Username == "mnowak" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	_, _, err = env.auth.Register(ctx, &domain.Registration{Username: "ab", Password: "123"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "invalid field(s): firstName, lastName, password, username", err.Error())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, session, err := env.auth.Login(ctx, "jkowalski", "secret123")
	require.NoError(t, err)
	assert.Equal(t, env.customer.UserID, user.ID)

	authed, err := env.auth.Authenticate(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, _, err = env.auth.Login(ctx, "jkowalski", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = env.auth.Login(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, "invalid username or password", domain.PublicMessage(err))
}

func TestAuthenticateExpiredSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, session, err := env.auth.Login(ctx, "jkowalski", "secret123")
	require.NoError(t, err)

	env.auth.now = func() time.Time { return session.ExpiresAt.Add(time.Second) }
	_, err = env.auth.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = env.sessions.Get(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticateUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Authenticate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestLogoutIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, session, err := env.auth.Login(ctx, "jkowalski", "secret123")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, session.ID))
	require.NoError(t, env.auth.Logout(ctx, session.ID))

	_, err = env.auth.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestEnsureDealer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	again, err := env.auth.EnsureDealer(ctx, &domain.Registration{
		Username: "dealer", Password: "ignored-pass", FirstName: "X", LastName: "Y",
	})
	require.NoError(t, err)
	assert.Equal(t, env.dealer.UserID, again.ID)
	assert.True(t, again.IsDealer)

	_, _, err = env.auth.Login(ctx, "dealer", "dealer-secret")
	require.NoError(t, err)

	_, err = env.auth.EnsureDealer(ctx, &domain.Registration{
		Username: "jkowalski", Password: "secret123", FirstName: "J", LastName: "K",
	})
	assert.Error(t, err)
}
