package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "username", "password_hash", "first_name", "last_name", "is_dealer", "created_at", "updated_at",
}

func TestUserRepositoryCreateUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("jkowalski", "hash", "Jan", "Kowalski", false).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(5), "jkowalski", "hash", "Jan", "Kowalski", false, now, now))

	user, err := repo.CreateUser(context.Background(), &domain.User{
		Username: "jkowalski", PasswordHash: "hash", FirstName: "Jan", LastName: "Kowalski",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "users_username_key"})
	_, err = repo.CreateUser(context.Background(), &domain.User{Username: "jkowalski"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserRepositoryGetUserByUsernameNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := NewUserRepository(db).GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("releases cars and commits", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`WHERE renter_id = $1`)).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`WHERE owner_id = $1`)).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewUserRepository(db).DeleteUser(ctx, 5))
	})

	t.Run("missing user rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE cars`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`UPDATE cars`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM users`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, NewUserRepository(db).DeleteUser(ctx, 5), domain.ErrUserNotFound)
	})

	t.Run("release failure rolls back", func(t *testing.T) {
		db, mock := newMock(t)
		boom := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE cars`).WillReturnError(boom)
		mock.ExpectRollback()

		assert.ErrorIs(t, NewUserRepository(db).DeleteUser(ctx, 5), boom)
	})
}
