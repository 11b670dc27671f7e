package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalonRepositoryDeleteSalonNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM salons WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, NewSalonRepository(db).DeleteSalon(context.Background(), 3), domain.ErrSalonNotFound)
}

func TestSalonRepositoryListSalons(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, location FROM salons ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).
			AddRow(int64(1), "Centrum", "Warszawa").
			AddRow(int64(2), "Północ", "Gdańsk"))

	salons, err := NewSalonRepository(db).ListSalons(context.Background())
	require.NoError(t, err)
	require.Len(t, salons, 2)
	assert.Equal(t, "Północ", salons[1].Name)
}
