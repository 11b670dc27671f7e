package services

import (
	"context"
	"testing"
	"time"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAddRental(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	car := env.addCar(t, "JTDBR32E720123456")

	rental, err := env.rentals.AddRental(ctx, env.customer, car.ID,
		day("2026-03-01").Add(15*time.Hour), day("2026-03-05"))
	require.NoError(t, err)
	assert.Equal(t, env.customer.UserID, rental.UserID)
	assert.Equal(t, day("2026-03-01"), rental.StartDate)

	_, err = env.rentals.AddRental(ctx, env.customer, car.ID, day("2026-03-05"), day("2026-03-07"))
	assert.ErrorIs(t, err, domain.ErrRentalOverlap)

	_, err = env.rentals.AddRental(ctx, env.customer, car.ID, day("2026-03-06"), day("2026-03-06"))
	require.NoError(t, err)

	_, err = env.rentals.AddRental(ctx, env.customer, car.ID, day("2026-04-10"), day("2026-04-01"))
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "endDate must not be before startDate", err.Error())

	_, err = env.rentals.AddRental(ctx, env.customer, 9999, day("2026-05-01"), day("2026-05-02"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := env.rentals.ListRentals(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	other := env.addCar(t, "JTDBR32E720654321")
	byCar, err := env.rentals.ListRentals(ctx, &other.ID)
	require.NoError(t, err)
	assert.Empty(t, byCar)
}

func TestRemoveRental(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	car := env.addCar(t, "JTDBR32E720123456")
	other := env.register(t, "mnowak")

	rental, err := env.rentals.AddRental(ctx, env.customer, car.ID, day("2026-03-01"), day("2026-03-02"))
	require.NoError(t, err)

	assert.ErrorIs(t, env.rentals.RemoveRental(ctx, other, rental.ID), domain.ErrForbidden)
	require.NoError(t, env.rentals.RemoveRental(ctx, env.customer, rental.ID))
	assert.ErrorIs(t, env.rentals.RemoveRental(ctx, env.customer, rental.ID), domain.ErrNotFound)

	rental, err = env.rentals.AddRental(ctx, env.customer, car.ID, day("2026-03-01"), day("2026-03-02"))
	require.NoError(t, err)
	require.NoError(t, env.rentals.RemoveRental(ctx, env.dealer, rental.ID))
}
