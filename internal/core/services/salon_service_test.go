package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/sm8ta/salon_dealership_service/internal/adapter/logger"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalonLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.salons.CreateSalon(ctx, env.customer, &domain.Salon{Name: "Centrum", Location: "Warszawa"})
	assert.ErrorIs(t, err, domain.ErrDealerOnly)

	_, err = env.salons.CreateSalon(ctx, env.dealer, &domain.Salon{Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	salon, err := env.salons.CreateSalon(ctx, env.dealer, &domain.Salon{Name: " Centrum ", Location: "Warszawa"})
	require.NoError(t, err)
	assert.Equal(t, "Centrum", salon.Name)

	car := env.addCar(t, "JTDBR32E720123456")
	env.addCar(t, "JTDBR32E720654321")
	_, err = env.cars.UpdateCar(ctx, env.dealer, car.ID, &domain.CarPatch{SalonID: &salon.ID})
	require.NoError(t, err)

	withCars, err := env.salons.GetSalonWithCars(ctx, salon.ID)
	require.NoError(t, err)
	require.Len(t, withCars.Cars, 1)
	assert.Equal(t, car.ID, withCars.Cars[0].ID)

	renamed, err := env.salons.UpdateSalon(ctx, env.dealer, salon.ID, &domain.SalonPatch{Location: ptr("Kraków")})
	require.NoError(t, err)
	assert.Equal(t, "Centrum", renamed.Name)
	assert.Equal(t, "Kraków", renamed.Location)

	salons, err := env.salons.ListSalons(ctx)
	require.NoError(t, err)
	assert.Len(t, salons, 1)

	assert.ErrorIs(t, env.salons.DeleteSalon(ctx, env.customer, salon.ID), domain.ErrForbidden)
	require.NoError(t, env.salons.DeleteSalon(ctx, env.dealer, salon.ID))

	orphan, err := env.cars.GetCar(ctx, car.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.SalonID)

	_, err = env.salons.GetSalonWithCars(ctx, salon.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSalonRejectsBlankName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	salon, err := env.salons.CreateSalon(ctx, env.dealer, &domain.Salon{Name: "Centrum", Location: "Warszawa"})
	require.NoError(t, err)

	_, err = env.salons.UpdateSalon(ctx, env.dealer, salon.ID, &domain.SalonPatch{Name: ptr("    ")})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = env.salons.UpdateSalon(ctx, env.dealer, salon.ID, &domain.SalonPatch{Location: ptr(" ")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	stored, err := env.salons.GetSalonWithCars(ctx, salon.ID)
	require.NoError(t, err)
	assert.Equal(t, "Centrum", stored.Name)
	assert.Equal(t, "Warszawa", stored.Location)

	renamed, err := env.salons.UpdateSalon(ctx, env.dealer, salon.ID, &domain.SalonPatch{Name: ptr(" Północ ")})
	require.NoError(t, err)
	assert.Equal(t, "Północ", renamed.Name)
}

type failingCache struct{}

var errCacheDown = errors.New("cache down")

func (failingCache) Get(string) ([]byte, error) {
	return nil, errCacheDown
}

func (failingCache) Set(string, []byte, time.Duration) error {
	return errCacheDown
}

func (failingCache) Delete(string) error {
	return errCacheDown
}

func TestDeleteSalonLogsCacheFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	log, hook := logtest.NewNullLogger()
	salons := NewSalonService(env.store, env.store, logger.NewWithLogger(log), NewValidator(), failingCache{})

	salon, err := salons.CreateSalon(ctx, env.dealer, &domain.Salon{Name: "Centrum", Location: "Warszawa"})
	require.NoError(t, err)
	car := env.addCar(t, "JTDBR32E720123456")
	_, err = env.cars.UpdateCar(ctx, env.dealer, car.ID, &domain.CarPatch{SalonID: &salon.ID})
	require.NoError(t, err)

	require.NoError(t, salons.DeleteSalon(ctx, env.dealer, salon.ID))

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "Failed to invalidate car cache" {
			warned = true
			assert.Equal(t, car.ID, entry.Data["car_id"])
		}
	}
	assert.True(t, warned)
}
