package services

import (
	"context"
	"testing"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCustomersIsDealerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.customers.ListCustomers(ctx, env.customer)
	assert.ErrorIs(t, err, domain.ErrDealerOnly)

	customers, err := env.customers.ListCustomers(ctx, env.dealer)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "jkowalski", customers[0].Username)
}

func TestGetCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	other := env.register(t, "mnowak")

	self, err := env.customers.GetCustomer(ctx, env.customer, env.customer.UserID)
	require.NoError(t, err)
	assert.Equal(t, "jkowalski", self.Username)

	_, err = env.customers.GetCustomer(ctx, other, env.customer.UserID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = env.customers.GetCustomer(ctx, env.dealer, other.UserID)
	require.NoError(t, err)

	_, err = env.customers.GetCustomer(ctx, env.dealer, env.dealer.UserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "mnowak")

	_, err := env.customers.UpdateCustomer(ctx, env.customer, env.customer.UserID, &domain.UserPatch{
		Username: ptr("mnowak"),
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	updated, err := env.customers.UpdateCustomer(ctx, env.customer, env.customer.UserID, &domain.UserPatch{
		FirstName: ptr(" Janusz "),
		Password:  ptr("new-secret"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Janusz", updated.FirstName)
	assert.Equal(t, "jkowalski", updated.Username)

	_, _, err = env.auth.Login(ctx, "jkowalski", "new-secret")
	require.NoError(t, err)
	_, _, err = env.auth.Login(ctx, "jkowalski", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = env.customers.UpdateCustomer(ctx, env.customer, env.customer.UserID, &domain.UserPatch{
		Username: ptr("x"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateCustomerRejectsBlankFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.customers.UpdateCustomer(ctx, env.customer, env.customer.UserID, &domain.UserPatch{
		Username:  ptr("      "),
		FirstName: ptr("   "),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "firstName")
	assert.Contains(t, err.Error(), "username")

	stored, err := env.customers.GetCustomer(ctx, env.customer, env.customer.UserID)
	require.NoError(t, err)
	assert.Equal(t, "jkowalski", stored.Username)
	assert.Equal(t, "Jan", stored.FirstName)

	updated, err := env.customers.UpdateCustomer(ctx, env.customer, env.customer.UserID, &domain.UserPatch{
		Username: ptr("  jkowalski2  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "jkowalski2", updated.Username)
}

func TestDeleteCustomerReleasesCars(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	rented := env.addCar(t, "JTDBR32E720000001")
	owned := env.addCar(t, "JTDBR32E720000002")
	other := env.register(t, "mnowak")

	_, err := env.cars.RentCar(ctx, env.customer, rented.ID)
	require.NoError(t, err)
	_, err = env.cars.BuyCar(ctx, env.customer, owned.ID)
	require.NoError(t, err)
	_, session, err := env.auth.Login(ctx, "jkowalski", "secret123")
	require.NoError(t, err)

	assert.ErrorIs(t, env.customers.DeleteCustomer(ctx, other, env.customer.UserID), domain.ErrForbidden)
	require.NoError(t, env.customers.DeleteCustomer(ctx, env.dealer, env.customer.UserID))

	car, err := env.cars.GetCar(ctx, rented.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CarAvailable, car.State())

	car, err = env.cars.GetCar(ctx, owned.ID)
	require.NoError(t, err)
	assert.Nil(t, car.OwnerID)

	_, err = env.auth.Authenticate(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.ErrorIs(t, env.customers.DeleteCustomer(ctx, env.dealer, env.customer.UserID), domain.ErrNotFound)
}

func TestCreateCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reg := &domain.Registration{Username: "walkin", Password: "secret123", FirstName: "Ewa", LastName: "Lis"}

	_, err := env.customers.CreateCustomer(ctx, env.customer, reg)
	assert.ErrorIs(t, err, domain.ErrDealerOnly)

	user, err := env.customers.CreateCustomer(ctx, env.dealer, reg)
	require.NoError(t, err)
	assert.False(t, user.IsDealer)

	_, _, err = env.auth.Login(ctx, "walkin", "secret123")
	require.NoError(t, err)
}
