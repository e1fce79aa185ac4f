package commands_test

import (
	"testing"
	"time"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/pharmacy"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"
)

func newTestPharmacy(t *testing.T) *pharmacy.Pharmacy {
	t.Helper()
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), randomdata.SillyName()+" Pharmacy",
		1.4, 4.6, randomdata.Address(), kernel.DefaultMapPin())
	require.NoError(t, err)
	return p
}

func newTestCustomer(t *testing.T) *identity.Account {
	t.Helper()
	a, err := identity.NewAccount(kernel.NewUUID(), identity.Customer, randomdata.FullName(randomdata.Female),
		"", randomdata.PhoneNumber(), "", "$2a$hash", time.Now().UTC())
	require.NoError(t, err)
	return a
}

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.NewUUID(), "#PG-2148", randomdata.FullName(randomdata.Male), nil,
		kernel.NewUUID(), status, []string{"Care pack"}, "Requested", "TBD", now, now, 1)
	require.NoError(t, err)
	return o
}
