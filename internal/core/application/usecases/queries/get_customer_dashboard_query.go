package queries

import (
	"errors"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/guard"
)

const (
	CustomerRecentOrdersLimit  = 4
	CustomerNotificationsLimit = 5
)

var ErrGetCustomerDashboardQueryIsNotConstructed = errors.New(
	"GetCustomerDashboardQuery must be created via NewGetCustomerDashboardQuery constructor",
)

// GetCustomerDashboardQuery collects the customer journey page for one account.
type GetCustomerDashboardQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetCustomerDashboardQuery(customerID kernel.UUID) (GetCustomerDashboardQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerDashboardQuery{}, err
	}
	return GetCustomerDashboardQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerDashboardQueryIsNotConstructed)
}

type ProviderRow struct {
	Name   string
	Status string
	Fee    string
}

type CardRow struct {
	OwnerName    string
	ProviderName string
	Masked       string
	Theme        string
	Limit        string
}

type CustomerDashboard struct {
	Pharmacies    []PharmacyRow
	Orders        []OrderRow
	Providers     []ProviderRow
	Cards         []CardRow
	Notifications []NotificationRow
}
