package queries

import (
	"errors"
	"strings"

	"pharmacygo/internal/pkg/guard"
)

const PharmacyNotificationsLimit = 5

var ErrGetPharmacyStoreDashboardQueryIsNotConstructed = errors.New(
	"GetPharmacyStoreDashboardQuery must be created via NewGetPharmacyStoreDashboardQuery constructor",
)

// GetPharmacyStoreDashboardQuery collects the pharmacy store workspace.
// organization narrows the applications list to the store's own filings;
// an empty organization shows all of them.
type GetPharmacyStoreDashboardQuery struct {
	organization string
	guard        guard.ConstructorGuard
}

func NewGetPharmacyStoreDashboardQuery(organization string) GetPharmacyStoreDashboardQuery {
	return GetPharmacyStoreDashboardQuery{
		organization: strings.TrimSpace(organization),
		guard:        guard.NewConstructorGuard(),
	}
}

func (q GetPharmacyStoreDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmacyStoreDashboardQueryIsNotConstructed)
}

type PharmacyStoreDashboard struct {
	Orders        []OrderRow
	Stock         []StockRow
	Notifications []NotificationRow
	Applications  []ApplicationRow
}
