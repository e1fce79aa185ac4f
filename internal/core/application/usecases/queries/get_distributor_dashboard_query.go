package queries

import (
	"errors"

	"pharmacygo/internal/pkg/guard"
)

var ErrGetDistributorDashboardQueryIsNotConstructed = errors.New(
	"GetDistributorDashboardQuery must be created via NewGetDistributorDashboardQuery constructor",
)

// GetDistributorDashboardQuery collects the distributor ops page.
type GetDistributorDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDistributorDashboardQuery() GetDistributorDashboardQuery {
	return GetDistributorDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDistributorDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDistributorDashboardQueryIsNotConstructed)
}

type DistributorDashboard struct {
	Stock       []StockRow
	Tasks       []TaskRow
	Timeline    []TimelineRow
	StatusBoard []StatusEntryRow
}
