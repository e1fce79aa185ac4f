package queries

import (
	"errors"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/guard"
)

const PharmacyRecentOrdersLimit = 10

var ErrGetPharmacyDetailQueryIsNotConstructed = errors.New(
	"GetPharmacyDetailQuery must be created via NewGetPharmacyDetailQuery constructor",
)

// GetPharmacyDetailQuery loads one pharmacy for the customer detail page.
type GetPharmacyDetailQuery struct {
	pharmacyID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetPharmacyDetailQuery(pharmacyID kernel.UUID) (GetPharmacyDetailQuery, error) {
	if err := pharmacyID.Validate(); err != nil {
		return GetPharmacyDetailQuery{}, err
	}
	return GetPharmacyDetailQuery{pharmacyID: pharmacyID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPharmacyDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmacyDetailQueryIsNotConstructed)
}

type PharmacyDetail struct {
	Pharmacy     PharmacyRow
	RecentOrders []OrderRow
}
