package queries

import (
	"errors"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/guard"
)

var ErrGetDeliveryDetailQueryIsNotConstructed = errors.New(
	"GetDeliveryDetailQuery must be created via NewGetDeliveryDetailQuery constructor",
)

// GetDeliveryDetailQuery loads one delivery task with its pharmacy.
type GetDeliveryDetailQuery struct {
	taskID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetDeliveryDetailQuery(taskID kernel.UUID) (GetDeliveryDetailQuery, error) {
	if err := taskID.Validate(); err != nil {
		return GetDeliveryDetailQuery{}, err
	}
	return GetDeliveryDetailQuery{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryDetailQueryIsNotConstructed)
}

// DeliveryDetail carries the pharmacy only when it still exists.
type DeliveryDetail struct {
	Task     TaskRow
	Pharmacy *PharmacyRow
}
