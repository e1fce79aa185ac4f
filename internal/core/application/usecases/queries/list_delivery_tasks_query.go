package queries

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/pkg/guard"
)

var ErrListDeliveryTasksQueryIsNotConstructed = errors.New(
	"ListDeliveryTasksQuery must be created via NewListDeliveryTasksQuery constructor",
)

// ListDeliveryTasksQuery lists tasks in creation order, optionally by status.
type ListDeliveryTasksQuery struct {
	status delivery.TaskStatus
	guard  guard.ConstructorGuard
}

func NewListDeliveryTasksQuery(status string) (ListDeliveryTasksQuery, error) {
	q := ListDeliveryTasksQuery{guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(status) != "" {
		parsed, err := delivery.ParseTaskStatus(status)
		if err != nil {
			return ListDeliveryTasksQuery{}, err
		}
		q.status = parsed
	}
	return q, nil
}

func (q ListDeliveryTasksQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryTasksQueryIsNotConstructed)
}
