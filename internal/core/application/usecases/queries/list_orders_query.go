package queries

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders newest first, optionally by status.
type ListOrdersQuery struct {
	status order.Status
	limit  int
	guard  guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for all orders and a zero limit
// for DefaultListLimit.
func NewListOrdersQuery(status string, limit int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}

	if strings.TrimSpace(status) != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = parsed
	}

	if q.limit == 0 {
		q.limit = DefaultListLimit
	}
	if q.limit < 1 || q.limit > MaxListLimit {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
