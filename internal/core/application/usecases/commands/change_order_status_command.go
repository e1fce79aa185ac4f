package commands

import (
	"errors"
	"fmt"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	// ErrActionIsNotAllowed is returned when the actor's role may not request the action.
	ErrActionIsNotAllowed = errors.New("action is not allowed for this role")
)

// ChangeOrderStatusCommand applies a dashboard action to one order.
// Admins may send an order out, deliver or cancel it; pharmacy stores may pack it.
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	action  order.Action

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	action string,
	actor identity.Role,
) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	parsed, err := order.ParseAction(action)
	if err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	allowed := (actor == identity.Admin && parsed.IsAdminAction()) ||
		(actor == identity.Pharmacy && parsed.IsPharmacyAction())
	if !allowed {
		return ChangeOrderStatusCommand{}, fmt.Errorf("%w: %s cannot %s an order", ErrActionIsNotAllowed, actor, parsed)
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		action:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Action() order.Action {
	return c.action
}
