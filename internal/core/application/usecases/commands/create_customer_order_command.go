package commands

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/pkg/guard"
)

var ErrCreateCustomerOrderCommandIsNotConstructed = errors.New(
	"CreateCustomerOrderCommand must be created via NewCreateCustomerOrderCommand constructor",
)

// CreateCustomerOrderCommand places a new delivery request from the customer dashboard.
//
// Example:
//
//	cmd, err := NewCreateCustomerOrderCommand(kernel.NewUUID(), customerID, pharmacyID, "Amoxil 500mg", "")
//	if err != nil {
//	    return err
//	}
//	code, err := handler.Handle(ctx, cmd) // "#PG-7QX2"
type CreateCustomerOrderCommand struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	pharmacyID kernel.UUID
	items      []string
	code       string

	guard guard.ConstructorGuard
}

// NewCreateCustomerOrderCommand parses the comma separated items. An empty
// code is generated by the handler.
func NewCreateCustomerOrderCommand(
	orderID, customerID, pharmacyID kernel.UUID,
	items, code string,
) (CreateCustomerOrderCommand, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var codeErr error
	if code != "" {
		codeErr = order.ValidateCode(code)
	}

	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		pharmacyID.Validate(),
		codeErr,
	); err != nil {
		return CreateCustomerOrderCommand{}, err
	}

	return CreateCustomerOrderCommand{
		orderID:    orderID,
		customerID: customerID,
		pharmacyID: pharmacyID,
		items:      order.ParseItems(items),
		code:       code,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerOrderCommandIsNotConstructed)
}

func (c CreateCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateCustomerOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerOrderCommand) PharmacyID() kernel.UUID {
	return c.pharmacyID
}

func (c CreateCustomerOrderCommand) Items() []string {
	return append([]string(nil), c.items...)
}

// Code is empty when the caller did not choose one.
func (c CreateCustomerOrderCommand) Code() string {
	return c.code
}
