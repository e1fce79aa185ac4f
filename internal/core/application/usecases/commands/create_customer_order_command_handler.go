package commands

import (
	"context"
	"errors"
	"time"

	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/pkg/errs"
)

// maxCodeAttempts bounds how many random codes are tried before giving up.
const maxCodeAttempts = 5

var ErrOrderCodeIsTaken = errs.NewValueIsInvalidErrorWithCause("code", errors.New("order code is already taken"))

type CreateCustomerOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	newCode    func() string
}

func NewCreateCustomerOrderCommandHandler(uowFactory OrderUoWFactory) CreateCustomerOrderCommandHandler {
	return CreateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		newCode:    order.NewCode,
	}
}

// Handle stores a Pending order for the customer's account and returns its code.
// An unknown pharmacy is reported as errs.ErrObjectNotFound.
func (h *CreateCustomerOrderCommandHandler) Handle(ctx context.Context, cmd CreateCustomerOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.PharmacyRepository().Get(ctx, cmd.PharmacyID())
	if err != nil {
		return "", err
	}

	customer, err := uow.AccountRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return "", err
	}

	orderRepo := uow.OrderRepository()

	code, err := h.pickCode(ctx, orderRepo.CodeExists, cmd.Code())
	if err != nil {
		return "", err
	}

	customerID := customer.ID()
	o, err := order.NewOrder(
		cmd.OrderID(),
		code,
		customer.DisplayName(),
		&customerID,
		p.ID(),
		cmd.Items(),
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return o.Code(), nil
}

func (h *CreateCustomerOrderCommandHandler) pickCode(
	ctx context.Context,
	exists func(context.Context, string) (bool, error),
	requested string,
) (string, error) {
	if requested != "" {
		taken, err := exists(ctx, requested)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrOrderCodeIsTaken
		}
		return requested, nil
	}

	for range maxCodeAttempts {
		code := h.newCode()
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrOrderCodeIsTaken
}
