package commands

import (
	"context"
	"time"

	"pharmacygo/internal/core/domain/model/order"
)

// ChangeOrderStatusResult is what the caller needs to confirm the change.
type ChangeOrderStatusResult struct {
	Code     string
	Status   order.Status
	Progress string
	ETA      string
}

// ChangeOrderStatusCommandHandler loads the order, applies the action and
// saves it. The resulting StatusChanged event reaches the outbox on commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = o.Apply(cmd.Action(), time.Now().UTC()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{
		Code:     o.Code(),
		Status:   o.Status(),
		Progress: o.Progress(),
		ETA:      o.ETA(),
	}, nil
}
