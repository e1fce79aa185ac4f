package commands

import (
	"context"
	"time"

	"pharmacygo/internal/core/domain/model/delivery"
)

// ChangeDeliveryTaskStatusResult carries the task code and its new status.
type ChangeDeliveryTaskStatusResult struct {
	Code   string
	Status delivery.TaskStatus
}

type ChangeDeliveryTaskStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewChangeDeliveryTaskStatusCommandHandler(uowFactory DeliveryUoWFactory) ChangeDeliveryTaskStatusCommandHandler {
	return ChangeDeliveryTaskStatusCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeDeliveryTaskStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDeliveryTaskStatusCommand,
) (ChangeDeliveryTaskStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeDeliveryTaskStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeDeliveryTaskStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TaskRepository()

	task, err := repo.Get(ctx, cmd.TaskID())
	if err != nil {
		return ChangeDeliveryTaskStatusResult{}, err
	}

	if err = task.Apply(cmd.Action(), time.Now().UTC()); err != nil {
		return ChangeDeliveryTaskStatusResult{}, err
	}

	if err = repo.Update(ctx, task); err != nil {
		return ChangeDeliveryTaskStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeDeliveryTaskStatusResult{}, err
	}

	return ChangeDeliveryTaskStatusResult{Code: task.Code(), Status: task.Status()}, nil
}
