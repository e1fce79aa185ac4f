package commands

import (
	"context"

	"pharmacygo/internal/core/domain/model/delivery"
)

// UpdateStatusEntryCommandHandler returns the order code of the updated row.
type UpdateStatusEntryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewUpdateStatusEntryCommandHandler(uowFactory DeliveryUoWFactory) UpdateStatusEntryCommandHandler {
	return UpdateStatusEntryCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateStatusEntryCommandHandler) Handle(ctx context.Context, cmd UpdateStatusEntryCommand) (string, error) {
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

	repo := uow.StatusBoardRepository()

	entry, err := repo.Get(ctx, cmd.EntryID())
	if err != nil {
		return "", err
	}

	if cmd.Status() == delivery.DeliveredText {
		entry.Complete()
	} else if err = entry.UpdateStatus(cmd.Status()); err != nil {
		return "", err
	}

	if err = repo.Update(ctx, entry); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return entry.OrderCode(), nil
}
