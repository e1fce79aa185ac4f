package commands

import (
	"context"
	"time"

	"pharmacygo/internal/core/domain/model/pharmacy"
)

type SubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewSubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{uowFactory: uowFactory}
}

func (h *SubmitApplicationCommandHandler) Handle(ctx context.Context, cmd SubmitApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	application, err := pharmacy.NewApplication(
		cmd.ApplicationID(), cmd.PharmacyName(), cmd.Documents(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ApplicationRepository().Add(ctx, application); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
