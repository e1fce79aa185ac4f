package commands

import (
	"context"
	"time"

	"pharmacygo/internal/core/domain/model/notification"
)

type RecordNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewRecordNotificationCommandHandler(uowFactory NotificationUoWFactory) RecordNotificationCommandHandler {
	return RecordNotificationCommandHandler{uowFactory: uowFactory}
}

func (h *RecordNotificationCommandHandler) Handle(ctx context.Context, cmd RecordNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	n, err := notification.NewNotification(
		cmd.NotificationID(), cmd.Audience(), cmd.Message(), cmd.Kind(), time.Now().UTC())
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

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
