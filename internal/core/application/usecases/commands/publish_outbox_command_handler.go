package commands

import (
	"context"
	"errors"
	"time"

	"pharmacygo/internal/core/ports"
)

// PublishOutboxCommandHandler publishes pending outbox messages oldest first
// and marks each one processed. Delivery is at-least-once: a crash between
// publish and commit republishes the batch.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	bus        ports.MessageBus
}

func NewPublishOutboxCommandHandler(uowFactory OutboxUoWFactory, bus ports.MessageBus) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{uowFactory: uowFactory, bus: bus}
}

// Handle returns the number of published messages. When publishing fails
// midway, the messages already published are still marked and committed.
func (h *PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()

	messages, err := repo.GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := 0
	var publishErr error
	for _, m := range messages {
		if publishErr = h.bus.Publish(ctx, m); publishErr != nil {
			break
		}
		m.MarkProcessed(time.Now().UTC())
		if err = repo.Update(ctx, m); err != nil {
			return 0, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errors.Join(publishErr, err)
	}

	return published, publishErr
}
