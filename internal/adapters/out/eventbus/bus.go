// Package eventbus delivers outbox messages to an in-process handler. It is
// used when no message broker is configured.
package eventbus

import (
	"context"
	"fmt"

	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/core/ports"
)

var _ ports.MessageBus = (*Bus)(nil)

// Handler receives the encoded envelope, the same body a broker consumer sees.
type Handler interface {
	Handle(ctx context.Context, body []byte) error
}

type Bus struct {
	handler Handler
}

func New(handler Handler) *Bus {
	return &Bus{handler: handler}
}

func (b *Bus) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	body, err := message.Body()
	if err != nil {
		return fmt.Errorf("encode %s: %w", message.Name(), err)
	}
	return b.handler.Handle(ctx, body)
}
