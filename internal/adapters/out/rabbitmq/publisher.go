package rabbitmq

import (
	"context"
	"fmt"

	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ ports.MessageBus = (*Publisher)(nil)

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher sends each message as a persistent JSON envelope whose routing
// key is the event name.
type Publisher struct {
	ch       amqpChannel
	exchange string
}

func NewPublisher(ch amqpChannel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	body, err := message.Body()
	if err != nil {
		return fmt.Errorf("encode %s: %w", message.Name(), err)
	}

	return p.ch.PublishWithContext(
		ctx,
		p.exchange,
		message.Name(),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    message.ID().String(),
			Type:         message.Name(),
			Timestamp:    message.OccurredAt(),
			Body:         body,
		},
	)
}
