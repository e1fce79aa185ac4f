// Package rabbitmq publishes outbox messages to a topic exchange.
package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange receives every domain event, routed by event name.
const DefaultExchange = "pharmacygo.events"

type Connection struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

// NewConnection dials the broker, opens a channel and declares the durable
// topic exchange.
func NewConnection(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &Connection{Conn: conn, Ch: ch}, nil
}

func (c *Connection) Close() error {
	return c.Conn.Close()
}
