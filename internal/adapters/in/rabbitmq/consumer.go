// Package rabbitmq consumes domain events from the broker with bounded
// retries and a dead-letter queue.
package rabbitmq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	queueType        = "quorum"
	retryCountHeader = "x-retry-count"
)

// DefaultQueue is where notification-worthy events are collected.
const DefaultQueue = "pharmacygo.notifications"

// Handler processes one message body. A non-nil error schedules a retry.
type Handler interface {
	Handle(ctx context.Context, body []byte) error
}

type Config struct {
	Exchange    string
	Queue       string
	RoutingKeys []string
	MaxRetries  int
	// MessageTTL is how long, in milliseconds, a failed message waits in
	// the retry queue before it is redelivered.
	MessageTTL int
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Consumer struct {
	ch         channel
	deliveries <-chan amqp.Delivery
	handler    Handler
	config     Config
	logger     *zap.Logger
}

// NewConsumer declares the work, retry and dead-letter queues, binds the
// work queue to the exchange and starts consuming.
func NewConsumer(ch *amqp.Channel, config Config, handler Handler, logger *zap.Logger) (*Consumer, error) {
	if len(config.RoutingKeys) == 0 {
		return nil, errors.New("at least one routing key is required")
	}

	if _, err := ch.QueueDeclare(config.Queue, true, false, false, false, amqp.Table{
		"x-queue-type": queueType,
	}); err != nil {
		return nil, err
	}

	if _, err := ch.QueueDeclare(config.Queue+"-dlq", true, false, false, false, amqp.Table{
		"x-queue-type": queueType,
	}); err != nil {
		return nil, err
	}

	if _, err := ch.QueueDeclare(config.Queue+"-retry", true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-queue-type":              queueType,
		"x-message-ttl":             config.MessageTTL,
		"x-dead-letter-routing-key": config.Queue,
	}); err != nil {
		return nil, err
	}

	for _, key := range config.RoutingKeys {
		if err := ch.QueueBind(config.Queue, key, config.Exchange, false, nil); err != nil {
			return nil, err
		}
	}

	deliveries, err := ch.Consume(config.Queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return newConsumer(ch, deliveries, config, handler, logger), nil
}

func newConsumer(
	ch channel,
	deliveries <-chan amqp.Delivery,
	config Config,
	handler Handler,
	logger *zap.Logger,
) *Consumer {
	return &Consumer{
		ch:         ch,
		deliveries: deliveries,
		handler:    handler,
		config:     config,
		logger:     logger.With(zap.String("component", "event_consumer"), zap.String("queue", config.Queue)),
	}
}

// Run blocks until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("waiting for messages")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopped")
			return
		case msg, ok := <-c.deliveries:
			if !ok {
				c.logger.Warn("delivery channel closed")
				return
			}
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) process(ctx context.Context, msg amqp.Delivery) {
	err := c.handler.Handle(ctx, msg.Body)
	if err == nil {
		_ = msg.Ack(false)
		return
	}

	retries := retryCount(msg.Headers)
	c.logger.Warn("message handling failed",
		zap.String("routing_key", msg.RoutingKey),
		zap.Int("retries", retries),
		zap.Error(err))

	if retries < c.config.MaxRetries {
		c.republish(ctx, msg, c.config.Queue+"-retry", amqp.Table{retryCountHeader: int32(retries + 1)})
	} else {
		c.republish(ctx, msg, c.config.Queue+"-dlq", msg.Headers)
	}
	_ = msg.Ack(false)
}

func (c *Consumer) republish(ctx context.Context, msg amqp.Delivery, queue string, headers amqp.Table) {
	err := c.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  msg.ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.MessageId,
		Type:         msg.Type,
		Headers:      headers,
		Body:         msg.Body,
	})
	if err != nil {
		c.logger.Error("failed to republish message", zap.String("target", queue), zap.Error(err))
	}
}

func retryCount(headers amqp.Table) int {
	switch v := headers[retryCountHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
