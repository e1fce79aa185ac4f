// Package events turns published domain events into notifications.
package events

import (
	"context"
	"fmt"
	"strings"

	"pharmacygo/internal/core/application/usecases/commands"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/notification"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/pharmacy"
	"pharmacygo/internal/pkg/errs"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// NotificationRecorder is satisfied by *commands.RecordNotificationCommandHandler.
type NotificationRecorder interface {
	Handle(ctx context.Context, cmd commands.RecordNotificationCommand) error
}

// Router reads an outbox envelope and records the notification it implies.
// Events nobody is notified about are acknowledged without side effects.
type Router struct {
	recorder NotificationRecorder
	logger   *zap.Logger
}

func NewRouter(recorder NotificationRecorder, logger *zap.Logger) *Router {
	return &Router{
		recorder: recorder,
		logger:   logger.With(zap.String("component", "event_router")),
	}
}

// Handle returns an error only when the event should be redelivered.
// Malformed bodies are logged and dropped.
func (r *Router) Handle(ctx context.Context, body []byte) error {
	if !gjson.ValidBytes(body) {
		r.logger.Warn("dropping malformed event", zap.ByteString("body", body))
		return nil
	}

	envelope := gjson.ParseBytes(body)
	name := envelope.Get("name").String()
	rawID := envelope.Get("id").String()

	cmd, ok, err := r.notificationFor(name, rawID, envelope.Get("payload"))
	if err != nil {
		r.logger.Warn("dropping invalid event",
			zap.String("event", name),
			zap.String("id", rawID),
			zap.Error(err))
		return nil
	}
	if !ok {
		r.logger.Debug("event ignored", zap.String("event", name))
		return nil
	}

	if err = r.recorder.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("record notification for %s: %w", name, err)
	}
	return nil
}

// notificationFor reuses the event id as the notification id so that a
// redelivered event records its notification only once.
func (r *Router) notificationFor(
	name, rawID string,
	payload gjson.Result,
) (commands.RecordNotificationCommand, bool, error) {
	var build func(kernel.UUID, gjson.Result) (commands.RecordNotificationCommand, error)
	switch name {
	case order.StatusChangedEventName:
		build = orderNotification
	case pharmacy.ApplicationReviewedEventName:
		build = applicationNotification
	default:
		// Task status changes and unknown events notify nobody.
		return commands.RecordNotificationCommand{}, false, nil
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return commands.RecordNotificationCommand{}, false, err
	}
	cmd, err := build(id, payload)
	return cmd, err == nil, err
}

func orderNotification(id kernel.UUID, payload gjson.Result) (commands.RecordNotificationCommand, error) {
	code := payload.Get("code").String()
	if code == "" {
		return commands.RecordNotificationCommand{}, errs.NewValueIsRequiredError("code")
	}

	status, err := order.ParseStatus(payload.Get("status").String())
	if err != nil {
		return commands.RecordNotificationCommand{}, err
	}

	kind := notification.Info
	switch status {
	case order.Delivered:
		kind = notification.Success
	case order.Cancelled:
		kind = notification.Warning
	case order.Unknown, order.Pending, order.Packed, order.Out:
	}

	return commands.NewRecordNotificationCommand(
		id,
		identity.Customer,
		fmt.Sprintf("Order %s is now %s", code, strings.ToLower(status.String())),
		kind,
	)
}

func applicationNotification(id kernel.UUID, payload gjson.Result) (commands.RecordNotificationCommand, error) {
	name := payload.Get("pharmacy_name").String()
	if name == "" {
		return commands.RecordNotificationCommand{}, errs.NewValueIsRequiredError("pharmacy_name")
	}

	status, err := pharmacy.ParseApplicationStatus(payload.Get("status").String())
	if err != nil {
		return commands.RecordNotificationCommand{}, err
	}

	kind := notification.Info
	switch status {
	case pharmacy.Approved:
		kind = notification.Success
	case pharmacy.Rejected:
		kind = notification.Warning
	case pharmacy.UnknownApplicationStatus, pharmacy.Pending, pharmacy.Review:
	}

	return commands.NewRecordNotificationCommand(
		id,
		identity.Pharmacy,
		fmt.Sprintf("Application for %s was %s", name, strings.ToLower(status.String())),
		kind,
	)
}
