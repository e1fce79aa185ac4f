package commands

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/notification"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

var ErrRecordNotificationCommandIsNotConstructed = errors.New(
	"RecordNotificationCommand must be created via NewRecordNotificationCommand constructor",
)

// RecordNotificationCommand posts a message to every account of one role.
type RecordNotificationCommand struct {
	notificationID kernel.UUID
	audience       identity.Role
	message        string
	kind           notification.Type

	guard guard.ConstructorGuard
}

func NewRecordNotificationCommand(
	notificationID kernel.UUID,
	audience identity.Role,
	message string,
	kind notification.Type,
) (RecordNotificationCommand, error) {
	message = strings.TrimSpace(message)

	var messageErr error
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}

	if err := errors.Join(
		notificationID.Validate(),
		audience.Validate(),
		kind.Validate(),
		messageErr,
	); err != nil {
		return RecordNotificationCommand{}, err
	}

	return RecordNotificationCommand{
		notificationID: notificationID,
		audience:       audience,
		message:        message,
		kind:           kind,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RecordNotificationCommand) Validate() error {
	return c.guard.Validate(ErrRecordNotificationCommandIsNotConstructed)
}

func (c RecordNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c RecordNotificationCommand) Audience() identity.Role {
	return c.audience
}

func (c RecordNotificationCommand) Message() string {
	return c.message
}

func (c RecordNotificationCommand) Kind() notification.Type {
	return c.kind
}
