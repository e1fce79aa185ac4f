package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

// Type drives the colour of a notification on the dashboard.
type Type string

const (
	Info    Type = "info"
	Success Type = "success"
	Warning Type = "warning"
)

func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return Info, nil
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case Info, Success, Warning:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%q is not a valid type", string(t)))
}

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is a message shown to every account of one role.
type Notification struct {
	id        kernel.UUID
	audience  identity.Role
	message   string
	kind      Type
	createdAt time.Time

	isConstructed bool
}

func NewNotification(
	id kernel.UUID,
	audience identity.Role,
	message string,
	kind Type,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		createdAt:     createdAt,
		isConstructed: true,
	}

	message = strings.TrimSpace(message)
	var messageErr error
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}

	if err := errors.Join(id.Validate(), audience.Validate(), messageErr, kind.Validate()); err != nil {
		return nil, err
	}

	n.id = id
	n.audience = audience
	n.message = message
	n.kind = kind
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) Audience() identity.Role {
	return n.audience
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() Type {
	return n.kind
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}
