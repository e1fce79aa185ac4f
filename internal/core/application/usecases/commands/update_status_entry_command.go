package commands

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

var ErrUpdateStatusEntryCommandIsNotConstructed = errors.New(
	"UpdateStatusEntryCommand must be created via NewUpdateStatusEntryCommand constructor",
)

// UpdateStatusEntryCommand rewrites a status board row. Use
// NewCompleteStatusEntryCommand for the one-click "Delivered" button.
type UpdateStatusEntryCommand struct {
	entryID kernel.UUID
	status  string

	guard guard.ConstructorGuard
}

func NewUpdateStatusEntryCommand(entryID kernel.UUID, status string) (UpdateStatusEntryCommand, error) {
	status = strings.TrimSpace(status)

	var statusErr error
	if status == "" {
		statusErr = errs.NewValueIsRequiredError("status")
	}

	if err := errors.Join(entryID.Validate(), statusErr); err != nil {
		return UpdateStatusEntryCommand{}, err
	}

	return UpdateStatusEntryCommand{
		entryID: entryID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func NewCompleteStatusEntryCommand(entryID kernel.UUID) (UpdateStatusEntryCommand, error) {
	return NewUpdateStatusEntryCommand(entryID, delivery.DeliveredText)
}

func (c UpdateStatusEntryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusEntryCommandIsNotConstructed)
}

func (c UpdateStatusEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c UpdateStatusEntryCommand) Status() string {
	return c.status
}
