package commands

import (
	"errors"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/guard"
)

var ErrChangeDeliveryTaskStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryTaskStatusCommand must be created via NewChangeDeliveryTaskStatusCommand constructor",
)

// ChangeDeliveryTaskStatusCommand accepts, completes or rejects a delivery task.
type ChangeDeliveryTaskStatusCommand struct {
	taskID kernel.UUID
	action delivery.TaskAction

	guard guard.ConstructorGuard
}

func NewChangeDeliveryTaskStatusCommand(taskID kernel.UUID, action string) (ChangeDeliveryTaskStatusCommand, error) {
	if err := taskID.Validate(); err != nil {
		return ChangeDeliveryTaskStatusCommand{}, err
	}

	parsed, err := delivery.ParseTaskAction(action)
	if err != nil {
		return ChangeDeliveryTaskStatusCommand{}, err
	}

	return ChangeDeliveryTaskStatusCommand{
		taskID: taskID,
		action: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDeliveryTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryTaskStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c ChangeDeliveryTaskStatusCommand) Action() delivery.TaskAction {
	return c.action
}
