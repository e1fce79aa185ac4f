package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

const TaskStatusChangedEventName = "delivery.task_status_changed"

// TaskStatusChanged is raised when a distributor moves a task.
type TaskStatusChanged struct {
	TaskID string    `json:"task_id"`
	Code   string    `json:"code"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

func (e TaskStatusChanged) EventName() string {
	return TaskStatusChangedEventName
}

func (e TaskStatusChanged) OccurredAt() time.Time {
	return e.At
}

// Task is a distributor-facing unit of work: pick up at a pharmacy, drop off at an address.
type Task struct {
	kernel.EventRecorder

	id         kernel.UUID
	code       string
	pharmacyID kernel.UUID
	address    string
	eta        string
	status     TaskStatus
	createdAt  time.Time
	version    int

	isConstructed bool
}

func NewTask(
	id kernel.UUID,
	code string,
	pharmacyID kernel.UUID,
	address, eta string,
	createdAt time.Time,
) (*Task, error) {
	t := &Task{
		eta:           strings.TrimSpace(eta),
		status:        Awaiting,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setCode(code),
		t.setPharmacyID(pharmacyID),
		t.setAddress(address),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func RestoreTask(
	id kernel.UUID,
	code string,
	pharmacyID kernel.UUID,
	address, eta string,
	status TaskStatus,
	createdAt time.Time,
	version int,
) (*Task, error) {
	t, err := NewTask(id, code, pharmacyID, address, eta, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}
	t.status = status
	t.version = version
	return t, nil
}

func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID         { return t.id }
func (t *Task) Code() string            { return t.code }
func (t *Task) PharmacyID() kernel.UUID { return t.pharmacyID }
func (t *Task) Address() string         { return t.address }
func (t *Task) ETA() string             { return t.eta }
func (t *Task) Status() TaskStatus      { return t.status }
func (t *Task) CreatedAt() time.Time    { return t.createdAt }
func (t *Task) Version() int            { return t.version }

// Apply moves the task according to a distributor action. A delivered task cannot move.
func (t *Task) Apply(action TaskAction, at time.Time) error {
	target, ok := action.Target()
	if !ok {
		_, err := ParseTaskAction(string(action))
		return err
	}

	if t.status.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"task status",
			fmt.Errorf("%s is final and cannot move to %s", t.status, target),
		)
	}

	t.status = target
	t.Record(TaskStatusChanged{
		TaskID: t.id.String(),
		Code:   t.code,
		Status: target.Code(),
		At:     at,
	})
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	t.code = code
	return nil
}

func (t *Task) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pharmacy", err)
	}
	t.pharmacyID = id
	return nil
}

func (t *Task) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	t.address = address
	return nil
}
