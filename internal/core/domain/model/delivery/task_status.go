package delivery

import (
	"fmt"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

// TaskStatus is the distributor-side state of a delivery task.
//
//	Awaiting <──> InProgress ──> Done
//
// Done is final. A rejected task goes back to Awaiting.
type TaskStatus int

const (
	UnknownTaskStatus TaskStatus = iota
	Awaiting
	InProgress
	Done
)

func taskStatusCodes() map[TaskStatus]string {
	return map[TaskStatus]string{
		Awaiting:   "awaiting",
		InProgress: "in_progress",
		Done:       "done",
	}
}

func taskStatusLabels() map[TaskStatus]string {
	return map[TaskStatus]string{
		UnknownTaskStatus: "Unknown",
		Awaiting:          "Awaiting",
		InProgress:        "In progress",
		Done:              "Delivered",
	}
}

// ParseTaskStatus accepts codes ("in_progress") and labels ("In progress").
func ParseTaskStatus(raw string) (TaskStatus, error) {
	raw = strings.TrimSpace(raw)
	for s, code := range taskStatusCodes() {
		if strings.EqualFold(raw, code) || strings.EqualFold(raw, taskStatusLabels()[s]) {
			return s, nil
		}
	}
	return UnknownTaskStatus, errs.NewValueIsInvalidErrorWithCause(
		"task status", fmt.Errorf("%q is not a valid task status", raw))
}

func (s TaskStatus) Validate() error {
	if _, ok := taskStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

func (s TaskStatus) Code() string {
	return taskStatusCodes()[s]
}

func (s TaskStatus) String() string {
	if l, ok := taskStatusLabels()[s]; ok {
		return l
	}
	return "Unknown"
}

func (s TaskStatus) IsFinal() bool {
	return s == Done
}

// TaskAction is what a distributor can do with a task.
type TaskAction string

const (
	ActionAccept   TaskAction = "accept"
	ActionComplete TaskAction = "complete"
	ActionReject   TaskAction = "reject"
)

func taskActionTargets() map[TaskAction]TaskStatus {
	return map[TaskAction]TaskStatus{
		ActionAccept:   InProgress,
		ActionComplete: Done,
		ActionReject:   Awaiting,
	}
}

func ParseTaskAction(raw string) (TaskAction, error) {
	a := TaskAction(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := taskActionTargets()[a]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid task action", raw))
	}
	return a, nil
}

// Target is the status an action leads to.
func (a TaskAction) Target() (TaskStatus, bool) {
	s, ok := taskActionTargets()[a]
	return s, ok
}
