package order

import (
	"fmt"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

// Action is a named status change requested from a dashboard.
type Action string

const (
	ActionPack    Action = "pack"
	ActionOut     Action = "out"
	ActionDeliver Action = "deliver"
	ActionCancel  Action = "cancel"
)

// Outcome is what an action does to an order: target status plus the
// progress and ETA texts shown to the customer.
type Outcome struct {
	Status   Status
	Progress string
	ETA      string
}

func outcomes() map[Action]Outcome {
	return map[Action]Outcome{
		ActionPack:    {Status: Packed, Progress: "Packed", ETA: "Awaiting courier"},
		ActionOut:     {Status: Out, Progress: "Out for delivery", ETA: "15 min"},
		ActionDeliver: {Status: Delivered, Progress: "Delivered", ETA: "Completed"},
		ActionCancel:  {Status: Cancelled, Progress: "Cancelled", ETA: "—"},
	}
}

func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := outcomes()[a]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid order action", raw))
	}
	return a, nil
}

func (a Action) Outcome() (Outcome, bool) {
	o, ok := outcomes()[a]
	return o, ok
}

// IsAdminAction reports whether the action belongs to the admin console.
func (a Action) IsAdminAction() bool {
	return a == ActionOut || a == ActionDeliver || a == ActionCancel
}

// IsPharmacyAction reports whether a pharmacy store may request it.
func (a Action) IsPharmacyAction() bool {
	return a == ActionPack
}
