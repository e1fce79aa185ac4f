package order

import (
	"fmt"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Packed ──> Out ──> Delivered
//	   │           │        │
//	   └───────────┴────────┴────> Cancelled
//
// A status only moves forward. Delivered and Cancelled are final, and any
// non-final status may jump straight to either of them (admin override).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly requested order.
	Pending

	// Packed means the pharmacy has prepared the order and it awaits a courier.
	Packed

	// Out means a courier is on the way to the customer.
	Out

	// Delivered is final.
	Delivered

	// Cancelled is final.
	Cancelled
)

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no persisted code
	return map[Status]string{
		Pending:   "pending",
		Packed:    "packed",
		Out:       "out",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Packed:    "Packed",
		Out:       "Out for delivery",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus accepts either the persisted code ("out") or the display label
// ("Out for delivery"), case-insensitively.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for s, code := range getStatusCodes() {
		if strings.EqualFold(raw, code) || strings.EqualFold(raw, getStatusLabels()[s]) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", raw))
}

// Validate checks if the Status value is one of the known states.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Code returns the persisted representation, empty for invalid values.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

// String returns the display label. It is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusLabels()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// AwaitsPacking reports whether the order still sits with the pharmacy.
func (s Status) AwaitsPacking() bool {
	return s == Pending || s == Packed
}

// MoveTo validates a transition to the target status.
//
// Rules:
//   - the current status must be valid and not final
//   - the target must be valid
//   - Pending, Packed and Out can only be reached from an earlier or equal status
//   - Delivered and Cancelled can be reached from any non-final status
func (s Status) MoveTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s.IsFinal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is final and cannot move to %s", s, target),
		)
	}

	if !target.IsFinal() && target < s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot move back to %s", s, target),
		)
	}

	return target, nil
}
