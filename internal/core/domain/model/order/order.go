package order

import (
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

const (
	DefaultItems    = "Custom selection"
	DefaultProgress = "Requested"
	DefaultETA      = "TBD"

	StatusChangedEventName = "order.status_changed"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// StatusChanged is raised every time an order moves to a new status.
type StatusChanged struct {
	OrderID      string    `json:"order_id"`
	Code         string    `json:"code"`
	CustomerID   string    `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name"`
	PharmacyID   string    `json:"pharmacy_id"`
	Status       string    `json:"status"`
	Progress     string    `json:"progress"`
	At           time.Time `json:"at"`
}

func (e StatusChanged) EventName() string {
	return StatusChangedEventName
}

func (e StatusChanged) OccurredAt() time.Time {
	return e.At
}

// Order is a customer's medicine request placed with one pharmacy. It is the
// aggregate root for the order lifecycle.
//
// Invariants:
//   - code is non-empty and unique across orders
//   - items hold at least one entry
//   - status follows Status.MoveTo
//   - version grows by one on every persisted change
type Order struct {
	kernel.EventRecorder

	id           kernel.UUID
	code         string
	customerName string
	customerID   *kernel.UUID
	pharmacyID   kernel.UUID
	status       Status
	items        []string
	progress     string
	eta          string
	createdAt    time.Time
	updatedAt    time.Time
	version      int

	isConstructed bool
}

// NewOrder creates a Pending order with the "Requested" progress text.
//
// Empty items fall back to DefaultItems. customerID is optional; guest and
// seeded orders only carry a customer name.
func NewOrder(
	id kernel.UUID,
	code, customerName string,
	customerID *kernel.UUID,
	pharmacyID kernel.UUID,
	items []string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		progress:      DefaultProgress,
		eta:           DefaultETA,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setCustomerID(customerID),
		o.setPharmacyID(pharmacyID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(
	id kernel.UUID,
	code, customerName string,
	customerID *kernel.UUID,
	pharmacyID kernel.UUID,
	status Status,
	items []string,
	progress, eta string,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, code, customerName, customerID, pharmacyID, items, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	o.status = status
	o.progress = progress
	o.eta = eta
	o.updatedAt = updatedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Code() string {
	return o.code
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerID returns nil for orders that are not linked to an account.
func (o *Order) CustomerID() *kernel.UUID {
	if o.customerID == nil {
		return nil
	}
	id := *o.customerID
	return &id
}

func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the ordered items.
func (o *Order) Items() []string {
	out := make([]string, len(o.items))
	copy(out, o.items)
	return out
}

// ItemsText joins the items for display.
func (o *Order) ItemsText() string {
	return strings.Join(o.items, ", ")
}

func (o *Order) Progress() string {
	return o.progress
}

func (o *Order) ETA() string {
	return o.eta
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the optimistic-lock counter of the stored row.
func (o *Order) Version() int {
	return o.version
}

// Apply performs a dashboard action, updating status, progress and ETA and
// raising StatusChanged.
func (o *Order) Apply(action Action, at time.Time) error {
	outcome, ok := action.Outcome()
	if !ok {
		_, err := ParseAction(string(action))
		return err
	}

	next, err := o.status.MoveTo(outcome.Status)
	if err != nil {
		return err
	}

	o.status = next
	o.progress = outcome.Progress
	o.eta = outcome.ETA
	o.updatedAt = at

	event := StatusChanged{
		OrderID:      o.id.String(),
		Code:         o.code,
		CustomerName: o.customerName,
		PharmacyID:   o.pharmacyID.String(),
		Status:       next.Code(),
		Progress:     o.progress,
		At:           at,
	}
	if o.customerID != nil {
		event.CustomerID = o.customerID.String()
	}
	o.Record(event)

	return nil
}

// ParseItems splits a comma or newline separated list, dropping blanks.
func ParseItems(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	items := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			items = append(items, f)
		}
	}
	return items
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := ValidateCode(code); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	cp := *id
	o.customerID = &cp
	return nil
}

func (o *Order) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pharmacy", err)
	}
	o.pharmacyID = id
	return nil
}

func (o *Order) setItems(items []string) error {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) == 0 {
		cleaned = []string{DefaultItems}
	}
	o.items = cleaned
	return nil
}
