package inventory

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

const (
	DefaultExpiresInDays = 30
	ExpiringThreshold    = 7

	StatusHealthy  = "Healthy"
	StatusWatch    = "Watch"
	StatusExpiring = "Expiring"
	StatusExpired  = "Expired"
)

var ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem constructor")

// StockItem is a shelf line tracked by SKU. Status is free text set by staff
// and overridden by ageing once the item nears expiry.
type StockItem struct {
	id            kernel.UUID
	sku           string
	name          string
	quantity      int
	status        string
	expiresInDays int

	isConstructed bool
}

func NewStockItem(id kernel.UUID, sku, name string, quantity int, status string) (*StockItem, error) {
	return RestoreStockItem(id, sku, name, quantity, status, DefaultExpiresInDays)
}

func RestoreStockItem(
	id kernel.UUID,
	sku, name string,
	quantity int,
	status string,
	expiresInDays int,
) (*StockItem, error) {
	s := &StockItem{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setSku(sku),
		s.setName(name),
		s.setQuantity(quantity),
		s.setStatus(status),
		s.setExpiresInDays(expiresInDays),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *StockItem) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockItemIsNotConstructed
	}
	return nil
}

func (s *StockItem) ID() kernel.UUID {
	return s.id
}

func (s *StockItem) Sku() string {
	return s.sku
}

func (s *StockItem) Name() string {
	return s.name
}

func (s *StockItem) Quantity() int {
	return s.quantity
}

func (s *StockItem) Status() string {
	return s.status
}

func (s *StockItem) ExpiresInDays() int {
	return s.expiresInDays
}

// Age moves the item one day closer to expiry. It reports whether anything changed.
func (s *StockItem) Age() bool {
	if s.expiresInDays == 0 && s.status == StatusExpired {
		return false
	}

	if s.expiresInDays > 0 {
		s.expiresInDays--
	}

	switch {
	case s.expiresInDays == 0:
		s.status = StatusExpired
	case s.expiresInDays <= ExpiringThreshold:
		s.status = StatusExpiring
	}
	return true
}

func (s *StockItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StockItem) setSku(sku string) error {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	s.sku = sku
	return nil
}

func (s *StockItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *StockItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	s.quantity = quantity
	return nil
}

func (s *StockItem) setStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		status = StatusHealthy
	}
	s.status = status
	return nil
}

func (s *StockItem) setExpiresInDays(days int) error {
	if days < 0 {
		return errs.NewValueIsOutOfRangeError("expires in days", days, 0, "unbounded")
	}
	s.expiresInDays = days
	return nil
}
