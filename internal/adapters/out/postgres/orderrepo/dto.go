// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are a text[] column; status is stored by code so read queries can
// filter on it directly.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code         string         `gorm:"size:20;not null;uniqueIndex:idx_orders_code"`
	CustomerName string         `gorm:"size:120;not null"`
	CustomerID   *uuid.UUID     `gorm:"type:uuid;index"`
	PharmacyID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status       string         `gorm:"size:20;not null;index"`
	Items        pq.StringArray `gorm:"type:text[];not null"`
	Progress     string         `gorm:"size:80;not null"`
	ETA          string         `gorm:"column:eta;size:40;not null"`
	CreatedAt    time.Time      `gorm:"not null;index"`
	UpdatedAt    time.Time      `gorm:"not null"`
	Version      int            `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := o.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		Code:         o.Code(),
		CustomerName: o.CustomerName(),
		CustomerID:   customerID,
		PharmacyID:   o.PharmacyID().Bytes(),
		Status:       o.Status().Code(),
		Items:        pq.StringArray(o.Items()),
		Progress:     o.Progress(),
		ETA:          o.ETA(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		Version:      o.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		dto.CustomerName,
		customerID,
		pharmacyID,
		status,
		dto.Items,
		dto.Progress,
		dto.ETA,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
