// Package inventoryrepo persists pharmacy stock lines.
package inventoryrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type StockItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sku           string    `gorm:"size:40;not null;index"`
	Name          string    `gorm:"size:120;not null"`
	Quantity      int       `gorm:"not null;check:quantity >= 0"`
	Status        string    `gorm:"size:40;not null"`
	ExpiresInDays int       `gorm:"not null;default:30"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (StockItemDTO) TableName() string {
	return "stock_items"
}

func fromDomain(s *inventory.StockItem) StockItemDTO {
	return StockItemDTO{
		ID:            s.ID().Bytes(),
		Sku:           s.Sku(),
		Name:          s.Name(),
		Quantity:      s.Quantity(),
		Status:        s.Status(),
		ExpiresInDays: s.ExpiresInDays(),
	}
}

func toDomain(dto StockItemDTO) (*inventory.StockItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return inventory.RestoreStockItem(id, dto.Sku, dto.Name, dto.Quantity, dto.Status, dto.ExpiresInDays)
}
