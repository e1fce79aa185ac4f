package inventoryrepo

import (
	"context"

	"pharmacygo/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) Add(ctx context.Context, item *inventory.StockItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every mutable column, zero expiry included.
func (r *GormStockRepository) Update(ctx context.Context, item *inventory.StockItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&StockItemDTO{}).
		Where("id = ?", dto.ID).
		Select("sku", "name", "quantity", "status", "expires_in_days").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAll lists stock in SKU order.
func (r *GormStockRepository) GetAll(ctx context.Context) ([]*inventory.StockItem, error) {
	var dtos []StockItemDTO
	if err := r.db.WithContext(ctx).Order("sku").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*inventory.StockItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *GormStockRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&StockItemDTO{}).Count(&count).Error
	return count, err
}
