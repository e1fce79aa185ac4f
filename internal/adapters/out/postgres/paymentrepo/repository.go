package paymentrepo

import (
	"context"
	"errors"

	"pharmacygo/internal/core/domain/model/payment"
	"pharmacygo/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

func (r *GormProviderRepository) Add(ctx context.Context, provider *payment.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	dto := providerFromDomain(provider)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProviderRepository) GetByName(ctx context.Context, name string) (*payment.Provider, error) {
	var dto ProviderDTO
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("created_at").Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment provider", name)
		}
		return nil, err
	}

	return providerToDomain(dto)
}

func (r *GormProviderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ProviderDTO{}).Count(&count).Error
	return count, err
}

type GormCardRepository struct {
	db *gorm.DB
}

func NewGormCardRepository(db *gorm.DB) *GormCardRepository {
	return &GormCardRepository{db: db}
}

func (r *GormCardRepository) Add(ctx context.Context, card *payment.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}

	dto := cardFromDomain(card)
	return r.db.WithContext(ctx).Omit("Provider").Create(&dto).Error
}

func (r *GormCardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CardDTO{}).Count(&count).Error
	return count, err
}
