package pharmacyrepo

import (
	"context"
	"errors"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/pharmacy"
	"pharmacygo/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPharmacyRepository implements ports.PharmacyRepository using GORM.
type GormPharmacyRepository struct {
	db *gorm.DB
}

func NewGormPharmacyRepository(db *gorm.DB) *GormPharmacyRepository {
	return &GormPharmacyRepository{db: db}
}

func (r *GormPharmacyRepository) Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := pharmacyFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PharmacyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pharmacy", id.String())
		}
		return nil, err
	}

	return pharmacyToDomain(dto)
}

// GetByName returns the oldest pharmacy with exactly that name.
func (r *GormPharmacyRepository) GetByName(ctx context.Context, name string) (*pharmacy.Pharmacy, error) {
	var dto PharmacyDTO
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("created_at").Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pharmacy", name)
		}
		return nil, err
	}

	return pharmacyToDomain(dto)
}

func (r *GormPharmacyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PharmacyDTO{}).Count(&count).Error
	return count, err
}

// GormApplicationRepository implements ports.ApplicationRepository using GORM.
// Reviewed applications are tracked so their events reach the outbox.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *pharmacy.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := applicationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *pharmacy.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := applicationFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", dto.ID).
		Select("pharmacy_name", "documents", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.String())
		}
		return nil, err
	}

	return applicationToDomain(dto)
}

func (r *GormApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ApplicationDTO{}).Count(&count).Error
	return count, err
}
