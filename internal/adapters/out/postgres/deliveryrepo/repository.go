package deliveryrepo

import (
	"context"
	"errors"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{db: db, tracker: tracker}
}

func (r *GormTaskRepository) Add(ctx context.Context, aggregate *delivery.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the task when the stored version still matches.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *delivery.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"address": dto.Address,
			"eta":     dto.ETA,
			"status":  dto.Status,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&TaskDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("task", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("task", errors.New("task was changed concurrently"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, err
	}

	return taskToDomain(dto)
}

func (r *GormTaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TaskDTO{}).Count(&count).Error
	return count, err
}

type GormTimelineRepository struct {
	db *gorm.DB
}

func NewGormTimelineRepository(db *gorm.DB) *GormTimelineRepository {
	return &GormTimelineRepository{db: db}
}

func (r *GormTimelineRepository) Add(ctx context.Context, event *delivery.TimelineEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := timelineFromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTimelineRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TimelineEventDTO{}).Count(&count).Error
	return count, err
}

type GormStatusBoardRepository struct {
	db *gorm.DB
}

func NewGormStatusBoardRepository(db *gorm.DB) *GormStatusBoardRepository {
	return &GormStatusBoardRepository{db: db}
}

func (r *GormStatusBoardRepository) Add(ctx context.Context, entry *delivery.StatusEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormStatusBoardRepository) Update(ctx context.Context, entry *delivery.StatusEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	result := r.db.WithContext(ctx).
		Model(&StatusEntryDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormStatusBoardRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.StatusEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status entry", id.String())
		}
		return nil, err
	}

	return entryToDomain(dto)
}

func (r *GormStatusBoardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&StatusEntryDTO{}).Count(&count).Error
	return count, err
}
