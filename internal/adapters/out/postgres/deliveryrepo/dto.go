// Package deliveryrepo persists distributor tasks, the delivery timeline and
// the status board.
package deliveryrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type TaskDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"size:20;not null;index"`
	PharmacyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Address    string    `gorm:"size:255;not null"`
	ETA        string    `gorm:"column:eta;size:40"`
	Status     string    `gorm:"size:20;not null;index"`
	CreatedAt  time.Time `gorm:"not null;index"`
	Version    int       `gorm:"not null;default:0"`
}

func (TaskDTO) TableName() string {
	return "delivery_tasks"
}

type TimelineEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label     string    `gorm:"size:80;not null"`
	TimeText  string    `gorm:"size:40"`
	IsActive  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (TimelineEventDTO) TableName() string {
	return "delivery_timeline_events"
}

type StatusEntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderCode    string    `gorm:"size:20;not null"`
	PharmacyName string    `gorm:"size:120;not null"`
	Status       string    `gorm:"size:80;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (StatusEntryDTO) TableName() string {
	return "delivery_status_entries"
}

func taskFromDomain(t *delivery.Task) TaskDTO {
	return TaskDTO{
		ID:         t.ID().Bytes(),
		Code:       t.Code(),
		PharmacyID: t.PharmacyID().Bytes(),
		Address:    t.Address(),
		ETA:        t.ETA(),
		Status:     t.Status().Code(),
		CreatedAt:  t.CreatedAt(),
		Version:    t.Version(),
	}
}

func taskToDomain(dto TaskDTO) (*delivery.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pharmacyID, err := kernel.UUIDFromBytes(dto.PharmacyID[:])
	if err != nil {
		return nil, err
	}
	status, err := delivery.ParseTaskStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreTask(id, dto.Code, pharmacyID, dto.Address, dto.ETA, status, dto.CreatedAt, dto.Version)
}

func timelineFromDomain(e *delivery.TimelineEvent) TimelineEventDTO {
	return TimelineEventDTO{
		ID:        e.ID().Bytes(),
		Label:     e.Label(),
		TimeText:  e.TimeText(),
		IsActive:  e.IsActive(),
		CreatedAt: e.CreatedAt(),
	}
}

func entryFromDomain(e *delivery.StatusEntry) StatusEntryDTO {
	return StatusEntryDTO{
		ID:           e.ID().Bytes(),
		OrderCode:    e.OrderCode(),
		PharmacyName: e.PharmacyName(),
		Status:       e.Status(),
	}
}

func entryToDomain(dto StatusEntryDTO) (*delivery.StatusEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return delivery.NewStatusEntry(id, dto.OrderCode, dto.PharmacyName, dto.Status)
}
