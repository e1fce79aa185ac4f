// Package outboxrepo stores domain events until they are published.
package outboxrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:80;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	ProcessedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		Payload:     m.Payload(),
		OccurredAt:  m.OccurredAt(),
		ProcessedAt: m.ProcessedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return outbox.RestoreMessage(id, dto.Name, dto.Payload, dto.OccurredAt, dto.ProcessedAt)
}
