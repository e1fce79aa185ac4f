// Package notificationrepo persists role-wide dashboard notifications.
package notificationrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Audience  string    `gorm:"size:20;not null;index:idx_notifications_audience_created,priority:1"`
	Message   string    `gorm:"size:255;not null"`
	Type      string    `gorm:"size:10;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_notifications_audience_created,priority:2"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Bytes(),
		Audience:  n.Audience().Code(),
		Message:   n.Message(),
		Type:      string(n.Type()),
		CreatedAt: n.CreatedAt(),
	}
}
