package queries

import (
	"context"

	"pharmacygo/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

type ListDeliveryTasksQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveryTasksQueryHandler(db *gorm.DB) ListDeliveryTasksQueryHandler {
	return ListDeliveryTasksQueryHandler{db: db}
}

func (h ListDeliveryTasksQueryHandler) Handle(ctx context.Context, query ListDeliveryTasksQuery) ([]TaskRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := ""
	if query.status != delivery.UnknownTaskStatus {
		status = query.status.Code()
	}
	return listTasks(h.db.WithContext(ctx), status)
}
